package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/effective-patterns/internal/config"
	"github.com/conn-castle/effective-patterns/internal/lesson"
	"github.com/conn-castle/effective-patterns/internal/messages"
)

const (
	flagFormat  = "format"
	flagHeaders = "headers"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var format string
	var headers bool
	cmd := &cobra.Command{
		Use:               messages.RunUse,
		Short:             messages.RunShort,
		ValidArgsFunction: completeLessonNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed(flagFormat) {
				format = opts.cfg.Output.Format
			}
			if !cmd.Flags().Changed(flagHeaders) {
				headers = opts.cfg.ShowHeaders()
			}
			if !config.ValidFormat(format) {
				return fmt.Errorf(messages.RunFormatBadFmt, format)
			}

			lessons, err := lesson.Select(args)
			if err != nil {
				return err
			}
			transcripts, err := lesson.NewRunner(opts.logger).Run(cmd.Context(), lessons)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == config.FormatJSON {
				return lesson.NewReport(Version, transcripts).Encode(out)
			}
			writeTranscripts(out, transcripts, headers)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, flagFormat, config.FormatText, messages.RunFlagFormat)
	cmd.Flags().BoolVar(&headers, flagHeaders, true, messages.RunFlagHeaders)
	return cmd
}

// writeTranscripts prints transcripts as plain text. With headers, each
// lesson gets a banner and lessons are separated by a blank line.
func writeTranscripts(out io.Writer, transcripts []lesson.Transcript, headers bool) {
	for i, t := range transcripts {
		if headers {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintln(out, color.CyanString(messages.RunBannerFmt, t.Lesson))
		}
		_, _ = fmt.Fprint(out, t.Text())
	}
}

// completeLessonNames offers catalog lesson names for shell completion.
func completeLessonNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lesson.Names(), cobra.ShellCompDirectiveNoFileComp
}
