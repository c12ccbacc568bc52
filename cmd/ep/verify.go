package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/effective-patterns/internal/lesson"
	"github.com/conn-castle/effective-patterns/internal/messages"
	"github.com/conn-castle/effective-patterns/internal/notes"
)

const flagDiffLines = "diff-lines"

var goldenTranscript lesson.GoldenFunc = notes.Golden

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	var diffLines int
	cmd := &cobra.Command{
		Use:               messages.VerifyUse,
		Short:             messages.VerifyShort,
		ValidArgsFunction: completeLessonNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed(flagDiffLines) {
				diffLines = opts.cfg.Verify.DiffLines
			}
			lessons, err := lesson.Select(args)
			if err != nil {
				return err
			}
			transcripts, err := lesson.NewRunner(opts.logger).Run(cmd.Context(), lessons)
			if err != nil {
				return err
			}
			results, err := lesson.NewVerifier(goldenTranscript, diffLines).VerifyAll(transcripts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			passed := 0
			for _, res := range results {
				if res.OK {
					passed++
					_, _ = fmt.Fprint(out, color.GreenString(messages.VerifyOKFmt, res.Lesson))
					continue
				}
				_, _ = fmt.Fprint(out, color.RedString(messages.VerifyFailFmt, res.Lesson))
				_, _ = fmt.Fprint(out, res.Diff)
			}
			_, _ = fmt.Fprintf(out, messages.VerifySummaryFmt, passed, len(results))
			if passed != len(results) {
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&diffLines, flagDiffLines, lesson.DefaultDiffMaxLines, messages.VerifyFlagDiffLines)
	return cmd
}
