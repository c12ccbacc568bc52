package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/effective-patterns/internal/lesson"
	"github.com/conn-castle/effective-patterns/internal/messages"
	"github.com/conn-castle/effective-patterns/internal/picker"
)

var newPickerUI = func() picker.UI { return picker.NewHuhUI() }

func newPickCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PickUse,
		Short: messages.PickShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := lesson.Catalog()
			options := make([]picker.Option, 0, len(catalog))
			for _, l := range catalog {
				options = append(options, picker.Option{Key: l.Name, Label: l.Name + " - " + l.Title})
			}

			var choice string
			if err := newPickerUI().Select(messages.PickTitle, options, &choice); err != nil {
				if errors.Is(err, picker.ErrCanceled) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.PickCanceled)
					return nil
				}
				return err
			}

			selected, err := lesson.Select([]string{choice})
			if err != nil {
				return err
			}
			transcripts, err := lesson.NewRunner(opts.logger).Run(cmd.Context(), selected)
			if err != nil {
				return err
			}
			writeTranscripts(cmd.OutOrStdout(), transcripts, opts.cfg.ShowHeaders())
			return nil
		},
	}
}
