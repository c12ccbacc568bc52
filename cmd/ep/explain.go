package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/effective-patterns/internal/lesson"
	"github.com/conn-castle/effective-patterns/internal/messages"
	"github.com/conn-castle/effective-patterns/internal/notes"
)

func newExplainCmd(_ *rootOptions) *cobra.Command {
	var html bool
	cmd := &cobra.Command{
		Use:               messages.ExplainUse,
		Short:             messages.ExplainShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLessonNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := lesson.Select(args)
			if err != nil {
				return err
			}
			note, err := notes.Load(selected[0].Name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if html {
				_, _ = fmt.Fprint(out, notes.RenderHTML(note.Body))
				return nil
			}
			_, _ = fmt.Fprintf(out, messages.ExplainTitleFmt, note.Name, note.Title)
			_, _ = fmt.Fprintln(out, note.Body)
			return nil
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, messages.ExplainFlagHTML)
	return cmd
}
