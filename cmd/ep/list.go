package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/effective-patterns/internal/lesson"
	"github.com/conn-castle/effective-patterns/internal/messages"
)

func newListCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			lessons := lesson.Catalog()
			width := len(messages.ListHeaderName)
			for _, l := range lessons {
				width = max(width, len(l.Name))
			}
			header := fmt.Sprintf(messages.ListRowFmt, width, messages.ListHeaderName, messages.ListHeaderDesc)
			_, _ = fmt.Fprint(out, color.New(color.Bold).Sprint(header))
			for _, l := range lessons {
				_, _ = fmt.Fprintf(out, messages.ListRowFmt, width, l.Name, l.Title)
			}
			return nil
		},
	}
}
