package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/effective-patterns/internal/lesson"
	"github.com/conn-castle/effective-patterns/internal/mcp"
	"github.com/conn-castle/effective-patterns/internal/messages"
	"github.com/conn-castle/effective-patterns/internal/notes"
)

var runPromptServer = mcp.RunPromptServer

func newMcpPromptsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:    messages.McpPromptsUse,
		Short:  messages.McpPromptsShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts, err := lessonPrompts(lesson.NewRunner(opts.logger))
			if err != nil {
				return err
			}
			return runPromptServer(cmd.Context(), Version, prompts)
		},
	}
}

// lessonPrompts builds one prompt per lesson: its notes followed by its output.
func lessonPrompts(runner *lesson.Runner) ([]mcp.Prompt, error) {
	catalog := lesson.Catalog()
	prompts := make([]mcp.Prompt, 0, len(catalog))
	for _, l := range catalog {
		note, err := notes.Load(l.Name)
		if err != nil {
			return nil, err
		}
		transcript := runner.RunOne(l)
		prompts = append(prompts, mcp.Prompt{
			Name:        l.Name,
			Description: note.Summary,
			Body:        fmt.Sprintf(messages.McpPromptBodyFmt, note.Body, transcript.Text()),
		})
	}
	return prompts, nil
}
