// Package mcp serves lessons as MCP prompts.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/conn-castle/effective-patterns/internal/messages"
)

// ServerName is the MCP implementation name reported to clients.
const ServerName = "effective-patterns"

// Prompt is one lesson exposed as an MCP prompt.
type Prompt struct {
	Name        string
	Description string
	Body        string
}

type promptServerRunner func(ctx context.Context, server *mcp.Server) error

// RunPromptServer starts an MCP prompt server over stdio.
func RunPromptServer(ctx context.Context, version string, prompts []Prompt) error {
	return runPromptServer(ctx, version, prompts, defaultPromptServerRunner)
}

// NewPromptServer builds an MCP server exposing prompts.
func NewPromptServer(version string, prompts []Prompt) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)
	for _, p := range prompts {
		server.AddPrompt(&mcp.Prompt{
			Name:        p.Name,
			Description: p.Description,
		}, promptHandler(p))
	}
	return server
}

// runPromptServer builds the MCP prompt server and runs it using the provided runner.
func runPromptServer(ctx context.Context, version string, prompts []Prompt, runner promptServerRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, errors.New(messages.McpPromptServerRunnerNil))
	}
	if err := runner(ctx, NewPromptServer(version, prompts)); err != nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, err)
	}
	return nil
}

// defaultPromptServerRunner runs the MCP prompt server over stdio.
func defaultPromptServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func promptHandler(p Prompt) func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: p.Description,
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: p.Body},
				},
			},
		}, nil
	}
}
