package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPromptServerNilRunner(t *testing.T) {
	err := runPromptServer(context.Background(), "v1", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt server runner is nil")
}

func TestRunPromptServerRunnerError(t *testing.T) {
	err := runPromptServer(context.Background(), "v1", nil, func(context.Context, *mcp.Server) error {
		return errors.New("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run prompt server: boom")
}

func TestRunPromptServerPassesServer(t *testing.T) {
	var got *mcp.Server
	err := runPromptServer(context.Background(), "v1", []Prompt{{Name: "skeletal"}}, func(_ context.Context, s *mcp.Server) error {
		got = s
		return nil
	})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestPromptHandler(t *testing.T) {
	handler := promptHandler(Prompt{Name: "generics", Description: "Generic functions", Body: "6\n32\n"})
	res, err := handler(context.Background(), &mcp.GetPromptRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Generic functions", res.Description)
	require.Len(t, res.Messages, 1)
	text, ok := res.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "6\n32\n", text.Text)
}

func TestPromptServerOverInMemoryTransport(t *testing.T) {
	ctx := context.Background()
	server := NewPromptServer("v1", []Prompt{
		{Name: "skeletal", Description: "Skeletal implementation", Body: "Car started"},
		{Name: "variance", Description: "Producers and consumers", Body: "1"},
	})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	list, err := session.ListPrompts(ctx, &mcp.ListPromptsParams{})
	require.NoError(t, err)
	names := make([]string, 0, len(list.Prompts))
	for _, p := range list.Prompts {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"skeletal", "variance"}, names)

	res, err := session.GetPrompt(ctx, &mcp.GetPromptParams{Name: "skeletal"})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	text, ok := res.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Car started", text.Text)
}
