package lesson

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/effective-patterns/internal/console"
)

func TestRunOneSkeletal(t *testing.T) {
	l, ok := Lookup("skeletal")
	require.True(t, ok)

	tr := NewRunner(nil).RunOne(l)
	assert.Equal(t, "skeletal", tr.Lesson)
	assert.Equal(t, l.Title, tr.Title)
	require.Len(t, tr.Lines, 13)
	assert.Equal(t, "Car started", tr.Lines[0])
	assert.Equal(t, "Car stopped", tr.Lines[12])
}

func TestRunLogsAtDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lessons, err := Select([]string{"generics"})
	require.NoError(t, err)

	transcripts, err := NewRunner(logger).Run(context.Background(), lessons)
	require.NoError(t, err)
	require.Len(t, transcripts, 1)
	assert.Contains(t, logs.String(), "lesson started")
	assert.Contains(t, logs.String(), "lesson=generics")
	assert.Contains(t, logs.String(), "lines=3")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	lessons := []Lesson{
		{Name: "first", Run: func(out *console.Console) {
			calls++
			out.Println("one")
			cancel()
		}},
		{Name: "second", Run: func(out *console.Console) { calls++ }},
	}

	transcripts, err := NewRunner(nil).Run(ctx, lessons)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), `"second"`)
	assert.Equal(t, 1, calls)
	require.Len(t, transcripts, 1)
	assert.Equal(t, []string{"one"}, transcripts[0].Lines)
}

func TestTranscriptText(t *testing.T) {
	assert.Equal(t, "a\nb\n", Transcript{Lines: []string{"a", "b"}}.Text())
	assert.Equal(t, "", Transcript{}.Text())
}

func TestEveryLessonIsDeterministic(t *testing.T) {
	runner := NewRunner(nil)
	for _, l := range Catalog() {
		t.Run(l.Name, func(t *testing.T) {
			first := runner.RunOne(l)
			second := runner.RunOne(l)
			assert.Equal(t, first, second)
			assert.NotEmpty(t, first.Lines)
		})
	}
}
