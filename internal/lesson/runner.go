package lesson

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conn-castle/effective-patterns/internal/console"
	"github.com/conn-castle/effective-patterns/internal/messages"
)

// Transcript is the captured output of one lesson run.
type Transcript struct {
	Lesson string   `json:"lesson"`
	Title  string   `json:"title"`
	Lines  []string `json:"lines"`
}

// Text returns the transcript as newline-terminated text.
func (t Transcript) Text() string {
	var rec console.Recorder
	out := console.New(&rec)
	for _, line := range t.Lines {
		out.Println(line)
	}
	return rec.String()
}

// Runner runs lessons and records their output.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner. A nil logger disables logging.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

// RunOne runs a single lesson and returns its transcript.
func (r *Runner) RunOne(l Lesson) Transcript {
	var rec console.Recorder
	r.logger.Debug("lesson started", "lesson", l.Name)
	l.Run(console.New(&rec))
	lines := rec.Lines()
	r.logger.Debug("lesson finished", "lesson", l.Name, "lines", len(lines))
	return Transcript{Lesson: l.Name, Title: l.Title, Lines: lines}
}

// Run runs lessons in order. The context is checked before each lesson; a
// canceled context stops the run and returns the transcripts so far.
func (r *Runner) Run(ctx context.Context, lessons []Lesson) ([]Transcript, error) {
	transcripts := make([]Transcript, 0, len(lessons))
	for _, l := range lessons {
		if err := ctx.Err(); err != nil {
			return transcripts, fmt.Errorf(messages.LessonRunCanceledFmt, l.Name, err)
		}
		transcripts = append(transcripts, r.RunOne(l))
	}
	return transcripts, nil
}
