package lesson

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/effective-patterns/internal/messages"
	"github.com/conn-castle/effective-patterns/internal/notes"
)

// DefaultDiffMaxLines is the default maximum number of diff lines kept per lesson.
const DefaultDiffMaxLines = 40

// Result is the outcome of comparing one transcript with its expected text.
type Result struct {
	Lesson    string
	OK        bool
	Diff      string
	Truncated bool
}

// GoldenFunc returns the expected transcript for a lesson.
type GoldenFunc func(name string) (string, error)

// Verifier compares transcripts with expected text.
type Verifier struct {
	golden   GoldenFunc
	maxLines int
}

// NewVerifier returns a Verifier reading expected text from golden. A nil
// golden uses the embedded transcripts; maxLines <= 0 uses DefaultDiffMaxLines.
func NewVerifier(golden GoldenFunc, maxLines int) *Verifier {
	if golden == nil {
		golden = notes.Golden
	}
	return &Verifier{golden: golden, maxLines: normalizeDiffMaxLines(maxLines)}
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// Verify compares t with the expected transcript of its lesson.
func (v *Verifier) Verify(t Transcript) (Result, error) {
	want, err := v.golden(t.Lesson)
	if err != nil {
		return Result{}, fmt.Errorf(messages.LessonGoldenMissingFmt, t.Lesson, err)
	}
	got := t.Text()
	if got == want {
		return Result{Lesson: t.Lesson, OK: true}, nil
	}
	diff, truncated := v.renderDiff(t.Lesson, want, got)
	return Result{Lesson: t.Lesson, Diff: diff, Truncated: truncated}, nil
}

// VerifyAll verifies every transcript and stops at the first lookup error.
func (v *Verifier) VerifyAll(transcripts []Transcript) ([]Result, error) {
	results := make([]Result, 0, len(transcripts))
	for _, t := range transcripts {
		res, err := v.Verify(t)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (v *Verifier) renderDiff(name, want, got string) (string, bool) {
	diff := udiff.Unified("expected/"+name, "actual/"+name, want, got)
	lines := splitDiffLines(diff)
	if len(lines) <= v.maxLines {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	kept := append([]string(nil), lines[:v.maxLines]...)
	kept = append(kept, fmt.Sprintf(messages.LessonDiffTruncatedFmt, len(lines)-v.maxLines, len(lines)))
	return ensureTrailingNewline(strings.Join(kept, "\n")), true
}

func splitDiffLines(diff string) []string {
	trimmed := strings.TrimRight(diff, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
