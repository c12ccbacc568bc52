package console

import (
	"strings"
	"sync"
)

// Recorder is an io.Writer that keeps everything written to it as lines.
type Recorder struct {
	mu      sync.Mutex
	lines   []string
	partial strings.Builder
}

// Write implements io.Writer. Text after the last newline is buffered until
// the next newline or a call to Lines.
func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range p {
		if b == '\n' {
			r.lines = append(r.lines, r.partial.String())
			r.partial.Reset()
			continue
		}
		r.partial.WriteByte(b)
	}
	return len(p), nil
}

// Lines returns a copy of the recorded lines, including any trailing partial line.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.lines...)
	if r.partial.Len() > 0 {
		out = append(out, r.partial.String())
	}
	return out
}

// String returns the recorded lines joined with newlines, ending in a newline
// when anything was recorded.
func (r *Recorder) String() string {
	lines := r.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
