// Package console provides the line-oriented output used by lessons.
package console

import (
	"fmt"
	"io"
)

// Console writes whole lines to an underlying writer.
type Console struct {
	out io.Writer
}

// New returns a Console writing to out. A nil writer discards output.
func New(out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{out: out}
}

// Println writes line followed by a newline.
func (c *Console) Println(line string) {
	_, _ = fmt.Fprintln(c.out, line)
}

// Printf formats according to format and writes the result as one line.
func (c *Console) Printf(format string, args ...any) {
	c.Println(fmt.Sprintf(format, args...))
}
