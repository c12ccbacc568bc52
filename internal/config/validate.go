package config

import (
	"fmt"

	"github.com/conn-castle/effective-patterns/internal/messages"
)

var validColors = map[string]struct{}{
	"":          {},
	ColorAuto:   {},
	ColorAlways: {},
	ColorNever:  {},
}

var validFormats = map[string]struct{}{
	"":         {},
	FormatText: {},
	FormatJSON: {},
}

// Validate ensures the config values are usable. Empty values are allowed and
// take their defaults.
func (c *Config) Validate(path string) error {
	if _, ok := validColors[c.Output.Color]; !ok {
		return fmt.Errorf(messages.ConfigColorInvalidFmt, path, c.Output.Color)
	}
	if _, ok := validFormats[c.Output.Format]; !ok {
		return fmt.Errorf(messages.ConfigFormatInvalidFmt, path, c.Output.Format)
	}
	if c.Verify.DiffLines < 0 {
		return fmt.Errorf(messages.ConfigDiffLinesInvalidFmt, path)
	}
	return nil
}

// ValidColor reports whether mode is a known color mode.
func ValidColor(mode string) bool {
	_, ok := validColors[mode]
	return ok && mode != ""
}

// ValidFormat reports whether format is a known output format.
func ValidFormat(format string) bool {
	_, ok := validFormats[format]
	return ok && format != ""
}
