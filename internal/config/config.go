// Package config loads the optional effective-patterns TOML config file.
package config

// Output color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultDiffLines is the default per-lesson diff cap for verify.
const DefaultDiffLines = 40

// Config is the full config file.
type Config struct {
	Output OutputConfig `toml:"output"`
	Verify VerifyConfig `toml:"verify"`
}

// OutputConfig controls how lesson output is printed.
type OutputConfig struct {
	Color   string `toml:"color"`
	Format  string `toml:"format"`
	Headers *bool  `toml:"headers"`
}

// VerifyConfig controls the verify command.
type VerifyConfig struct {
	DiffLines int `toml:"diff_lines"`
}

// Default returns the config used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills unset values.
func (c *Config) applyDefaults() {
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Headers == nil {
		headers := true
		c.Output.Headers = &headers
	}
	if c.Verify.DiffLines == 0 {
		c.Verify.DiffLines = DefaultDiffLines
	}
}

// ShowHeaders reports whether text output prints a banner per lesson.
func (c *Config) ShowHeaders() bool {
	return c.Output.Headers == nil || *c.Output.Headers
}
