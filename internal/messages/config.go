package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt         = "read config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %w"
	ConfigResolveHomeErrFmt   = "resolve home dir: %w"

	ConfigColorInvalidFmt     = "%s: output.color %q is invalid (allowed: auto, always, never)"
	ConfigFormatInvalidFmt    = "%s: output.format %q is invalid (allowed: text, json)"
	ConfigDiffLinesInvalidFmt = "%s: verify.diff_lines must not be negative"

	ConfigValidationGuidance = "fix the value in the config file or remove it to use the default"
)
