package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "ep"
	// RootShort is the short description for the root command.
	RootShort           = "Effective Patterns lessons"
	RootLong            = "Effective Patterns ships small, deterministic lessons on Go design patterns.\nList them, run them, verify them against their expected transcripts, or read their notes."
	RootVersionFlag     = "Print version and exit"
	RootFlagConfig      = "Path to a config file (default: ./.effective-patterns.toml, then ~/.config/effective-patterns/config.toml)"
	RootFlagColor       = "Color output: auto, always, or never"
	RootFlagDebug       = "Log runner activity to stderr"
	RootColorInvalidFmt = "invalid --color %q (allowed: auto, always, never)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ListUse is the list command name.
	ListUse        = "list"
	ListShort      = "List available lessons"
	ListHeaderName = "LESSON"
	ListHeaderDesc = "TITLE"
	ListRowFmt     = "%-*s  %s\n"

	// RunUse is the run command usage.
	RunUse          = "run [lesson...]"
	RunShort        = "Run lessons and print their output"
	RunFlagFormat   = "Output format: text or json"
	RunFlagHeaders  = "Print a banner before each lesson in text output"
	RunBannerFmt    = "== %s =="
	RunFormatBadFmt = "unsupported format %q (supported: text, json)"

	// VerifyUse is the verify command usage.
	VerifyUse           = "verify [lesson...]"
	VerifyShort         = "Check lesson output against the expected transcripts"
	VerifyFlagDiffLines = "Maximum diff lines shown per failing lesson"
	VerifyOKFmt         = "ok   %s\n"
	VerifyFailFmt       = "FAIL %s\n"
	VerifySummaryFmt    = "%d of %d lessons match their transcripts\n"

	// ExplainUse is the explain command usage.
	ExplainUse      = "explain <lesson>"
	ExplainShort    = "Show the notes for a lesson"
	ExplainFlagHTML = "Render the notes as HTML"
	ExplainTitleFmt = "%s: %s\n\n"

	// PickUse is the pick command name.
	PickUse              = "pick"
	PickShort            = "Choose a lesson interactively and run it"
	PickTitle            = "Which lesson would you like to run?"
	PickRequiresTerminal = "pick requires an interactive terminal; use 'ep run <lesson>' instead"
	PickCanceled         = "Canceled."

	// McpPromptsUse is the hidden MCP prompt server command name.
	McpPromptsUse    = "mcp-prompts"
	McpPromptsShort  = "Serve lessons as MCP prompts over stdio"
	McpPromptBodyFmt = "%s\n\n## Output\n\n```\n%s```\n"
)
