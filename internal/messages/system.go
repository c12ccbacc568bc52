package messages

// Messages for lessons, notes, and servers.
const (
	// LessonUnknownFmt formats unknown lesson errors.
	LessonUnknownFmt       = "%w %q (run 'ep list' to see available lessons)"
	LessonRunCanceledFmt   = "run canceled before lesson %q: %w"
	LessonGoldenMissingFmt = "no expected transcript for lesson %q: %w"
	LessonEncodeReportFmt  = "encode report: %w"
	LessonDiffTruncatedFmt = "... diff truncated (%d more lines); re-run with --diff-lines %d to see more"

	// NotesReadFailedFmt formats note read errors.
	NotesReadFailedFmt             = "read notes for %q: %w"
	NotesInvalidFmt                = "invalid notes for %q: %w"
	NotesMissingContent            = "missing content"
	NotesMissingFrontMatter        = "missing front matter"
	NotesUnterminatedFrontMatter   = "unterminated front matter"
	NotesFailedReadContentFmt      = "failed to read content: %w"
	NotesInvalidFrontMatterFmt     = "invalid front matter: %w"
	NotesInvalidFrontMatterTypeFmt = "invalid front matter: %s"
	NotesUnknownFrontMatterKeyFmt  = "unrecognized front matter key %q"
	NotesNameMismatchFmt           = "front matter name %q does not match lesson %q"
	NotesTitleRequired             = "title is required in front matter"

	// McpRunPromptServerFailedFmt formats MCP prompt server failures.
	McpRunPromptServerFailedFmt = "run prompt server: %w"
	McpPromptServerRunnerNil    = "prompt server runner is nil"
)
