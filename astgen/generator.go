package astgen

// Generator defines the interface for language-specific emitters.
// Each target (Go source, Markdown documentation) implements this interface.
type Generator interface {
	// GenerateFile renders a complete output file for the grammar
	GenerateFile(g *Grammar) string

	// FileExtension returns the file extension for this target (e.g. "go", "md")
	FileExtension() string

	// Language returns the target name (e.g. "go", "markdown")
	Language() string
}

// Formatter is implemented by generators whose output can be normalized by
// an external formatting tool after the file is written. Formatting is
// best-effort: callers never treat a failure as fatal, an unformatted but
// valid file is an acceptable result.
type Formatter interface {
	FormatFile(path string) error
}
