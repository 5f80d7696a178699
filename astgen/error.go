package astgen

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrorKind categorizes specification errors for programmatic handling
type ErrorKind string

const (
	ErrorKindSyntax     ErrorKind = "syntax"     // Malformed variant or field entry
	ErrorKindIdentifier ErrorKind = "identifier" // Name is not a valid identifier
)

// ParseError represents a malformed variant specification. It always
// carries the offending raw line so a bad grammar fails fast instead of
// flowing through to an invalid generated file.
type ParseError struct {
	Kind        ErrorKind // Error category
	Message     string    // Human-readable message
	Spec        string    // Raw variant specification line
	Entry       string    // Offending field entry within the line (optional)
	Suggestions []string  // Possible fixes
}

// Error implements the error interface with the plain rendering.
func (e *ParseError) Error() string {
	return e.formatPlain()
}

// formatPlain creates a concise single-line message for logs
func (e *ParseError) formatPlain() string {
	msg := e.Message
	if e.Entry != "" {
		msg += fmt.Sprintf(" in entry %q", e.Entry)
	}
	msg += fmt.Sprintf(" (spec: %q)", e.Spec)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(". Suggestions: %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// FormatTerminal creates a rich colored rendering for interactive use
func (e *ParseError) FormatTerminal() string {
	baseMsg := pterm.Red(e.Message)

	context := fmt.Sprintf("\n\n%s", pterm.LightCyan("Context:"))
	context += fmt.Sprintf("\n  %s %q", pterm.Yellow("Spec:"), e.Spec)
	if e.Entry != "" {
		context += fmt.Sprintf("\n  %s %q", pterm.Yellow("Entry:"), e.Entry)
	}

	if len(e.Suggestions) > 0 {
		context += fmt.Sprintf("\n\n%s", pterm.Green("Suggestions:"))
		for _, suggestion := range e.Suggestions {
			context += fmt.Sprintf("\n  • %s", suggestion)
		}
	}

	return fmt.Sprintf("%s%s", baseMsg, context)
}

// FileSystemError reports a failed write of the generated file, wrapping
// the target path and the underlying I/O fault.
type FileSystemError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *FileSystemError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying I/O error for errors.Is/As
func (e *FileSystemError) Unwrap() error {
	return e.Err
}
