package astgen

import (
	"os"
	"path/filepath"

	"github.com/loxkit/astgen/logging"
)

// Emitter writes rendered grammars to disk and runs the target's external
// formatter as a post-pass.
type Emitter struct {
	logger logging.Logger
}

// NewEmitter creates an Emitter. A nil logger disables logging.
func NewEmitter(logger logging.Logger) *Emitter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Emitter{logger: logger}
}

// Emit renders the grammar with gen and writes it to
// <outputDir>/<base>.<ext> in a single truncating write, so re-running
// against the same directory overwrites rather than appends. The output
// directory must already exist; a missing or unwritable directory returns
// a *FileSystemError and writes nothing.
//
// If the generator implements Formatter, the formatter runs once after the
// file is written and closed. A formatter failure is logged and ignored.
func (e *Emitter) Emit(g *Grammar, gen Generator, outputDir string) (string, error) {
	output := gen.GenerateFile(g)
	path := filepath.Join(outputDir, g.Base+"."+gen.FileExtension())

	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return "", &FileSystemError{Path: path, Err: err}
	}

	if formatter, ok := gen.(Formatter); ok {
		if err := formatter.FormatFile(path); err != nil {
			e.logger.Warn("formatter failed, leaving output unformatted",
				"file", path,
				"language", gen.Language(),
				"error", err)
		}
	}

	e.logger.Info("generated file",
		"file", path,
		"language", gen.Language(),
		"variants", len(g.Variants))

	return path, nil
}
