package astgen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loxkit/astgen/astgen"
	"github.com/loxkit/astgen/astgen/golang"
	"github.com/loxkit/astgen/astgen/markdown"
	"github.com/loxkit/astgen/errors"
)

func exprGrammar(t *testing.T) *astgen.Grammar {
	t.Helper()
	grammar, err := astgen.BuiltinGrammar("expr")
	if err != nil {
		t.Fatalf("BuiltinGrammar failed: %v", err)
	}
	return grammar
}

func TestEmit_GoOutput(t *testing.T) {
	dir := t.TempDir()
	emitter := astgen.NewEmitter(nil)

	path, err := emitter.Emit(exprGrammar(t), golang.NewGenerator(), dir)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	if path != filepath.Join(dir, "expr.go") {
		t.Errorf("Expected output path %s, got %s", filepath.Join(dir, "expr.go"), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}
	output := string(data)

	assertContains(t, output, "// Code generated by astgen. DO NOT EDIT.")
	assertContains(t, output, "package ast")
	assertContains(t, output, `import "github.com/loxkit/lox/internal/token"`)
	assertContains(t, output, "type Expr interface {")
	assertContains(t, output, "type Binary struct {")
	assertContains(t, output, "type Nothing struct{}")

	// Variant declarations appear in input order
	order := []string{"type Binary ", "type Grouping ", "type Literal ", "type Unary ", "type Ternary ", "type Nothing "}
	last := -1
	for _, decl := range order {
		idx := strings.Index(output, decl)
		if idx < 0 {
			t.Fatalf("Missing declaration %q in output", decl)
		}
		if idx < last {
			t.Errorf("Declaration %q out of input order", decl)
		}
		last = idx
	}
}

func TestEmit_Deterministic(t *testing.T) {
	grammar := exprGrammar(t)
	emitter := astgen.NewEmitter(nil)

	read := func(dir string) string {
		t.Helper()
		path, err := emitter.Emit(grammar, markdown.NewGenerator(), dir)
		if err != nil {
			t.Fatalf("Emit failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read generated file: %v", err)
		}
		return string(data)
	}

	first := read(t.TempDir())
	second := read(t.TempDir())
	if first != second {
		t.Error("Expected byte-identical output across runs with identical input")
	}
}

func TestEmit_OverwritesPriorRun(t *testing.T) {
	dir := t.TempDir()
	emitter := astgen.NewEmitter(nil)
	gen := markdown.NewGenerator()
	grammar := exprGrammar(t)

	path, err := emitter.Emit(grammar, gen, dir)
	if err != nil {
		t.Fatalf("First emit failed: %v", err)
	}

	// Pad the file so appending instead of truncating would be visible
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 1<<16)), 0644); err != nil {
		t.Fatalf("Failed to pad file: %v", err)
	}

	if _, err := emitter.Emit(grammar, gen, dir); err != nil {
		t.Fatalf("Second emit failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}
	if strings.Contains(string(data), "xxxx") {
		t.Error("Expected prior content to be overwritten, found leftovers")
	}
	if !strings.HasPrefix(string(data), "<!-- Code generated by astgen. DO NOT EDIT. -->") {
		t.Error("Expected fresh generated content after overwrite")
	}
}

func TestEmit_MissingOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	emitter := astgen.NewEmitter(nil)

	_, err := emitter.Emit(exprGrammar(t), markdown.NewGenerator(), dir)
	if err == nil {
		t.Fatal("Expected error for missing output directory")
	}

	var fsErr *astgen.FileSystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("Expected *FileSystemError, got %T: %v", err, err)
	}
	if fsErr.Path != filepath.Join(dir, "expr.md") {
		t.Errorf("Expected error to carry target path, got %q", fsErr.Path)
	}
	if fsErr.Unwrap() == nil {
		t.Error("Expected error to wrap the underlying I/O fault")
	}

	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("Expected no directory to be created")
	}
}

// failingFormatter renders like markdown but always fails its format pass
type failingFormatter struct {
	*markdown.Generator
	invoked bool
}

func (f *failingFormatter) FormatFile(path string) error {
	f.invoked = true
	return errors.New("formatter exploded")
}

func TestEmit_FormatterFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	emitter := astgen.NewEmitter(nil)
	gen := &failingFormatter{Generator: markdown.NewGenerator()}

	path, err := emitter.Emit(exprGrammar(t), gen, dir)
	if err != nil {
		t.Fatalf("Emit failed on formatter error, want success: %v", err)
	}
	if !gen.invoked {
		t.Error("Expected formatter to be invoked")
	}

	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("Expected output file to survive formatter failure: %v", statErr)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("Expected output to contain %q, got:\n%s", needle, haystack)
	}
}
