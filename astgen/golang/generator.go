// Package golang renders a grammar as Go source: one struct per variant
// plus the shared marker interface, formatted by gofmt after the write.
package golang

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/loxkit/astgen/astgen"
	"github.com/loxkit/astgen/astgen/util"
	"github.com/loxkit/astgen/errors"
)

// FieldNaming selects the identifier convention for generated struct fields.
//
// The node family's downstream consumers compile against the field names,
// so the convention is part of the wire contract: exported names let other
// packages pattern-match on fields, lowercase names keep them package-private.
type FieldNaming string

const (
	// FieldNamingExported capitalizes field names (Left, Op, Right)
	FieldNamingExported FieldNaming = "exported"
	// FieldNamingLower lowercases the first letter (left, op, right)
	FieldNamingLower FieldNaming = "lower"
)

// ParseFieldNaming validates a field naming convention given on the
// command line.
func ParseFieldNaming(s string) (FieldNaming, error) {
	switch FieldNaming(strings.ToLower(strings.TrimSpace(s))) {
	case FieldNamingExported, "":
		return FieldNamingExported, nil
	case FieldNamingLower:
		return FieldNamingLower, nil
	default:
		return "", errors.Newf("invalid field naming %q (supported: exported, lower)", s)
	}
}

// Generator implements astgen.Generator for Go source output
type Generator struct {
	naming FieldNaming
}

// NewGenerator creates a Go generator with exported field names.
func NewGenerator() *Generator {
	return &Generator{naming: FieldNamingExported}
}

// NewGeneratorWithNaming creates a Go generator with the given field
// naming convention.
func NewGeneratorWithNaming(naming FieldNaming) *Generator {
	return &Generator{naming: naming}
}

// Language returns "go"
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns "go"
func (g *Generator) FileExtension() string {
	return "go"
}

// GenerateFile renders the complete generated source file: banner, package
// clause, token import, marker interface, then one struct per variant in
// input order.
func (g *Generator) GenerateFile(grammar *astgen.Grammar) string {
	var sb strings.Builder

	sb.WriteString("// Code generated by astgen. DO NOT EDIT.\n\n")
	sb.WriteString(fmt.Sprintf("package %s\n\n", grammar.Package))

	if grammar.TokenImport != "" {
		sb.WriteString(fmt.Sprintf("import %q\n\n", grammar.TokenImport))
	}

	sb.WriteString(g.generateMarker(grammar))

	for _, variant := range grammar.Variants {
		sb.WriteString("\n")
		sb.WriteString(g.GenerateStruct(variant))
	}

	return sb.String()
}

// generateMarker renders the marker interface every variant satisfies.
// Consumers use it to treat node variants polymorphically; the embedded
// interfaces are declared by hand in the consuming package.
func (g *Generator) generateMarker(grammar *astgen.Grammar) string {
	marker := grammar.MarkerName()
	if len(grammar.MarkerEmbeds) == 0 {
		return fmt.Sprintf("type %s interface{}\n", marker)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("type %s interface {\n", marker))
	for _, embed := range grammar.MarkerEmbeds {
		sb.WriteString(fmt.Sprintf("\t%s\n", embed))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// GenerateStruct renders one variant as a struct declaration. Field order
// exactly matches input order; a unit variant gets an empty body.
func (g *Generator) GenerateStruct(variant astgen.VariantSpec) string {
	if len(variant.Fields) == 0 {
		return fmt.Sprintf("type %s struct{}\n", variant.Name)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("type %s struct {\n", variant.Name))
	for _, field := range variant.Fields {
		sb.WriteString(fmt.Sprintf("\t%s %s\n", g.fieldName(field.Name), field.Type))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// fieldName applies the configured naming convention to a field name
func (g *Generator) fieldName(name string) string {
	if g.naming == FieldNamingLower {
		return util.ToCamelCase(name)
	}
	return util.ToPascalCase(name)
}

// FormatFile runs gofmt on the emitted file. The tool's availability is
// assumed, not verified; callers treat a failure as non-fatal and keep the
// unformatted output.
func (g *Generator) FormatFile(path string) error {
	out, err := exec.Command("gofmt", "-w", path).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "gofmt %s: %s", path, strings.TrimSpace(string(out)))
	}
	return nil
}
