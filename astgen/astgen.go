// Package astgen generates AST node type definitions from compact,
// line-oriented variant specifications.
//
// A variant specification is one line of the form
//
//	Binary : Expr Left, token.Token Op, Expr Right
//
// naming a node type and its fields. A Grammar bundles an ordered list of
// variant specifications with the file-level details (package name, token
// import, marker interface) and is rendered by a language-specific
// Generator. The result is written to disk by an Emitter and handed to an
// external formatter as a best-effort cleanup step.
package astgen

import "github.com/loxkit/astgen/astgen/util"

// FieldSpec is one field binding on a node variant: a type reference and a
// field name, in the order they appear in the variant specification. The
// type may be a qualified reference to another package (e.g. token.Token)
// or a slice type; it is carried through to the output verbatim.
type FieldSpec struct {
	Type string
	Name string
}

// VariantSpec describes a single AST node variant. A variant with no fields
// is a unit variant, distinguishable only by its own name.
type VariantSpec struct {
	Name   string
	Fields []FieldSpec
}

// Grammar describes a whole node family emitted into one file.
// This is language-agnostic - each Generator formats it differently.
type Grammar struct {
	// Base is the output file stem, e.g. "expr" for expr.go
	Base string

	// Package is the package identifier declared in the generated file
	Package string

	// TokenImport is the import path of the token/lexeme type referenced
	// by field declarations that carry lexer output. Empty disables the
	// import.
	TokenImport string

	// Marker is the name of the marker interface every variant satisfies.
	// Defaults to the exported form of Base when empty.
	Marker string

	// MarkerEmbeds are interface names embedded in the marker declaration
	MarkerEmbeds []string

	// Variants are the node variants, rendered in input order
	Variants []VariantSpec
}

// MarkerName returns the marker interface name for the grammar.
func (g *Grammar) MarkerName() string {
	if g.Marker != "" {
		return g.Marker
	}
	return util.ToPascalCase(g.Base)
}
