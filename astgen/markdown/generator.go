// Package markdown renders a grammar as human-readable documentation:
// one section per variant with its field table. The output is reference
// material for people working on the consuming parser, not input to any
// build step.
package markdown

import (
	"fmt"
	"strings"

	"github.com/loxkit/astgen/astgen"
)

// Generator implements astgen.Generator for Markdown documentation
type Generator struct{}

// NewGenerator creates a Markdown generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "markdown"
func (g *Generator) Language() string {
	return "markdown"
}

// FileExtension returns "md"
func (g *Generator) FileExtension() string {
	return "md"
}

// GenerateFile renders the documentation file: header, marker interface
// summary, then one section per variant in input order.
func (g *Generator) GenerateFile(grammar *astgen.Grammar) string {
	var sb strings.Builder

	sb.WriteString("<!-- Code generated by astgen. DO NOT EDIT. -->\n\n")
	sb.WriteString(fmt.Sprintf("# %s node types\n\n", grammar.Base))
	sb.WriteString(fmt.Sprintf("Node variants generated into package `%s`.\n\n", grammar.Package))

	sb.WriteString(fmt.Sprintf("Every variant satisfies the `%s` marker interface", grammar.MarkerName()))
	if len(grammar.MarkerEmbeds) > 0 {
		sb.WriteString(fmt.Sprintf(" (embeds: `%s`)", strings.Join(grammar.MarkerEmbeds, "`, `")))
	}
	sb.WriteString(".\n")

	if grammar.TokenImport != "" {
		sb.WriteString(fmt.Sprintf("Token fields reference `%s`.\n", grammar.TokenImport))
	}

	for _, variant := range grammar.Variants {
		sb.WriteString("\n")
		sb.WriteString(g.GenerateSection(variant))
	}

	return sb.String()
}

// GenerateSection renders one variant as a documentation section
func (g *Generator) GenerateSection(variant astgen.VariantSpec) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n\n", variant.Name))

	if len(variant.Fields) == 0 {
		sb.WriteString("Unit variant with no fields.\n")
		return sb.String()
	}

	sb.WriteString("| Field | Type |\n")
	sb.WriteString("|-------|------|\n")
	for _, field := range variant.Fields {
		sb.WriteString(fmt.Sprintf("| %s | `%s` |\n", field.Name, field.Type))
	}

	return sb.String()
}
