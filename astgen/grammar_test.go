package astgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxkit/astgen/errors"
)

func TestBuiltinGrammar_Expr(t *testing.T) {
	grammar, err := BuiltinGrammar("expr")
	require.NoError(t, err)

	assert.Equal(t, "expr", grammar.Base)
	assert.Equal(t, "ast", grammar.Package)
	assert.Equal(t, DefaultTokenImport, grammar.TokenImport)
	assert.Equal(t, "Expr", grammar.MarkerName())
	assert.Equal(t, []string{"PrettyPrint"}, grammar.MarkerEmbeds)

	names := make([]string, len(grammar.Variants))
	for i, v := range grammar.Variants {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"Binary", "Grouping", "Literal", "Unary", "Ternary", "Nothing"}, names)

	// Binary carries three ordered fields
	binary := grammar.Variants[0]
	require.Len(t, binary.Fields, 3)
	assert.Equal(t, FieldSpec{Type: "Expr", Name: "Left"}, binary.Fields[0])
	assert.Equal(t, FieldSpec{Type: "token.Token", Name: "Op"}, binary.Fields[1])
	assert.Equal(t, FieldSpec{Type: "Expr", Name: "Right"}, binary.Fields[2])

	// Nothing is the unit variant
	assert.Empty(t, grammar.Variants[5].Fields)
}

func TestBuiltinGrammar_Stmt(t *testing.T) {
	grammar, err := BuiltinGrammar("stmt")
	require.NoError(t, err)

	assert.Equal(t, "Stmt", grammar.MarkerName())
	assert.Equal(t, []string{"EvaluateStmt", "PrettyPrint"}, grammar.MarkerEmbeds)
	require.Len(t, grammar.Variants, 4)
	assert.Equal(t, FieldSpec{Type: "[]Stmt", Name: "Statements"}, grammar.Variants[3].Fields[0])
}

func TestBuiltinGrammar_Unknown(t *testing.T) {
	_, err := BuiltinGrammar("exrp")
	require.Error(t, err)
	assert.True(t, errors.IsUnknownGrammarError(err))
	assert.Contains(t, err.Error(), "exrp")
}

func TestLoadGrammarFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.yaml")
	content := `base: expr
package: syntax
token_import: example.com/lox/token
marker: Node
marker_embeds: [Walkable]
variants:
  - "Binary : Expr Left, token.Token Op, Expr Right"
  - "Nothing"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	grammar, err := LoadGrammarFile(path)
	require.NoError(t, err)

	assert.Equal(t, "expr", grammar.Base)
	assert.Equal(t, "syntax", grammar.Package)
	assert.Equal(t, "example.com/lox/token", grammar.TokenImport)
	assert.Equal(t, "Node", grammar.MarkerName())
	require.Len(t, grammar.Variants, 2)
	assert.Len(t, grammar.Variants[0].Fields, 3)
	assert.Empty(t, grammar.Variants[1].Fields)
}

func TestLoadGrammarFile_MalformedVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.yaml")
	content := `base: expr
package: ast
variants:
  - "Binary : Expr"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadGrammarFile(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Binary : Expr", parseErr.Spec)
}

func TestLoadGrammarFile_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing base", "package: ast\nvariants: [\"Nothing\"]\n"},
		{"missing package", "base: expr\nvariants: [\"Nothing\"]\n"},
		{"no variants", "base: expr\npackage: ast\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "grammar.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadGrammarFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadGrammarFile_NotFound(t *testing.T) {
	_, err := LoadGrammarFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
