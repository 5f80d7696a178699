package astgen

import (
	"os"

	"github.com/loxkit/astgen/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTokenImport is the import path of the lexer's token type, the one
// external type generated field declarations may reference.
const DefaultTokenImport = "github.com/loxkit/lox/internal/token"

// Built-in grammars for the Lox toolchain. Each variant line is kept in
// the compact specification syntax so the built-ins exercise the same
// parser as user-supplied grammar files.
var builtinGrammars = map[string]struct {
	pkg          string
	markerEmbeds []string
	variants     []string
}{
	"expr": {
		pkg:          "ast",
		markerEmbeds: []string{"PrettyPrint"},
		variants: []string{
			"Binary : Expr Left, token.Token Op, Expr Right",
			"Grouping : Expr Expr",
			"Literal : string Value",
			"Unary : token.Token Op, Expr Right",
			"Ternary : Expr Condition, Expr Left, Expr Right",
			"Nothing",
		},
	},
	"stmt": {
		pkg:          "ast",
		markerEmbeds: []string{"EvaluateStmt", "PrettyPrint"},
		variants: []string{
			"Expression : Expr Expr",
			"Print : Expr Expr",
			"Var : token.Token Name, Expr Initializer",
			"Block : []Stmt Statements",
		},
	},
}

// BuiltinGrammarNames returns the names of the built-in grammars.
func BuiltinGrammarNames() []string {
	return []string{"expr", "stmt"}
}

// BuiltinGrammar returns one of the built-in node family grammars by name.
func BuiltinGrammar(name string) (*Grammar, error) {
	builtin, ok := builtinGrammars[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownGrammar, "%q (built-ins: expr, stmt)", name)
	}

	variants, err := ParseVariants(builtin.variants)
	if err != nil {
		// Built-in variant lines are fixed at compile time
		return nil, errors.Wrapf(err, "built-in grammar %q", name)
	}

	return &Grammar{
		Base:         name,
		Package:      builtin.pkg,
		TokenImport:  DefaultTokenImport,
		MarkerEmbeds: builtin.markerEmbeds,
		Variants:     variants,
	}, nil
}

// grammarFile is the YAML form of a grammar. Variant lines use the same
// compact specification syntax as the built-ins.
type grammarFile struct {
	Base         string   `yaml:"base"`
	Package      string   `yaml:"package"`
	TokenImport  string   `yaml:"token_import"`
	Marker       string   `yaml:"marker"`
	MarkerEmbeds []string `yaml:"marker_embeds"`
	Variants     []string `yaml:"variants"`
}

// LoadGrammarFile reads a grammar description from a YAML file.
func LoadGrammarFile(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read grammar file %s", path)
	}

	var file grammarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parse grammar file %s", path)
	}

	if file.Base == "" {
		return nil, errors.Newf("grammar file %s: missing 'base'", path)
	}
	if file.Package == "" {
		return nil, errors.Newf("grammar file %s: missing 'package'", path)
	}
	if len(file.Variants) == 0 {
		return nil, errors.Newf("grammar file %s: no variants", path)
	}

	variants, err := ParseVariants(file.Variants)
	if err != nil {
		return nil, errors.Wrapf(err, "grammar file %s", path)
	}

	return &Grammar{
		Base:         file.Base,
		Package:      file.Package,
		TokenImport:  file.TokenImport,
		Marker:       file.Marker,
		MarkerEmbeds: file.MarkerEmbeds,
		Variants:     variants,
	}, nil
}
