package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loxkit/astgen/astgen"
	"github.com/loxkit/astgen/astgen/golang"
	"github.com/loxkit/astgen/astgen/markdown"
	"github.com/loxkit/astgen/errors"
	"github.com/loxkit/astgen/logging/zaplogger"
)

var (
	astgenGrammar     string
	astgenLang        string
	astgenPackage     string
	astgenTokenImport string
	astgenMarker      string
	astgenFieldNaming string
	astgenJSONLogs    bool
)

// AstgenCmd represents the astgen command
var AstgenCmd = &cobra.Command{
	Use:   "astgen <output-dir>",
	Short: "Generate AST node type definitions",
	Long: `Generate AST node type definitions from a compact grammar description.

Each variant line of the grammar has the form 'Name : Type Field, Type Field';
a line without a colon declares a unit variant. The generator emits one struct
per variant plus a shared marker interface, writes the result into the given
directory, and runs the target's source formatter on the output.

The output directory must already exist. Generated files overwrite any
previous run.

Examples:
  astgen internal/ast                        # Generate expr.go from the built-in grammar
  astgen --grammar stmt internal/ast         # Built-in statement grammar
  astgen --grammar grammar.yaml internal/ast # Grammar from a YAML file
  astgen --lang markdown docs/ast            # Documentation instead of source
  astgen --field-naming lower internal/ast   # Lowercase field names`,
	Args:          cobra.ExactArgs(1),
	RunE:          runAstgen,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	AstgenCmd.Flags().StringVarP(&astgenGrammar, "grammar", "g", "expr", "Built-in grammar name (expr, stmt) or path to a YAML grammar file")
	AstgenCmd.Flags().StringVarP(&astgenLang, "lang", "l", "go", "Target language: go, markdown, all")
	AstgenCmd.Flags().StringVar(&astgenPackage, "package", "", "Override the generated package name")
	AstgenCmd.Flags().StringVar(&astgenTokenImport, "token-import", "", "Override the token type import path")
	AstgenCmd.Flags().StringVar(&astgenMarker, "marker", "", "Override the marker interface name")
	AstgenCmd.Flags().StringVar(&astgenFieldNaming, "field-naming", "exported", "Field naming convention: exported, lower")
	AstgenCmd.Flags().BoolVar(&astgenJSONLogs, "json-logs", false, "Emit logs as JSON")
}

func runAstgen(cmd *cobra.Command, args []string) error {
	outputDir := args[0]

	logger, err := buildLogger()
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer logger.Sync() //nolint:errcheck

	grammar, err := loadGrammar()
	if err != nil {
		return err
	}
	applyOverrides(grammar)

	languages := getLanguages(astgenLang)
	if len(languages) == 0 {
		return errors.Wrapf(errors.ErrUnknownLanguage, "%q (supported: go, markdown, all)", astgenLang)
	}

	emitter := astgen.NewEmitter(zaplogger.NewZapAdapter(logger.Sugar()))

	for _, lang := range languages {
		gen, err := newGenerator(lang)
		if err != nil {
			return err
		}

		path, err := emitter.Emit(grammar, gen, outputDir)
		if err != nil {
			return errors.Wrapf(err, "failed to generate %s output", lang)
		}

		fmt.Printf("✓ Generated %s (%d variants)\n", path, len(grammar.Variants))
	}

	return nil
}

// loadGrammar resolves the --grammar flag to a built-in grammar or a YAML
// grammar file. Anything that looks like a path is treated as a file.
func loadGrammar() (*astgen.Grammar, error) {
	name := strings.TrimSpace(astgenGrammar)
	if strings.ContainsAny(name, "/\\.") {
		return astgen.LoadGrammarFile(name)
	}
	return astgen.BuiltinGrammar(name)
}

// applyOverrides applies the per-invocation flag overrides to the grammar
func applyOverrides(grammar *astgen.Grammar) {
	if astgenPackage != "" {
		grammar.Package = astgenPackage
	}
	if astgenTokenImport != "" {
		grammar.TokenImport = astgenTokenImport
	}
	if astgenMarker != "" {
		grammar.Marker = astgenMarker
	}
}

// getLanguages returns the list of targets to generate based on the --lang flag
func getLanguages(lang string) []string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "all":
		return []string{"go", "markdown"}
	case "go", "golang":
		return []string{"go"}
	case "markdown", "md":
		return []string{"markdown"}
	default:
		return nil
	}
}

// newGenerator creates the generator for a target language
func newGenerator(lang string) (astgen.Generator, error) {
	switch lang {
	case "go":
		naming, err := golang.ParseFieldNaming(astgenFieldNaming)
		if err != nil {
			return nil, err
		}
		return golang.NewGeneratorWithNaming(naming), nil
	case "markdown":
		return markdown.NewGenerator(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownLanguage, "%q", lang)
	}
}

// buildLogger configures zap for CLI use: human-readable by default, JSON
// when requested. Progress goes to stdout via fmt, logs stay on stderr.
func buildLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if astgenJSONLogs {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}
