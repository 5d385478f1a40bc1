package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brslang/brsc/internal/lexer"
	"github.com/brslang/brsc/internal/token"
)

var (
	lexEval       string
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a BRS file and print the resulting tokens",
	Long: `Tokenize (lex) a BRS program and print the resulting token stream.

Useful for debugging the lexer and understanding how BRS source is
tokenized, including the call-bracket-vs-grouping-bracket distinction
around exit(...) and print(...).

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's span")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show the literal's result type (num/bool) next to numeric and boolean tokens")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only Err tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	source, err := lexInput(args)
	if err != nil {
		return err
	}

	tokens := lexer.Tokenize(source)
	errCount := 0
	for _, t := range tokens {
		if t.Kind == token.Err {
			errCount++
		}
		if lexOnlyErrors && t.Kind != token.Err {
			continue
		}
		printToken(t)
	}

	if lexOnlyErrors && errCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errCount)
	}
	return nil
}

func lexInput(args []string) (string, error) {
	if lexEval != "" {
		return lexEval, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printToken(t token.Token) {
	out := fmt.Sprintf("%-14s %q", t.Kind, t.Lexeme())
	if lexShowType {
		if rt := literalResultType(t.Kind); rt != "" {
			out += " :" + rt
		}
	}
	if lexShowPos {
		out += " @" + t.Span.String()
	}
	fmt.Println(out)
}

// literalResultType names the result type of a literal token, the same
// "num"/"bool" vocabulary spec.md §4.2's ResultType uses, so lex can
// show a token's eventual type before the parser ever builds an AST.
func literalResultType(k token.Kind) string {
	switch k {
	case token.Number:
		return "num"
	case token.Boolean:
		return "bool"
	default:
		return ""
	}
}
