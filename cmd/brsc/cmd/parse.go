package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/lexer"
	"github.com/brslang/brsc/internal/parser"
)

var (
	parseExpr    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a BRS file and report success or its diagnostics",
	Long: `Parse BRS source code, reporting success or parser diagnostics.

If no file is provided, reads from stdin. Use -e to parse an inline
snippet instead. Pass --dump-ast to print the full parsed Abstract
Syntax Tree instead of just a summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline source instead of reading a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "print the full parsed AST instead of a one-line summary")
}

func runParse(_ *cobra.Command, args []string) error {
	source, filename, err := parseInput(args)
	if err != nil {
		return err
	}

	sink := diag.NewSink()
	tokens := lexer.Tokenize(source)
	program, ok := parser.Parse(tokens, sink)

	if !ok {
		fmt.Fprint(os.Stderr, diag.Render(filename, source, sink.All(), true))
		return fmt.Errorf("parsing failed with %d error(s)", len(sink.All()))
	}

	if parseDumpAST {
		fmt.Println(program.String())
	} else {
		fmt.Printf("parsed %d statement(s) successfully\n", len(program.Statements))
	}
	return nil
}

func parseInput(args []string) (source, filename string, err error) {
	if parseExpr != "" {
		return parseExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}
