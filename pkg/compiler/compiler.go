// Package compiler is brsc's public entry point: lex, parse, and
// (conditionally) generate assembly text for one BRS source file, per
// spec.md §2's three-stage pipeline and §5's "parser error suppresses
// codegen" rule.
package compiler

import (
	"github.com/brslang/brsc/internal/codegen"
	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/lexer"
	"github.com/brslang/brsc/internal/parser"
	"github.com/brslang/brsc/internal/target"
)

// Result is the outcome of one Compile call.
type Result struct {
	// Assembly is the generated assembly text. Empty when the parser
	// reported any error.
	Assembly string

	// Diagnostics is every diagnostic reported during lexing, parsing,
	// and (if reached) code generation, stable-ordered by source span.
	Diagnostics []diag.Diagnostic
}

// Compile runs the full pipeline over source against t. It takes no file
// name; rendering diagnostics against one is left to the caller (see
// diag.Render). This package never touches the filesystem, matching the teacher's
// separation between its cmd package (I/O) and its internal packages
// (pure functions over strings).
func Compile(source string, t target.Target) (Result, error) {
	sink := diag.NewSink()

	tokens := lexer.Tokenize(source)
	program, ok := parser.Parse(tokens, sink)

	var asm string
	if ok {
		var err error
		asm, err = codegen.Generate(program, t, sink)
		if err != nil {
			return Result{Diagnostics: sink.All()}, err
		}
	}

	return Result{Assembly: asm, Diagnostics: sink.All()}, nil
}
