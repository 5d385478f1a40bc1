// Package parser turns a tokenizer output into an ast.Program, per
// spec.md §4.2: statement-by-statement with per-statement recovery,
// expressions built through a shunting-yard + RPN pipeline, and
// elementary type-checking of logical operators.
package parser

import (
	"github.com/brslang/brsc/internal/ast"
	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/token"
)

// Parse parses a full token stream (as produced by lexer.Tokenize) into
// a Program. It returns ok == false when at least one diagnostic was
// reported to sink, per spec.md §5: "when the parser reports at least
// one error, the generator is skipped."
func Parse(tokens []token.Token, sink *diag.Sink) (*ast.Program, bool) {
	lines := splitLines(tokens)

	var stmts []ast.Stmt
	idx := 0
	for idx < len(lines) {
		var stmt ast.Stmt
		stmt, idx = parseStatement(lines, idx, sink)
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return &ast.Program{Statements: stmts}, !sink.HasErrors()
}

// parseStatement dispatches a single line to one of the four statement
// grammars of spec.md §4.2, or falls through to per-token recovery.
func parseStatement(lines [][]token.Token, idx int, sink *diag.Sink) (ast.Stmt, int) {
	line := lines[idx]
	if len(line) == 0 {
		return nil, idx + 1
	}

	first := line[0]
	switch {
	case first.Kind == token.Exit:
		return parseExitOrPrint(line, true, sink), idx + 1

	case first.Kind == token.Print:
		return parseExitOrPrint(line, false, sink), idx + 1

	case len(line) >= 2 && first.Kind == token.Id && line[1].Kind == token.Equals:
		return parseAssign(line, sink), idx + 1

	case first.Kind == token.OpenCurlyBracket:
		return parseScope(lines, idx, sink)

	default:
		for _, t := range line {
			sink.Errorf(diag.KindUnexpectedToken, t.Span, "unexpected token %s", t.Kind)
		}
		return nil, idx + 1
	}
}

// parseExitOrPrint implements spec.md §4.2 rules 1 and 2, which are
// structurally identical apart from the keyword.
func parseExitOrPrint(line []token.Token, isExit bool, sink *diag.Sink) ast.Stmt {
	kwTok := line[0]

	missingClose := diag.KindExitClosedBracketMissing
	name := "exit"
	if !isExit {
		name = "print"
	}

	if len(line) < 2 || line[1].Kind != token.OpenBracket {
		if isExit {
			sink.Errorf(diag.KindExitOpenBracketMissing, kwTok.Span, "exit is not followed by '('")
		} else {
			sink.Errorf(diag.KindExitOpenBracketMissing, kwTok.Span, "print is not followed by '('")
		}
		if isExit {
			return &ast.ExitStmt{Tok: kwTok}
		}
		return &ast.PrintStmt{Tok: kwTok}
	}

	exprTokens := line[2:]
	if len(exprTokens) > 0 && exprTokens[len(exprTokens)-1].Kind == token.ClosedBracket {
		exprTokens = exprTokens[:len(exprTokens)-1]
	} else {
		sink.Errorf(missingClose, kwTok.Span, "missing ')' to close %s", name)
	}

	expr := parseExpression(exprTokens, sink)

	if isExit {
		return &ast.ExitStmt{Tok: kwTok, Expr: expr}
	}
	return &ast.PrintStmt{Tok: kwTok, Expr: expr}
}

func parseAssign(line []token.Token, sink *diag.Sink) ast.Stmt {
	idTok := line[0]
	expr := parseExpression(line[2:], sink)
	return &ast.AssignStmt{Id: idTok, Expr: expr}
}

// parseScope implements spec.md §4.2 rule 4: consume whole statements
// until the matching ClosedCurlyBracket line, reporting
// ErrScopeClosesCurlyBracketMissing against the opening span if input
// runs out first. Scopes nest via recursive parseStatement calls.
func parseScope(lines [][]token.Token, idx int, sink *diag.Sink) (ast.Stmt, int) {
	openTok := lines[idx][0]
	i := idx + 1

	var body []ast.Stmt
	for i < len(lines) {
		line := lines[i]
		if len(line) == 1 && line[0].Kind == token.ClosedCurlyBracket {
			return &ast.ScopeStmt{OpenTok: openTok, Body: body}, i + 1
		}

		var stmt ast.Stmt
		stmt, i = parseStatement(lines, i, sink)
		if stmt != nil {
			body = append(body, stmt)
		}
	}

	sink.Errorf(diag.KindScopeClosesCurlyBracketMissing, openTok.Span, "'{' opened here is never closed")
	return &ast.ScopeStmt{OpenTok: openTok, Body: body}, i
}
