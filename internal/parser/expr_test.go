package parser

import (
	"testing"

	"github.com/brslang/brsc/internal/ast"
	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/lexer"
	"github.com/brslang/brsc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exprTokens tokenizes src and drops the Whitespace/Newline delimiters
// parseExpression never sees in normal use (they're stripped by
// splitLines before an expression's tokens ever reach it).
func exprTokens(src string) []token.Token {
	var out []token.Token
	for _, t := range lexer.Tokenize(src) {
		if t.Kind == token.Whitespace || t.Kind == token.Newline || t.Kind == token.EOF {
			continue
		}
		out = append(out, t)
	}
	return out
}

func parseExprHelper(t *testing.T, src string) (ast.Expr, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	expr := parseExpression(exprTokens(src), sink)
	return expr, sink
}

func mustParseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, sink := parseExprHelper(t, src)
	require.Empty(t, sink.All(), "unexpected diagnostics parsing %q", src)
	require.NotNil(t, expr)
	return expr
}

func TestPrecedenceHigherBindsTighter(t *testing.T) {
	// spec.md §8 invariant 4: for operators a of higher precedence than
	// b, "x b y a z" parses as "x b (y a z)". Multiply (prec 1) binds
	// tighter than Plus (prec 0): x + y * z == x + (y * z).
	expr := mustParseExpr(t, "x + y * z")
	op, ok := expr.(*ast.Op)
	require.True(t, ok)
	assert.Equal(t, token.Plus, op.Kind)

	rhs, ok := op.Rhs.(*ast.Op)
	require.True(t, ok, "rhs should be the tighter-binding (y * z), got %T", op.Rhs)
	assert.Equal(t, token.Multiply, rhs.Kind)
}

func TestExponentIsRightAssociative(t *testing.T) {
	// spec.md §8 invariant 4: "x ** y ** z" parses as "x ** (y ** z)".
	expr := mustParseExpr(t, "x ** y ** z")
	op, ok := expr.(*ast.Op)
	require.True(t, ok)
	assert.Equal(t, token.Exponent, op.Kind)

	_, lhsIsOp := op.Lhs.(*ast.Op)
	assert.False(t, lhsIsOp, "exponent should be right-associative: lhs must be x, not (x ** y)")

	rhs, ok := op.Rhs.(*ast.Op)
	require.True(t, ok, "rhs should be the nested (y ** z)")
	assert.Equal(t, token.Exponent, rhs.Kind)
}

func TestArithmeticOperatorsAreLeftAssociative(t *testing.T) {
	// x - y - z == (x - y) - z
	expr := mustParseExpr(t, "x - y - z")
	op, ok := expr.(*ast.Op)
	require.True(t, ok)

	lhs, ok := op.Lhs.(*ast.Op)
	require.True(t, ok, "minus should be left-associative: lhs must be (x - y)")
	assert.Equal(t, token.Minus, lhs.Kind)

	_, rhsIsOp := op.Rhs.(*ast.Op)
	assert.False(t, rhsIsOp, "rhs must be the plain identifier z")
}

func TestGroupingBracketsOverridePrecedence(t *testing.T) {
	expr := mustParseExpr(t, "(x + y) * z")
	op, ok := expr.(*ast.Op)
	require.True(t, ok)
	assert.Equal(t, token.Multiply, op.Kind)

	lhs, ok := op.Lhs.(*ast.Op)
	require.True(t, ok)
	assert.Equal(t, token.Plus, lhs.Kind)
}

func TestUnaryNotBindsTighterThanLogicalBinary(t *testing.T) {
	expr := mustParseExpr(t, "!! x && y")
	op, ok := expr.(*ast.Op)
	require.True(t, ok)
	assert.Equal(t, token.And, op.Kind)

	lhs, ok := op.Lhs.(*ast.Op)
	require.True(t, ok, "lhs should be the tighter-binding (!! x)")
	assert.Equal(t, token.Not, lhs.Kind)
	assert.Nil(t, lhs.Lhs, "Not is unary: no lhs operand")
}

func TestUnmatchedClosedBracketReportsError(t *testing.T) {
	_, sink := parseExprHelper(t, "x + y)")
	all := sink.All()
	require.Len(t, all, 1)
	assert.Equal(t, diag.KindExpressionOpenBracketMissing, all[0].Kind)
}

func TestUnclosedOpenBracketReportsError(t *testing.T) {
	_, sink := parseExprHelper(t, "(x + y")
	all := sink.All()
	require.Len(t, all, 1)
	assert.Equal(t, diag.KindExpressionClosedBracketMissing, all[0].Kind)
}

func TestMissingOperandReportsError(t *testing.T) {
	_, sink := parseExprHelper(t, "x +")
	all := sink.All()
	require.Len(t, all, 1)
	assert.Equal(t, diag.KindMissingOperand, all[0].Kind)
}
