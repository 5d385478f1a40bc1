package parser

import (
	"github.com/brslang/brsc/internal/ast"
	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/token"
)

// parseExpression turns a flat token slice (already stripped of the
// enclosing call-brackets and whitespace) into an expression tree,
// following spec.md §4.2.1's two-step pipeline: a shunting-yard pass
// to Reverse Polish Notation, then an RPN evaluator that builds Op
// nodes. This replaces the ad-hoc recursive-descent operator parser
// spec.md §9 says the original project evolved away from.
func parseExpression(tokens []token.Token, sink *diag.Sink) ast.Expr {
	rpn := toRPN(tokens, sink)
	return evalRPN(rpn, sink)
}

// toRPN implements the shunting-yard rules of spec.md §4.2.1.
func toRPN(tokens []token.Token, sink *diag.Sink) []token.Token {
	var output []token.Token
	var ops []token.Token

	for _, t := range tokens {
		switch t.Kind {
		case token.Id, token.Number, token.Boolean:
			output = append(output, t)

		case token.Operator:
			switch t.Op {
			case token.OpBracketOpen:
				ops = append(ops, t)

			case token.OpBracketClosed:
				matched := false
				for len(ops) > 0 {
					top := ops[len(ops)-1]
					ops = ops[:len(ops)-1]
					if top.Op == token.OpBracketOpen {
						matched = true
						break
					}
					output = append(output, top)
				}
				if !matched {
					sink.Errorf(diag.KindExpressionOpenBracketMissing, t.Span, "')' has no matching '('")
				}

			default:
				for len(ops) > 0 {
					top := ops[len(ops)-1]
					if top.Op == token.OpBracketOpen {
						break
					}
					if !shouldPopBeforePush(top.Op, t.Op) {
						break
					}
					output = append(output, top)
					ops = ops[:len(ops)-1]
				}
				ops = append(ops, t)
			}

		default:
			sink.Errorf(diag.KindUnexpectedToken, t.Span, "unexpected token %s in expression", t.Kind)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Op == token.OpBracketOpen {
			sink.Errorf(diag.KindExpressionClosedBracketMissing, top.Span, "'(' is never closed")
			continue
		}
		output = append(output, top)
	}

	return output
}

// shouldPopBeforePush reports whether the operator on top of the stack
// must be popped to output before pushing next, per spec.md §4.2.1:
// "while the stack top ... satisfies top.precedence > op.precedence OR
// (top.precedence == op.precedence AND op is left-associative)".
func shouldPopBeforePush(top, next token.OperatorKind) bool {
	if top.Precedence() > next.Precedence() {
		return true
	}
	return top.Precedence() == next.Precedence() && next.Associativity() == token.Left
}

// evalRPN builds an expression tree from RPN output, per spec.md
// §4.2.1's "RPN evaluator": operands push as Base nodes, operators pop
// their operands and push a new Op. A missing operand reports
// ErrMissingOperand and is padded with a zero-valued placeholder so
// evaluation can keep going and surface any further diagnostics in the
// same pass.
func evalRPN(rpn []token.Token, sink *diag.Sink) ast.Expr {
	var stack []ast.Expr

	placeholder := func(span token.Span) ast.Expr {
		return &ast.Num{Tok: token.Token{Kind: token.Number, Literal: "0", Span: span}}
	}

	for _, t := range rpn {
		switch t.Kind {
		case token.Id:
			stack = append(stack, &ast.Id{Tok: t})
		case token.Number:
			stack = append(stack, &ast.Num{Tok: t})
		case token.Boolean:
			stack = append(stack, &ast.Bool{Tok: t})
		case token.Operator:
			op := t.Op
			result := ast.Numeric
			if op.IsLogical() {
				result = ast.Boolean
			}

			if op.IsUnary() {
				if len(stack) < 1 {
					sink.Errorf(diag.KindMissingOperand, t.Span, "operator %s missing its operand", op)
					stack = append(stack, placeholder(t.Span))
				}
				rhs := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				checkLogicalOperand(sink, op, t.Span, rhs)
				stack = append(stack, &ast.Op{Tok: t, Rhs: rhs, Kind: op, Result: result})
				continue
			}

			for len(stack) < 2 {
				sink.Errorf(diag.KindMissingOperand, t.Span, "operator %s missing operand", op)
				stack = append(stack, placeholder(t.Span))
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			checkLogicalOperand(sink, op, t.Span, lhs)
			checkLogicalOperand(sink, op, t.Span, rhs)
			stack = append(stack, &ast.Op{Tok: t, Lhs: lhs, Rhs: rhs, Kind: op, Result: result})
		}
	}

	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

// checkLogicalOperand enforces spec.md §3 invariant 3: no Op node
// containing a logical operator may have a non-Boolean operand. An
// Unknown result type (an Id reference) is assumed compatible, per
// spec.md §4.2.1's result-type inference rule.
func checkLogicalOperand(sink *diag.Sink, op token.OperatorKind, span token.Span, operand ast.Expr) {
	if !op.IsLogical() {
		return
	}
	rt := operand.ResultType()
	if rt != ast.Boolean && rt != ast.Unknown {
		sink.Errorf(diag.KindTypeMismatch, span, "operator %s requires a Boolean operand, got %s", op, rt)
	}
}
