// Package ast defines the abstract syntax tree produced by
// internal/parser and consumed by internal/codegen, per spec.md §3.
package ast

import (
	"bytes"
	"fmt"

	"github.com/brslang/brsc/internal/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the literal text of the token the node is
	// most closely associated with; useful for diagnostics and tests.
	TokenLiteral() string

	// String renders the node back to BRS source text. spec.md §8
	// invariant 3 requires that re-parsing String() reproduce an
	// equal AST, so String must be a faithful, if not necessarily
	// whitespace-identical, serialization.
	String() string

	// Span returns the node's source location.
	Span() token.Span
}

// Stmt is any of the four statement forms from spec.md §3: Exit,
// Print, Assign, Scope.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is either a Base leaf or an Op interior node, per spec.md §3.
type Expr interface {
	Node
	exprNode()
	// ResultType reports the inferred result type, per the inference
	// rules in spec.md §4.2.1.
	ResultType() ResultType
}

// ResultType is the Numeric/Boolean classification the parser assigns
// to every expression node (spec.md §3 and §4.2.1).
type ResultType int

const (
	Unknown ResultType = iota
	Numeric
	Boolean
)

func (r ResultType) String() string {
	switch r {
	case Numeric:
		return "Numeric"
	case Boolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Program is the root AST node: an ordered sequence of statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Span() token.Span {
	if len(p.Statements) > 0 {
		return p.Statements[0].Span()
	}
	return token.Span{}
}

// ExitStmt is `exit(expr)`.
type ExitStmt struct {
	Tok  token.Token // the Exit keyword token
	Expr Expr
}

func (s *ExitStmt) stmtNode()              {}
func (s *ExitStmt) TokenLiteral() string   { return "exit" }
func (s *ExitStmt) Span() token.Span       { return s.Tok.Span }
func (s *ExitStmt) String() string {
	if s.Expr == nil {
		return "exit()"
	}
	return fmt.Sprintf("exit(%s)", s.Expr.String())
}

// PrintStmt is `print(expr)`.
type PrintStmt struct {
	Tok  token.Token // the Print keyword token
	Expr Expr
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) TokenLiteral() string { return "print" }
func (s *PrintStmt) Span() token.Span     { return s.Tok.Span }
func (s *PrintStmt) String() string {
	if s.Expr == nil {
		return "print()"
	}
	return fmt.Sprintf("print(%s)", s.Expr.String())
}

// AssignStmt is `id = expr`.
type AssignStmt struct {
	Id   token.Token // the identifier token
	Expr Expr
}

func (s *AssignStmt) stmtNode()            {}
func (s *AssignStmt) TokenLiteral() string { return s.Id.Name }
func (s *AssignStmt) Span() token.Span     { return s.Id.Span }
func (s *AssignStmt) String() string {
	if s.Expr == nil {
		return fmt.Sprintf("%s = ", s.Id.Name)
	}
	return fmt.Sprintf("%s = %s", s.Id.Name, s.Expr.String())
}

// ScopeStmt is `{ stmt* }`, introducing a new lexical frame per
// spec.md §3 invariant 5.
type ScopeStmt struct {
	OpenTok token.Token // the opening '{' token
	Body    []Stmt
}

func (s *ScopeStmt) stmtNode()            {}
func (s *ScopeStmt) TokenLiteral() string { return "{" }
func (s *ScopeStmt) Span() token.Span     { return s.OpenTok.Span }
func (s *ScopeStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, st := range s.Body {
		out.WriteString(st.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// Num is a numeric literal leaf.
type Num struct {
	Tok token.Token
}

func (n *Num) exprNode()              {}
func (n *Num) TokenLiteral() string   { return n.Tok.Literal }
func (n *Num) Span() token.Span       { return n.Tok.Span }
func (n *Num) String() string         { return n.Tok.Literal }
func (n *Num) ResultType() ResultType { return Numeric }

// Id is an identifier reference leaf. Its result type is Unknown at
// parse time (spec.md §4.2.1: "Id -> Unknown (assumed compatible)");
// at code-gen time the generator looks the name up in the variable
// environment for its stack slot only and does not use the binding's
// recorded type (spec.md §4.3).
type Id struct {
	Tok token.Token
}

func (n *Id) exprNode()              {}
func (n *Id) TokenLiteral() string   { return n.Tok.Name }
func (n *Id) Span() token.Span       { return n.Tok.Span }
func (n *Id) String() string         { return n.Tok.Name }
func (n *Id) ResultType() ResultType { return Unknown }

// Bool is a boolean literal leaf.
type Bool struct {
	Tok token.Token
}

func (n *Bool) exprNode()            {}
func (n *Bool) TokenLiteral() string { return n.Tok.Lexeme() }
func (n *Bool) Span() token.Span     { return n.Tok.Span }
func (n *Bool) String() string       { return n.Tok.Lexeme() }
func (n *Bool) ResultType() ResultType { return Boolean }

// Op is a binary or unary operator node. For a unary operator (Not),
// Lhs is nil and Rhs holds the single operand, mirroring spec.md §3's
// "operand positions each hold either another Op (owned) or a Base".
type Op struct {
	Tok    token.Token // the operator token
	Lhs    Expr        // nil for unary operators
	Rhs    Expr
	Kind   token.OperatorKind
	Result ResultType
}

func (n *Op) exprNode()              {}
func (n *Op) TokenLiteral() string   { return n.Kind.String() }
func (n *Op) Span() token.Span       { return n.Tok.Span }
func (n *Op) ResultType() ResultType { return n.Result }

func (n *Op) String() string {
	if n.Kind.IsUnary() {
		return fmt.Sprintf("(%s%s)", n.Kind.String(), n.Rhs.String())
	}
	return fmt.Sprintf("(%s %s %s)", n.Lhs.String(), n.Kind.String(), n.Rhs.String())
}
