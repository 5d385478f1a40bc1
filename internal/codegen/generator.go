package codegen

import (
	"fmt"
	"strings"

	"github.com/brslang/brsc/internal/ast"
	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/target"
	"github.com/brslang/brsc/internal/token"
)

// generator holds the mutable state threaded through one Generate call:
// the chosen instruction factory, the variable environment, a running
// label counter for exponentiation loops, and the diagnostic sink
// unknown identifiers are reported against.
type generator struct {
	tmpl   templateSet
	os     target.OS
	env    *StackHandler
	sink   *diag.Sink
	out    strings.Builder
	labels int

	sawExit    bool
	needsPrint bool
}

// Generate lowers prog to assembly text for t, per spec.md §4.3. Callers
// must not invoke Generate after the parser reported errors (spec.md
// §5: codegen is skipped when the parser's sink already has errors).
func Generate(prog *ast.Program, t target.Target, sink *diag.Sink) (string, error) {
	if !t.Supported() {
		return "", fmt.Errorf("codegen: target %s has no backend", t)
	}

	g := &generator{
		tmpl: templatesFor(t.Arch),
		os:   t.OS,
		env:  NewStackHandler(),
		sink: sink,
	}

	g.out.WriteString(g.tmpl.Header())
	g.out.WriteString("\n")

	for _, stmt := range prog.Statements {
		g.emitStmt(stmt)
	}

	if !g.sawExit {
		g.out.WriteString("\n")
		g.writeComment("default zero-exit epilogue")
		g.out.WriteString(g.tmpl.PushImmediate("0"))
		g.out.WriteString("\n")
		g.out.WriteString(g.tmpl.ExitSequence(g.os))
		g.out.WriteString("\n")
	}

	if g.needsPrint {
		g.out.WriteString("\n")
		g.out.WriteString(g.tmpl.Subroutines(g.os))
	}

	return g.out.String(), nil
}

func templatesFor(a target.Arch) templateSet {
	if a == target.AArch64 {
		return arm64Templates{}
	}
	return x86Templates{}
}

func (g *generator) writeComment(text string) {
	g.out.WriteString(fmt.Sprintf("        %s %s\n", g.tmpl.CommentPrefix(), text))
}

func (g *generator) emitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExitStmt:
		g.writeComment("exit(" + exprSource(s.Expr) + ")")
		g.emitExpr(s.Expr)
		g.out.WriteString(g.tmpl.ExitSequence(g.os))
		g.out.WriteString("\n")
		g.env.Shrink(8)
		g.sawExit = true

	case *ast.PrintStmt:
		g.writeComment("print(" + exprSource(s.Expr) + ")")
		g.emitExpr(s.Expr)
		g.out.WriteString(g.tmpl.PrintSequence())
		g.out.WriteString("\n")
		g.env.Shrink(8)
		g.needsPrint = true

	case *ast.AssignStmt:
		g.writeComment(s.Id.Name + " = " + exprSource(s.Expr))
		g.emitExpr(s.Expr)
		rt := ast.Numeric
		if s.Expr != nil {
			rt = s.Expr.ResultType()
		}
		g.env.Assign(s.Id.Name, rt)

	case *ast.ScopeStmt:
		g.writeComment("scope begin")
		g.env.EnterScope()
		for _, inner := range s.Body {
			g.emitStmt(inner)
		}
		freed := g.env.LeaveScope()
		if adj := g.tmpl.AdjustStack(freed); adj != "" {
			g.out.WriteString(adj)
			g.out.WriteString("\n")
		}
		g.writeComment("scope end")
	}
}

func exprSource(e ast.Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

// emitExpr lowers e as a stack-machine sequence, leaving its one-word
// result on top of the physical stack, per spec.md §4.3.
func (g *generator) emitExpr(e ast.Expr) {
	switch n := e.(type) {
	case nil:
		g.out.WriteString(g.tmpl.PushImmediate("0"))
		g.out.WriteString("\n")
		g.env.Grow(8)

	case *ast.Num:
		g.out.WriteString(g.tmpl.PushImmediate(n.Tok.Literal))
		g.out.WriteString("\n")
		g.env.Grow(8)

	case *ast.Bool:
		lit := "0"
		if n.Tok.BoolValue {
			lit = "1"
		}
		g.out.WriteString(g.tmpl.PushImmediate(lit))
		g.out.WriteString("\n")
		g.env.Grow(8)

	case *ast.Id:
		offset, _, ok := g.env.Lookup(n.Tok.Name)
		if !ok {
			g.sink.Warnf(diag.KindUnknownIdent, n.Tok.Span, "unknown identifier %q", n.Tok.Name)
			g.out.WriteString(g.tmpl.PushImmediate("0"))
			g.out.WriteString("\n")
			g.env.Grow(8)
			return
		}
		g.out.WriteString(g.tmpl.PushVar(offset))
		g.out.WriteString("\n")
		g.env.Grow(8)

	case *ast.Op:
		g.emitOp(n)
	}
}

func (g *generator) emitOp(n *ast.Op) {
	if n.Kind.IsUnary() {
		g.emitExpr(n.Rhs)
		g.out.WriteString(g.tmpl.UnaryNot())
		g.out.WriteString("\n")
		// net effect: one slot popped, one pushed; size unchanged.
		return
	}

	g.emitExpr(n.Lhs)
	g.emitExpr(n.Rhs)

	labelID := 0
	if n.Kind == token.Exponent {
		labelID = g.labels
		g.labels++
	}

	g.out.WriteString(g.tmpl.BinOp(n.Kind, labelID))
	g.out.WriteString("\n")
	// two slots popped, one pushed: net -8.
	g.env.Shrink(8)
}
