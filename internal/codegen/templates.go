// Package codegen lowers an ast.Program to target-specific assembly
// text, per spec.md §4.3: a stack-machine expression evaluator over a
// target-parametrized instruction factory, plus a StackHandler variable
// environment. The per-(arch) template sets are grounded in the shape
// of skx-math-compiler's compiler/generator.go (one gen* method per
// operation, #ID-style label placeholders substituted at emission) but
// produce the two real instruction sets spec.md §4.3's table names
// instead of skx's single floating-point stack machine.
package codegen

import (
	"github.com/brslang/brsc/internal/target"
	"github.com/brslang/brsc/internal/token"
)

// templateSet is the target-specific instruction factory of spec.md
// §4.3. Every method returns a ready-to-append block of assembly lines;
// callers are responsible for joining them with the right indentation.
type templateSet interface {
	// CommentPrefix is the line-comment marker of spec.md §4.3's
	// output shape: ";" for x86-64/NASM, "//" for AArch64.
	CommentPrefix() string

	// Header returns the entry-point declaration and _start label that
	// open the emitted program.
	Header() string

	// PushImmediate pushes a decimal literal onto the stack.
	PushImmediate(literal string) string

	// PushVar loads and pushes the value byteOffset bytes below the
	// current stack pointer.
	PushVar(byteOffset int) string

	// BinOp emits a binary operator over the top two stack slots
	// (right operand on top, per spec.md §4.3's "pops right then
	// left"), pushing the one-word result. labelID is only consulted
	// for token.Exponent, which needs unique loop labels.
	BinOp(op token.OperatorKind, labelID int) string

	// UnaryNot pops one boolean-valued slot, logically negates it, and
	// pushes the result.
	UnaryNot() string

	// AdjustStack reclaims n bytes from the stack, emitted when a
	// Scope exits (spec.md §4.3: "variable records ... destroyed on
	// scope exit").
	AdjustStack(n int) string

	// ExitSequence pops the exit status and issues the OS-specific
	// exit syscall (spec.md §4.3's syscall-number table).
	ExitSequence(os target.OS) string

	// PrintSequence pops the value to print and calls the int-to-string
	// and print subroutines (spec.md §4.3's supplemental helper block,
	// and SPEC_FULL.md's "print is first-class" decision).
	PrintSequence() string

	// Subroutines returns the integer-to-string and raw-print helper
	// bodies, appended once at the end of the file if referenced.
	Subroutines(os target.OS) string
}
