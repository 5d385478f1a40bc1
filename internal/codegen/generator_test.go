package codegen

import (
	"testing"

	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/lexer"
	"github.com/brslang/brsc/internal/parser"
	"github.com/brslang/brsc/internal/target"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func compileTo(t *testing.T, src string, tg target.Target) string {
	t.Helper()
	sink := diag.NewSink()
	toks := lexer.Tokenize(src)
	prog, ok := parser.Parse(toks, sink)
	require.True(t, ok, "parse errors: %v", sink.All())

	asm, err := Generate(prog, tg, sink)
	require.NoError(t, err)
	return asm
}

var fixtures = []struct {
	name string
	src  string
}{
	{"exit_literal", "exit(0)"},
	{"arithmetic_precedence", "x = 1 + 2 * 3 - (4 // 2)\nexit(x)"},
	{"exponent_right_assoc", "x = 2 ** 3 ** 2\nexit(x)"},
	{"logical_operators", "flag = true && (false || true)\nexit(flag)"},
	{"nested_scope_shadowing", "x = 1\n{x = 0\nexit(x)}\nexit(x)"},
	{"print_first_class", "print(42)\nexit(0)"},
}

var targets = []target.Target{
	{Arch: target.X86_64, OS: target.Linux},
	{Arch: target.X86_64, OS: target.MacOS},
	{Arch: target.AArch64, OS: target.Linux},
	{Arch: target.AArch64, OS: target.MacOS},
}

func TestGenerateFixturesAcrossTargets(t *testing.T) {
	for _, fx := range fixtures {
		for _, tg := range targets {
			name := fx.name + "_" + tg.String()
			t.Run(name, func(t *testing.T) {
				asm := compileTo(t, fx.src, tg)
				snaps.MatchSnapshot(t, asm)
			})
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	// spec.md §4.3's implicit determinism guarantee: the same program
	// compiled twice against the same target must emit identical text,
	// since label counters and slot offsets are purely structural.
	src := "x = 2 ** 3 ** 2\nexit(x)"
	a := compileTo(t, src, target.Default)
	b := compileTo(t, src, target.Default)
	require.Equal(t, a, b)
}

func TestGenerateUnsupportedTargetErrors(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.Tokenize("exit(0)")
	prog, ok := parser.Parse(toks, sink)
	require.True(t, ok)

	_, err := Generate(prog, target.Target{Arch: target.X86_64, OS: target.Windows}, sink)
	require.Error(t, err)
}

func TestGenerateUnknownIdentifierWarns(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.Tokenize("exit(neverAssigned)")
	prog, ok := parser.Parse(toks, sink)
	require.True(t, ok)

	asm, err := Generate(prog, target.Default, sink)
	require.NoError(t, err)
	require.NotEmpty(t, asm)

	all := sink.All()
	require.Len(t, all, 1)
	require.Equal(t, diag.KindUnknownIdent, all[0].Kind)
}
