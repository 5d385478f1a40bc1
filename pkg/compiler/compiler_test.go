package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileExitLiteral(t *testing.T) {
	res, err := Compile("exit(0)", target.Default)
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.Contains(t, res.Assembly, "_start:")
	assert.Contains(t, res.Assembly, "syscall")
}

func TestCompileSkipsCodegenOnParserError(t *testing.T) {
	// spec.md §5: a single parser error suppresses code generation.
	res, err := Compile("exit(0", target.Default)
	require.NoError(t, err)
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, diag.KindExitClosedBracketMissing, res.Diagnostics[0].Kind)
	assert.Empty(t, res.Assembly)
}

func TestCompileEmptyProgram(t *testing.T) {
	res, err := Compile("", target.Default)
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.Contains(t, res.Assembly, "_start:")
}

func TestCompileAcrossTargets(t *testing.T) {
	targets := []target.Target{
		{Arch: target.X86_64, OS: target.Linux},
		{Arch: target.X86_64, OS: target.MacOS},
		{Arch: target.AArch64, OS: target.Linux},
		{Arch: target.AArch64, OS: target.MacOS},
	}
	for _, tg := range targets {
		res, err := Compile("x = 1 + 2\nexit(x)", tg)
		require.NoError(t, err)
		require.Empty(t, res.Diagnostics)
		assert.True(t, strings.Contains(res.Assembly, "_start"))
	}
}

func TestCompileTestdataFixtures(t *testing.T) {
	fixtures, err := filepath.Glob("../../testdata/*.brs")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures, "expected at least one testdata fixture")

	for _, path := range fixtures {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			source, err := os.ReadFile(path)
			require.NoError(t, err)

			res, err := Compile(string(source), target.Default)
			require.NoError(t, err)
			for _, d := range res.Diagnostics {
				assert.NotEqual(t, diag.SeverityError, d.Severity, "unexpected error diagnostic: %+v", d)
			}
			assert.NotEmpty(t, res.Assembly)
		})
	}
}
