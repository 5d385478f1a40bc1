package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brslang/brsc/internal/config"
	"github.com/brslang/brsc/internal/diag"
	"github.com/brslang/brsc/internal/target"
	"github.com/brslang/brsc/pkg/compiler"
)

var (
	buildOutput          string
	buildOutDir          string
	buildTarget          string
	buildVerbose         bool
	buildJSONDiagnostics bool
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Compile a BRS source file to assembly",
	Long: `Compile a .brs source file to target-specific assembly text.

The default output path is derived by replacing the input extension
with .asm. An optional .brsc.yaml (or brsc.yaml) file in the source
file's directory supplies defaults for --target and --outdir; an
explicit flag always wins over the config file.

Examples:
  # Compile to <file>.asm next to the source
  brsc build program.brs

  # Compile for AArch64 macOS, to a specific path
  brsc build program.brs --target aarch64-macos -o out.s

  # Emit diagnostics as JSON for editor/CI consumption
  brsc build program.brs --json-diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output file (default: <input>.asm)")
	buildCmd.Flags().StringVar(&buildOutDir, "outdir", "", "output directory, when --output is not given")
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "target triple, e.g. x86_64-linux, aarch64-macos")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "verbose output")
	buildCmd.Flags().BoolVar(&buildJSONDiagnostics, "json-diagnostics", false, "emit diagnostics as JSON instead of source-pointer text")
}

func runBuild(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	cfg, err := config.Load(filepath.Dir(filename))
	if err != nil {
		return err
	}

	tripleStr := buildTarget
	if tripleStr == "" {
		tripleStr = cfg.Target
	}
	t, err := target.Parse(tripleStr)
	if err != nil {
		return err
	}

	if buildVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s for %s...\n", filename, t)
	}

	res, err := compiler.Compile(source, t)
	if err != nil {
		return fmt.Errorf("codegen failed: %w", err)
	}

	if len(res.Diagnostics) > 0 {
		if buildJSONDiagnostics {
			out, jsonErr := diag.RenderJSON(filename, res.Diagnostics)
			if jsonErr != nil {
				return fmt.Errorf("rendering diagnostics as JSON: %w", jsonErr)
			}
			fmt.Fprintln(os.Stderr, out)
		} else {
			fmt.Fprint(os.Stderr, diag.Render(filename, source, res.Diagnostics, true))
		}
	}
	if res.Assembly == "" {
		return fmt.Errorf("compilation failed with %d diagnostic(s)", len(res.Diagnostics))
	}

	outFile := outputPath(filename, buildOutput, buildOutDir, cfg.OutDir)
	if err := os.WriteFile(outFile, []byte(res.Assembly), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if buildVerbose {
		fmt.Fprintf(os.Stderr, "Assembly written to %s\n", outFile)
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}
	return nil
}

func outputPath(inputFile, explicitOut, flagOutDir, cfgOutDir string) string {
	if explicitOut != "" {
		return explicitOut
	}

	ext := filepath.Ext(inputFile)
	base := strings.TrimSuffix(filepath.Base(inputFile), ext) + ".asm"

	dir := flagOutDir
	if dir == "" {
		dir = cfgOutDir
	}
	if dir == "" {
		dir = filepath.Dir(inputFile)
	}
	return filepath.Join(dir, base)
}
