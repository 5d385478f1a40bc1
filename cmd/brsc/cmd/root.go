// Package cmd implements brsc's Cobra command tree, grounded on the
// teacher's cmd/dwscript/cmd package: one file per subcommand, global
// flags registered on a package-level rootCmd, init()-time wiring.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via -ldflags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "brsc",
	Short: "BRS compiler",
	Long: `brsc compiles BRS, a small imperative language of integer and
boolean expressions, scoped variable assignment, and exit/print
statements, to target-specific assembly text.

brsc targets x86-64 and AArch64, on Linux and macOS. The compiler never
invokes an assembler or linker itself; it only emits text compatible
with mainstream toolchains for the selected target.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
