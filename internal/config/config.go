// Package config loads brsc's optional project file. The file supplies
// defaults for the compile target and output directory; every value it
// sets can still be overridden by an explicit CLI flag, per
// SPEC_FULL.md's "CLI flag > config file > built-in default" precedence.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/brslang/brsc/internal/target"
)

// Config is the parsed contents of a .brsc.yaml / brsc.yaml file.
type Config struct {
	// Target is a triple like "x86_64-linux", parsed the same way the
	// CLI's --target flag is (internal/target.Parse).
	Target string `yaml:"target"`

	// OutDir is the directory compiled .asm files are written to when
	// the CLI isn't given an explicit -o path. Empty means the source
	// file's own directory.
	OutDir string `yaml:"outdir"`
}

// Default is the configuration used when no file is found.
var Default = Config{Target: target.Default.String(), OutDir: ""}

// Names are the file names Load searches for, in order, in the given
// directory.
var Names = []string{".brsc.yaml", "brsc.yaml"}

// Load reads and parses the first of Names found in dir. It returns
// Default, nil if none exist: an absent config file is not an error.
func Load(dir string) (*Config, error) {
	for _, name := range Names {
		path := dir + string(os.PathSeparator) + name
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}

		cfg := Default
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		if _, err := target.Parse(cfg.Target); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		return &cfg, nil
	}

	cfg := Default
	return &cfg, nil
}
