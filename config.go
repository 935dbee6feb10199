package ski

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/skilang/ski/ast"
)

// defaultNotice is the auto-generation notice written after @echo off.
var defaultNotice = []string{
	"AUTO-GENERATED FILE. DO NOT MODIFY.",
	"This file was automatically generated by the ski compiler.",
}

// Config holds options for script generation.
type Config struct {
	// Target is the output dialect (default: ast.Batch).
	Target ast.Target

	// Notice holds the header comment lines written after @echo off,
	// one REM line each. If nil, the standard auto-generation notice
	// is used.
	Notice []string

	// OutputPath is the destination file for drivers that write the
	// script to disk. Empty means the driver chooses.
	OutputPath string

	// Output is an optional writer for tooling output (e.g. token
	// dumps). If nil, tools write to their default destination.
	Output io.Writer
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Notice == nil {
		c.Notice = defaultNotice
	}
}

// fileConfig is the on-disk shape of a ski.toml project manifest.
type fileConfig struct {
	Target string   `toml:"target"`
	Output string   `toml:"output"`
	Notice []string `toml:"notice"`
}

// LoadConfig reads a ski.toml project manifest.
//
// Recognized keys:
//
//	target = "batch"            # output dialect
//	output = "out.bat"          # destination file for the driver
//	notice = ["line 1", ...]    # header comment lines
func LoadConfig(path string) (*Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("ski: cannot load config %s: %w", path, err)
	}

	config := &Config{
		Notice:     fc.Notice,
		OutputPath: fc.Output,
	}
	if fc.Target != "" {
		target, err := ast.ParseTarget(fc.Target)
		if err != nil {
			return nil, fmt.Errorf("ski: invalid config %s: %w", path, err)
		}
		config.Target = target
	}
	return config, nil
}
