// Package config loads asmdiff.toml. The file is looked up from the working
// directory towards the filesystem root; command-line flags that were set
// explicitly win over anything it says.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file asmdiff looks for.
const FileName = "asmdiff.toml"

type Config struct {
	Output OutputConfig `toml:"output"`
	Diff   DiffConfig   `toml:"diff"`
	Filter FilterConfig `toml:"filter"`

	// Path is the file the values came from, "" for defaults.
	Path string `toml:"-"`
}

type OutputConfig struct {
	Color          string `toml:"color"` // auto|on|off
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type DiffConfig struct {
	OnlyDiff bool `toml:"only_diff"`
	ExitCode bool `toml:"exit_code"`
}

type FilterConfig struct {
	CommentPrefix      string `toml:"comment_prefix"`
	DebugSectionPrefix string `toml:"debug_section_prefix"`
}

// Default returns the values used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: "auto", MaxDiagnostics: 100},
		Filter: FilterConfig{CommentPrefix: "# ", DebugSectionPrefix: ".debug"},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path on top of Default. Unknown keys are an error so typos
// do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the first FileName found from
// startDir upwards, otherwise Default.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	switch strings.ToLower(c.Output.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("output.color: invalid value %q (expected auto|on|off)", c.Output.Color)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("output.max_diagnostics: must not be negative, got %d", c.Output.MaxDiagnostics)
	}
	return nil
}
