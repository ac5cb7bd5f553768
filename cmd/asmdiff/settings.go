package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"asmdiff/internal/config"
	"asmdiff/internal/observ"
)

// settings merges asmdiff.toml with the persistent flags. A flag the user
// set explicitly always wins.
type settings struct {
	cfg            config.Config
	color          string
	maxDiagnostics int
	quiet          bool
	timer          *observ.Timer // nil unless --timings
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Resolve(cfgPath, ".")
	if err != nil {
		return settings{}, err
	}

	s := settings{
		cfg:            cfg,
		color:          strings.ToLower(cfg.Output.Color),
		maxDiagnostics: cfg.Output.MaxDiagnostics,
	}
	if flags.Changed("color") {
		if s.color, err = flags.GetString("color"); err != nil {
			return settings{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return settings{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		s.timer = observ.NewTimer()
	}
	switch s.color {
	case "auto", "on", "off":
	default:
		return settings{}, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}
	return s, nil
}

func (s settings) useColor(f *os.File) bool {
	return s.color == "on" || (s.color == "auto" && isTerminal(f))
}

// printTimings writes the phase table to stderr when --timings is on.
func (s settings) printTimings(cmd *cobra.Command) {
	if s.timer == nil || s.quiet {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
}
