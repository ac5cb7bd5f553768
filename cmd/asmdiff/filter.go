package main

import (
	"os"

	"github.com/spf13/cobra"

	"asmdiff/internal/diagfmt"
	"asmdiff/internal/driver"
)

var filterCmd = &cobra.Command{
	Use:   "filter [flags] file.s",
	Short: "Print the source with debug directives commented out",
	Long: `Filter reconstructs the file from its token stream and prefixes every
debug directive (.cfi_*, .loc, .file) and every line inside a debug section
with a comment marker, so that two listings can be compared with plain diff.`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := driver.Parse(cmd.Context(), args[0], driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Timer:          s.timer,
	})
	if res != nil {
		printDiagnostics(res.Bag, res.FileSet, s)
	}
	if err != nil {
		return err
	}

	err = diagfmt.FormatDebugFilter(os.Stdout, res.Document, diagfmt.FilterOpts{
		CommentPrefix:      s.cfg.Filter.CommentPrefix,
		DebugSectionPrefix: s.cfg.Filter.DebugSectionPrefix,
	})
	if err != nil {
		return err
	}
	s.printTimings(cmd)
	return nil
}
