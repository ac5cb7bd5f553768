package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asmdiff/internal/diagfmt"
	"asmdiff/internal/driver"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] left.s right.s",
	Short: "Compare two assembler files statement by statement",
	Long: `Diff parses both files into documents and compares the statements pairwise
in document order. Pairing stops at the shorter document; a differing
statement count is reported in the summary.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().Bool("only-diff", false, "print only the differing pairs")
	diffCmd.Flags().Bool("exit-code", false, "exit with status 1 when the inputs differ")
	diffCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	onlyDiff := s.cfg.Diff.OnlyDiff
	if cmd.Flags().Changed("only-diff") {
		if onlyDiff, err = cmd.Flags().GetBool("only-diff"); err != nil {
			return fmt.Errorf("failed to get only-diff flag: %w", err)
		}
	}
	exitCode := s.cfg.Diff.ExitCode
	if cmd.Flags().Changed("exit-code") {
		if exitCode, err = cmd.Flags().GetBool("exit-code"); err != nil {
			return fmt.Errorf("failed to get exit-code flag: %w", err)
		}
	}

	cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := driver.Diff(cmd.Context(), args, driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Timer:          s.timer,
	})
	if res != nil {
		for _, side := range []*driver.ParseResult{res.Left, res.Right} {
			if side != nil {
				printDiagnostics(side.Bag, side.FileSet, s)
			}
		}
	}
	if err != nil {
		return err
	}

	view := res.View()
	switch format {
	case "json":
		err = diagfmt.FormatDiffJSON(os.Stdout, view, onlyDiff)
	default:
		err = diagfmt.FormatDiffPretty(os.Stdout, view, diagfmt.DiffOpts{
			Color:    s.useColor(os.Stdout),
			OnlyDiff: onlyDiff,
			Summary:  !s.quiet,
		})
	}
	if err != nil {
		return err
	}
	s.printTimings(cmd)

	if exitCode && !view.Equal() {
		return exitCodeError{code: 1}
	}
	return nil
}
