package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asmdiff/internal/diagfmt"
	"asmdiff/internal/driver"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file.s...",
	Short: "Print the statements, symbols and sections of assembler files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runDump(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := driver.Options{MaxDiagnostics: s.maxDiagnostics, Timer: s.timer}
	sums := make([]diagfmt.DocumentSummary, 0, len(args))
	var errs []error
	for _, path := range args {
		res, err := driver.Parse(cmd.Context(), path, opts)
		if res != nil {
			printDiagnostics(res.Bag, res.FileSet, s)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if format != "pretty" {
			sums = append(sums, diagfmt.BuildSummary(path, res.Document))
			continue
		}
		if len(args) > 1 {
			fmt.Fprintf(os.Stdout, "==> %s <==\n", path)
		}
		if err := diagfmt.FormatStatements(os.Stdout, res.Document); err != nil {
			return err
		}
		if err := diagfmt.FormatSymbols(os.Stdout, res.Document); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		err = diagfmt.WriteSummariesJSON(os.Stdout, sums)
	case "msgpack":
		err = diagfmt.WriteSummariesMsgpack(os.Stdout, sums)
	}
	if err != nil {
		return err
	}
	s.printTimings(cmd)
	return errors.Join(errs...)
}
