package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scholarlink/scholarlink/internal/cmd/output"
	"github.com/scholarlink/scholarlink/internal/pipeline"
	"github.com/scholarlink/scholarlink/pkg/constants"
	"github.com/scholarlink/scholarlink/pkg/errors"
	"github.com/scholarlink/scholarlink/pkg/logging"
)

var (
	runOutputFile string
	runExportPath string
)

// runCmd executes the full extract-reconcile-render pipeline.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full extract, reconcile, export, and render pipeline",
	Long: `Run queries both knowledge graphs, reconciles their records on the
derived join key, exports the deduplicated combined table as CSV, and
renders question prompts from the matched facts.

The prompt batch goes to stdout unless --output names a file; run
statistics are printed to stderr.`,
	Example: `  scholarlink run
  scholarlink run --output prompts.txt --export combined.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), constants.RunTimeout)
		defer cancel()
		ctx = logging.WithLogger(ctx, logging.Default())

		if runExportPath != "" {
			cfg.ExportPath = runExportPath
		}

		p, err := pipeline.New(cfg)
		if err != nil {
			return err
		}

		outcome, err := p.Run(ctx)
		if err != nil {
			return err
		}

		if err := writeBatch(outcome.Batch, runOutputFile); err != nil {
			return err
		}

		if !quiet {
			printRunStats(outcome)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runOutputFile, "output", "o", "", "write rendered prompts to this file instead of stdout")
	runCmd.Flags().StringVar(&runExportPath, "export", "", "path for the combined CSV export (default "+constants.DefaultExportFile+")")
}

// writeBatch sends the rendered prompt text to a file or stdout.
func writeBatch(batch, path string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, batch)
		return err
	}
	if err := os.WriteFile(path, []byte(batch+"\n"), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// printRunStats renders the run summary table to stderr.
func printRunStats(outcome *pipeline.Outcome) {
	stats := outcome.Result.Metadata.Stats
	data := output.Data{
		Headers: []string{"Stage", "Count"},
		Rows: [][]string{
			{pipeline.LeftSource.String() + " records", strconv.Itoa(stats.LeftRecords)},
			{pipeline.RightSource.String() + " records", strconv.Itoa(stats.RightRecords)},
			{"duplicates collapsed", strconv.Itoa(stats.Duplicates)},
			{"matched", strconv.Itoa(stats.Matched)},
			{"left-only", strconv.Itoa(stats.LeftOnly)},
			{"right-only", strconv.Itoa(stats.RightOnly)},
			{"prompt rows skipped", strconv.Itoa(outcome.Skipped)},
		},
	}
	if err := output.Table(os.Stderr, data); err != nil {
		logging.Warn().Err(err).Msg("Failed to render stats table")
	}
	fmt.Fprintf(os.Stderr, "Combined knowledge base exported to %s\n", outcome.ExportPath)
}
