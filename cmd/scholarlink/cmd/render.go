package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scholarlink/scholarlink/pkg/errors"
	"github.com/scholarlink/scholarlink/pkg/export"
	"github.com/scholarlink/scholarlink/pkg/logging"
	"github.com/scholarlink/scholarlink/pkg/prompt"
	"github.com/scholarlink/scholarlink/pkg/reconcile"
)

var (
	renderInputFile  string
	renderOutputFile string
	renderPartition  string
	renderSide       string
)

// renderCmd renders question prompts from a previously exported union view.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render question prompts from an exported combined CSV",
	Long: `Render reads a combined knowledge base CSV produced by run, selects a
partition of its rows, and renders one tagged question unit per row
whose subject and object display names can be derived. Rows without
derivable names are skipped silently.`,
	Example: `  scholarlink render
  scholarlink render --partition left-only --input combined.csv -o prompts.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := renderInputFile
		if input == "" {
			input = cfg.ExportPath
		}

		pairs, err := export.ReadCSV(input)
		if err != nil {
			return err
		}

		selected, err := selectPartition(pairs, renderPartition)
		if err != nil {
			return err
		}

		side := prompt.Left
		if renderSide == "right" {
			side = prompt.Right
		} else if renderSide != "" && renderSide != "left" {
			return errors.NewValidationError("side", renderSide, "must be left or right")
		}

		batch, skipped := prompt.Render(selected, side)
		logging.Info().
			Int("rows", len(selected)).
			Int("skipped", skipped).
			Msg("Rendered prompt batch")

		return writeBatch(batch, renderOutputFile)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "combined CSV to render from (default is the configured export path)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "output", "o", "", "write rendered prompts to this file instead of stdout")
	renderCmd.Flags().StringVar(&renderPartition, "partition", "matched", "rows to render: matched, left-only, right-only, or all")
	renderCmd.Flags().StringVar(&renderSide, "side", "left", "source side whose links feed the templates: left or right")
}

// selectPartition filters the union view down to the requested partition.
func selectPartition(pairs []reconcile.Pair, partition string) ([]reconcile.Pair, error) {
	if partition == "all" {
		return pairs, nil
	}

	var keep func(reconcile.Pair) bool
	switch partition {
	case "matched":
		keep = reconcile.Pair.Matched
	case "left-only":
		keep = reconcile.Pair.LeftOnly
	case "right-only":
		keep = reconcile.Pair.RightOnly
	default:
		return nil, errors.NewValidationError("partition", partition, "must be matched, left-only, right-only, or all")
	}

	selected := make([]reconcile.Pair, 0, len(pairs))
	for _, p := range pairs {
		if keep(p) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
