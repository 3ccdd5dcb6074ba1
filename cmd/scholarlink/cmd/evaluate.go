package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarlink/scholarlink/pkg/constants"
	"github.com/scholarlink/scholarlink/pkg/errors"
	"github.com/scholarlink/scholarlink/pkg/evaluate"
	"github.com/scholarlink/scholarlink/pkg/logging"
)

var (
	evaluateInputFile string
	evaluateModel     string
)

// evaluateCmd submits a rendered prompt batch to Gemini.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Send a rendered prompt batch to Gemini and print its answers",
	Long: `Evaluate reads a prompt batch (from --input or stdin) and submits it to
Gemini, printing the model's completed answer tags. Requires
GEMINI_API_KEY (or GOOGLE_API_KEY) in the environment.`,
	Example: `  scholarlink run -o prompts.txt && scholarlink evaluate -i prompts.txt
  scholarlink render | scholarlink evaluate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), constants.EvaluateTimeout)
		defer cancel()
		ctx = logging.WithLogger(ctx, logging.Default())

		batch, err := readBatch(evaluateInputFile)
		if err != nil {
			return err
		}
		if batch == "" {
			return errors.NewValidationError("input", evaluateInputFile, "prompt batch is empty")
		}

		model := evaluateModel
		if model == "" {
			model = cfg.GeminiModel
		}

		evaluator, err := evaluate.New(ctx, "", model)
		if err != nil {
			return err
		}

		reply, err := evaluator.Batch(ctx, batch)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(os.Stdout, reply)
		return err
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVarP(&evaluateInputFile, "input", "i", "", "prompt batch file (default is stdin)")
	evaluateCmd.Flags().StringVar(&evaluateModel, "model", "", "Gemini model to use (default "+evaluate.DefaultModel+")")
}

// readBatch loads the prompt batch from a file or stdin.
func readBatch(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.WrapIO("read", "stdin", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}
