// Package cmd provides the command structure for the scholarlink CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scholarlink/scholarlink/internal/config"
	"github.com/scholarlink/scholarlink/pkg/logging"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// cfg is loaded once in setupCommand and shared by all commands.
	cfg *config.Config

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "scholarlink",
	Short: "Knowledge graph record linkage for doctoral lineages",
	Long: `Scholarlink extracts scientist and doctoral-student relationships from
Wikidata and DBpedia, reconciles the two knowledge graphs on a derived
Wikipedia-link join key, exports the combined table, and renders the
matched and source-exclusive facts as question prompts for evaluation
by a language model.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.scholarlink.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		panic(fmt.Sprintf("Failed to bind config flag: %v", err))
	}
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// setupCommand loads configuration and adjusts logging before any command runs.
func setupCommand(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if lvl, parseErr := zerolog.ParseLevel(cfg.LogLevel); parseErr == nil {
		level = lvl
	}
	if cfg.Verbose || verbose {
		level = zerolog.DebugLevel
	}
	if cfg.Quiet || quiet {
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "json" {
		logging.SetDefault(logging.NewJSON(os.Stderr))
	}

	return nil
}
