// Package commands implements the reportctl CLI, which computes reports from
// the ledger workbook without running the HTTP server.
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vosul/internal/app"
	"vosul/internal/config"
	"vosul/internal/logger"
)

var (
	// Global flags
	envFile   string
	dataPath  string
	rulesFile string
	verbose   bool

	// Shared report flags
	startDate string
	endDate   string
)

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Collection and return performance reports",
	Long: `reportctl loads the check ledger workbook and computes the
collection dashboard for a Jalali date range.

Examples:
  reportctl dashboard --start 1402/06/01 --end 1402/06/31
  reportctl export --start 1402/06/01 --end 1402/06/31 --dir out`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading VOSUL_ variables")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "ledger workbook path (overrides VOSUL_DATA_PATH)")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "business rules file (overrides VOSUL_BUSINESS_RULES_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&startDate, "start", "", "start date, Jalali YYYY/MM/DD")
	cmd.Flags().StringVar(&endDate, "end", "", "end date, Jalali YYYY/MM/DD")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

// loadApp reads configuration, applies flag overrides and loads the dataset.
func loadApp(ctx context.Context, override func(*config.Config)) (*app.App, zerolog.Logger, error) {
	_ = godotenv.Load(envFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	if dataPath != "" {
		cfg.Data.Path = dataPath
		cfg.Data.S3Bucket = ""
		cfg.Data.S3Key = ""
	}
	if rulesFile != "" {
		cfg.Business.RulesFile = rulesFile
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if override != nil {
		override(cfg)
	}

	log := logger.NewWithWriter(rootCmd.ErrOrStderr(), cfg.Log, "cli")

	a, err := app.Build(cfg, log)
	if err != nil {
		return nil, log, err
	}
	if _, err := a.Store.Load(ctx); err != nil {
		return nil, log, fmt.Errorf("load dataset: %w", err)
	}
	return a, log, nil
}
