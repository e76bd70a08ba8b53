package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eadegbola/profiler/internal/config"
)

var (
	cfgFile string
	verbose bool

	// Set by PersistentPreRunE so all subcommands can use it.
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "profiler",
	Short: "Personal profile page with a searchable publications list",
	Long: `Profiler renders a one-page personal profile: a hero with photo and bio,
curiosity and hobby cards, a research journey, a research-focus chart and a
publications table read from CSV with keyword search and a per-year
histogram. Serve it live or export it as a static site.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine.
		_ = godotenv.Load()

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
