package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wonny/edaq/internal/analysisconfig"
	"github.com/wonny/edaq/pkg/config"
	"github.com/wonny/edaq/pkg/logger"
)

var (
	// Global flags
	configFile   string
	analysisFile string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edaq",
	Short: "edaq - dataset quality scoring",
	Long: `edaq Unified CLI

Profiles CSV datasets and scores how ready they are for modeling.

Usage:
  go run ./cmd/edaq [command]

Examples:
  go run ./cmd/edaq api
  go run ./cmd/edaq overview data.csv
  go run ./cmd/edaq quality data.csv --min-missing-share 0.2`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&analysisFile, "analysis-config", "", "analysis defaults YAML (overrides ANALYSIS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// appRuntime bundles what every command loads first
type appRuntime struct {
	cfg      *config.Config
	analysis *analysisconfig.Config
	log      *logger.Logger
}

// loadRuntime reads env config, analysis defaults and builds the logger.
// CLI logs go to stderr so report output stays clean.
func loadRuntime(logTo io.Writer) (*appRuntime, error) {
	if configFile != "" {
		if err := config.LoadEnvFile(configFile); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if analysisFile != "" {
		cfg.AnalysisConfigPath = analysisFile
	}

	log := logger.NewWithWriter(cfg, logTo)

	analysis, err := analysisconfig.LoadOrDefault(cfg.AnalysisConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load analysis config: %w", err)
	}

	hash, err := analysisconfig.Hash(analysis)
	if err != nil {
		return nil, fmt.Errorf("hash analysis config: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"path": cfg.AnalysisConfigPath,
		"hash": hash,
	}).Debug("Analysis config loaded")

	for _, w := range analysisconfig.Warn(analysis) {
		log.WithField("code", w.Code).Warn(w.Message)
	}

	return &appRuntime{cfg: cfg, analysis: analysis, log: log}, nil
}
