package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	dataPath   string
	reportPath string
	sampleSize int
	sampleSeed int64
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "churn",
	Short: "Customer churn analytics dashboard",
	Long: `Churn Analytics CLI

Loads a customer-churn CSV and prints descriptive statistics,
churn-correlated insights, customer segmentation and projected
future insights.

Usage:
  go run ./cmd/churn [command]

Examples:
  go run ./cmd/churn sample-data churn.csv
  go run ./cmd/churn dashboard --data churn.csv
  go run ./cmd/churn forecast --config report.yaml`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "dataset CSV (default is CHURN_DATA_PATH)")
	rootCmd.PersistentFlags().StringVar(&reportPath, "config", "", "report config YAML (default is CHURN_REPORT_CONFIG)")
	rootCmd.PersistentFlags().IntVar(&sampleSize, "sample", -1, "sample rows shown by about (default from config)")
	rootCmd.PersistentFlags().Int64Var(&sampleSeed, "seed", 0, "sample seed, 0 keeps the configured seed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
