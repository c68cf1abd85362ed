package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/output"
	"github.com/wonny/churnlens/internal/sampledata"
	"github.com/wonny/churnlens/pkg/config"
)

// sampleDataCmd represents the sample-data command
var sampleDataCmd = &cobra.Command{
	Use:   "sample-data [path]",
	Short: "Write the five-row sample dataset as CSV",
	Long: `Writes the fixed illustrative dataset (five customers, mean Total
Spend 840) to path, or to CHURN_DATA_PATH when no path is given.
An existing file is kept unless --force is set.

Example:
  go run ./cmd/churn sample-data
  go run ./cmd/churn sample-data /tmp/churn.csv --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSampleData,
}

var (
	// sample-data flags
	sampleForce bool
)

func init() {
	rootCmd.AddCommand(sampleDataCmd)

	sampleDataCmd.Flags().BoolVar(&sampleForce, "force", false, "overwrite an existing file")
}

func runSampleData(cmd *cobra.Command, args []string) error {
	path := dataPath
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path = cfg.Data.Path
	}

	if _, err := os.Stat(path); err == nil && !sampleForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := sampledata.WriteFile(path); err != nil {
		return err
	}
	output.New(cmd.OutOrStdout(), false).Success(fmt.Sprintf("Sample dataset written to %s", path))
	return nil
}
