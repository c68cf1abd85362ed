package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/session"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Customer statistics summary",
	Long: `Prints average age, average tenure, total spend, average support
calls, churn rate and the standard deviation of payment delay.

Fails with the missing column's name if a required column is absent.

Example:
  go run ./cmd/churn stats --data churn.csv`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	return withSession(cmd, renderStatistics)
}

func renderStatistics(rt *runtime, s *session.Session) error {
	stats, err := s.Statistics()
	if err != nil {
		return err
	}
	rt.printer.Section("Customer Statistics")
	rt.printer.Statistics(stats)
	return nil
}
