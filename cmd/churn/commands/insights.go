package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/session"
)

// insightsCmd represents the insights command
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Churn-correlated insights",
	Long: `Groups customers by churn and prints the mean of every numeric
column per group, the payment delay and total spend bars, and the
total spend distribution of each group.

Rows with unparseable Churn, Total Spend or Payment Delay are dropped.

Example:
  go run ./cmd/churn insights`,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	return withSession(cmd, renderInsights)
}

func renderInsights(rt *runtime, s *session.Session) error {
	b, err := s.ChurnBreakdown()
	if err != nil {
		return err
	}
	rt.printer.Section("Future Insights")
	rt.printer.ChurnBreakdown(b)
	return nil
}
