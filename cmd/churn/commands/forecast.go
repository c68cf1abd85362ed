package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/session"
)

// forecastCmd represents the forecast command
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Projected future insights",
	Long: `Prints the six heuristic projections. Each projection is computed
independently; one whose column is missing or empty shows its error
while the others still print.

Factors come from the report config (see --config).

Example:
  go run ./cmd/churn forecast
  go run ./cmd/churn forecast --config report.yaml`,
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, args []string) error {
	return withSession(cmd, renderProjections)
}

// renderProjections prints every projection and returns an error only
// when all of them failed.
func renderProjections(rt *runtime, s *session.Session) error {
	ps := s.Project()
	rt.printer.Section("Projected Future Insights")
	rt.printer.Projections(ps)

	if n := len(ps.Errors()); n == len(ps) && n > 0 {
		return fmt.Errorf("all %d projections failed", n)
	}
	return nil
}
