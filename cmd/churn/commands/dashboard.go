package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/reportconfig"
	"github.com/wonny/churnlens/internal/session"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run every section in order",
	Long: `Prints the full churn dashboard:

Sections:
- About Dataset
- Customer Statistics
- Future Insights (churn breakdown)
- Customer Segmentation
- Projected Future Insights

A failing section is reported and the next section still runs.

Example:
  go run ./cmd/churn dashboard
  go run ./cmd/churn dashboard --data churn.csv --config report.yaml`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

type dashboardSection struct {
	name string
	run  func(*runtime, *session.Session) error
}

var dashboardSections = []dashboardSection{
	{"about", func(rt *runtime, s *session.Session) error { renderAbout(rt, s); return nil }},
	{"statistics", renderStatistics},
	{"insights", renderInsights},
	{"segmentation", renderSegmentation},
	{"projections", renderProjections},
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return withSession(cmd, renderDashboard)
}

func renderDashboard(rt *runtime, s *session.Session) error {
	start := time.Now()
	hash, err := reportconfig.Hash(s.Report())
	if err != nil {
		return fmt.Errorf("hash report config: %w", err)
	}

	rt.printer.Title("Customer Churn Dashboard",
		fmt.Sprintf("Session   : %s", s.ID),
		fmt.Sprintf("Source    : %s", s.Source),
		fmt.Sprintf("Rows      : %d", s.Table().Len()),
		fmt.Sprintf("Report    : %s v%s", s.Report().Meta.ReportID, s.Report().Meta.Version),
		fmt.Sprintf("Config    : %s", hash[:12]),
	)

	var failed []string
	for _, sec := range dashboardSections {
		if err := sec.run(rt, s); err != nil {
			rt.printer.Error(fmt.Sprintf("%s: %v", sec.name, err))
			rt.log.WithField("section", sec.name).WithError(err).Warn("Dashboard section failed")
			failed = append(failed, sec.name)
		}
	}

	rt.log.WithField("failed", len(failed)).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("Dashboard rendered")

	fmt.Fprintln(rt.printer.Writer())
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d sections failed: %v", len(failed), len(dashboardSections), failed)
	}
	rt.printer.Success(fmt.Sprintf("Dashboard completed in %.2fs", time.Since(start).Seconds()))
	return nil
}
