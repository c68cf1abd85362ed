package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/session"
)

// aboutCmd represents the about command
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Dataset sample, column types and summary statistics",
	Long: `Prints a random sample of rows followed by the dataset profile:
row count, column kinds, non-null and missing counts, and describe()
statistics per column.

Example:
  go run ./cmd/churn about
  go run ./cmd/churn about --sample 3 --seed 42`,
	RunE: runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(rt *runtime, s *session.Session) error {
		renderAbout(rt, s)
		return nil
	})
}

func renderAbout(rt *runtime, s *session.Session) {
	p := rt.printer
	sample := s.Sample(0)

	p.Section("About Dataset")
	p.Subsection(fmt.Sprintf("Sample (%d of %d rows)", sample.Len(), s.Table().Len()))
	p.Rows(sample)

	p.Subsection("Dataset Info")
	p.Profile(s.Profile())
}
