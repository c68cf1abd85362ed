package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/session"
)

// segmentCmd represents the segment command
var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Customer segmentation by subscription type and tenure",
	Long: `Groups customers by (Subscription Type, Tenure) and prints the mean
of every numeric column per group, followed by the subscription type
distribution.

Example:
  go run ./cmd/churn segment`,
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	return withSession(cmd, renderSegmentation)
}

func renderSegmentation(rt *runtime, s *session.Session) error {
	seg, err := s.Segment()
	if err != nil {
		return err
	}
	rt.printer.Section("Customer Segmentation")
	rt.printer.Segmentation(seg)
	return nil
}
