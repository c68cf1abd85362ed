package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/churnlens/internal/output"
	"github.com/wonny/churnlens/internal/reportconfig"
	"github.com/wonny/churnlens/internal/session"
	"github.com/wonny/churnlens/pkg/config"
	"github.com/wonny/churnlens/pkg/logger"
)

// emptyDatasetMessage is shown instead of any section for a zero-row table
const emptyDatasetMessage = "The dataset has no rows, please upload a dataset."

// runtime is what every analysis command needs: env config, logger,
// report config and a printer bound to the command's stdout.
type runtime struct {
	cfg     *config.Config
	log     *logger.Logger
	report  *reportconfig.Config
	printer *output.Printer
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.New(cfg).WithField("command", cmd.Name())

	report, err := loadReport(cfg)
	if err != nil {
		log.WithError(err).Error("Failed to load report config")
		return nil, err
	}

	out := cmd.OutOrStdout()
	useColor := out == os.Stdout && output.IsColorEnabled()

	return &runtime{
		cfg:     cfg,
		log:     log,
		report:  report,
		printer: output.New(out, useColor),
	}, nil
}

// loadReport: flags > YAML file > environment
func loadReport(cfg *config.Config) (*reportconfig.Config, error) {
	base := reportconfig.Default()
	base.Sample = reportconfig.Sample{Size: cfg.Data.SampleSize, Seed: cfg.Data.SampleSeed}

	path := reportPath
	if path == "" {
		path = cfg.Data.ReportConfig
	}

	report := base
	if path != "" {
		loaded, _, err := reportconfig.LoadOver(path, base)
		if err != nil {
			return nil, err
		}
		report = loaded
	}

	if sampleSize >= 0 {
		report.Sample.Size = sampleSize
	}
	if sampleSeed != 0 {
		report.Sample.Seed = sampleSeed
	}
	if err := reportconfig.Validate(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *runtime) dataPath() string {
	if dataPath != "" {
		return dataPath
	}
	return r.cfg.Data.Path
}

// openSession loads the dataset. A nil session with a nil error means the
// table is empty and the warning was already printed.
func (r *runtime) openSession() (*session.Session, error) {
	s, err := session.Open(r.dataPath(), r.report, r.log)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if s.Empty() {
		r.printer.Warning(emptyDatasetMessage)
		return nil, nil
	}
	return s, nil
}

// withSession runs fn against a freshly opened session
func withSession(cmd *cobra.Command, fn func(*runtime, *session.Session) error) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	s, err := rt.openSession()
	if err != nil || s == nil {
		return err
	}
	return fn(rt, s)
}
