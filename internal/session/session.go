// Package session binds one loaded dataset to the report configuration and
// a logger, and runs the analytics sections against it.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/churnlens/internal/analytics"
	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
	"github.com/wonny/churnlens/internal/reportconfig"
	"github.com/wonny/churnlens/pkg/logger"
)

// Session is one loaded dataset. The table is never modified; every
// section reads the same snapshot, and methods are safe for concurrent use.
type Session struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time

	table     *dataset.Table
	report    *reportconfig.Config
	projector *analytics.Projector
	log       *logger.Logger
}

// Open loads a CSV file and starts a session over it
func Open(path string, report *reportconfig.Config, log *logger.Logger) (*Session, error) {
	start := time.Now()
	t, err := dataset.LoadFile(path)
	if err != nil {
		log.WithField("source", path).WithError(err).Errorf("Failed to load dataset %s", path)
		return nil, err
	}

	s := FromTable(path, t, report, log)
	s.log.WithFields(map[string]interface{}{
		"rows":        t.Len(),
		"columns":     len(t.Columns()),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Dataset loaded")
	return s, nil
}

// FromTable starts a session over an already-built table.
// A nil report uses reportconfig.Default.
func FromTable(source string, t *dataset.Table, report *reportconfig.Config, log *logger.Logger) *Session {
	if report == nil {
		report = reportconfig.Default()
	}
	if log == nil {
		log = logger.Nop()
	}

	id := uuid.New()
	return &Session{
		ID:        id,
		Source:    source,
		LoadedAt:  time.Now(),
		table:     t,
		report:    report,
		projector: analytics.NewProjector(report.Factors()),
		log: log.WithFields(map[string]interface{}{
			"session_id": id.String(),
			"source":     source,
		}),
	}
}

// newRand gives each call its own source, so concurrent Sample calls share
// no state and a seeded session draws the same rows every time.
// seed 0 → global source, fresh sample each call
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Table returns the loaded table
func (s *Session) Table() *dataset.Table { return s.table }

// Report returns the active report configuration
func (s *Session) Report() *reportconfig.Config { return s.report }

// Empty reports a dataset with no rows
func (s *Session) Empty() bool { return s.table.Len() == 0 }

// Sample draws the configured number of rows; n > 0 overrides the config
func (s *Session) Sample(n int) *dataset.Table {
	if n <= 0 {
		n = s.report.Sample.Size
	}
	out := analytics.Sample(s.table, n, newRand(s.report.Sample.Seed))
	s.log.Debugf("Sample drawn: %d of %d rows", out.Len(), s.table.Len())
	return out
}

// Profile returns the descriptive profile
func (s *Session) Profile() contracts.Profile {
	p := analytics.Profile(s.table)
	s.log.WithField("columns", p.ColumnCount).Debug("Profile computed")
	return p
}

// Statistics returns the customer statistics summary
func (s *Session) Statistics() (contracts.Statistics, error) {
	stats, err := analytics.Statistics(s.table)
	if err != nil {
		s.log.WithField("section", "statistics").WithError(err).Warn("Section failed")
		return stats, err
	}
	s.log.WithField("section", "statistics").Debug("Section computed")
	return stats, nil
}

// ChurnBreakdown returns the churn-correlated insights
func (s *Session) ChurnBreakdown() (*contracts.ChurnBreakdown, error) {
	b, err := analytics.ChurnBreakdown(s.table)
	if err != nil {
		s.log.WithField("section", "insights").WithError(err).Warn("Section failed")
		return nil, err
	}
	l := s.log.WithField("section", "insights").
		WithField("rows_used", b.RowsUsed).
		WithField("rows_dropped", b.RowsDropped)
	if b.Empty() {
		l.WithError(b.Insufficient).Warn("Insufficient data")
	} else {
		l.Debug("Section computed")
	}
	return b, nil
}

// Segment returns the customer segmentation
func (s *Session) Segment() (*contracts.Segmentation, error) {
	seg, err := analytics.Segment(s.table)
	if err != nil {
		s.log.WithField("section", "segmentation").WithError(err).Warn("Section failed")
		return nil, err
	}
	l := s.log.WithField("section", "segmentation").
		WithField("rows_used", seg.RowsUsed).
		WithField("rows_dropped", seg.RowsDropped)
	if seg.Empty() {
		l.WithError(seg.Insufficient).Warn("Insufficient data")
	} else {
		l.WithField("segments", len(seg.Segments)).Debug("Section computed")
	}
	return seg, nil
}

// Project returns the projected future insights with the configured factors
func (s *Session) Project() contracts.Projections {
	ps := s.projector.All(s.table)
	for key, err := range ps.Errors() {
		s.log.WithField("section", "projections").
			WithField("projection", key).
			WithError(err).Warn("Projection failed")
	}
	return ps
}
