// Package reportconfig loads the YAML report configuration: sample size
// and the multipliers of the projected future insights.
package reportconfig

import "github.com/wonny/churnlens/internal/analytics"

// Config is the full report configuration
type Config struct {
	Meta        Meta        `yaml:"meta" json:"meta"`
	Sample      Sample      `yaml:"sample" json:"sample"`
	Projections Projections `yaml:"projections" json:"projections"`
}

// Meta identifies a configuration revision
type Meta struct {
	ReportID string `yaml:"report_id" json:"report_id"`
	Version  string `yaml:"version" json:"version"`
}

// Sample controls the descriptive profile's row sample.
// Seed 0 means a fresh random sample on every run.
type Sample struct {
	Size int   `yaml:"size" json:"size"`
	Seed int64 `yaml:"seed" json:"seed"`
}

// Projections are the heuristic factors of the future insights
type Projections struct {
	SpendMonths        float64  `yaml:"spend_months" json:"spend_months"`
	SupportCallGrowth  float64  `yaml:"support_call_growth" json:"support_call_growth"`
	PaymentDelayGrowth float64  `yaml:"payment_delay_growth" json:"payment_delay_growth"`
	UpgradeRate        float64  `yaml:"upgrade_rate" json:"upgrade_rate"`
	UpgradeTiers       []string `yaml:"upgrade_tiers" json:"upgrade_tiers"`
	TenureGrowth       float64  `yaml:"tenure_growth" json:"tenure_growth"`
}

// Default returns the configuration used when no file is given.
// ⭐ SSOT: projection defaults come from analytics.DefaultFactors
func Default() *Config {
	f := analytics.DefaultFactors()
	return &Config{
		Meta:   Meta{ReportID: "churn_default", Version: "1"},
		Sample: Sample{Size: 10},
		Projections: Projections{
			SpendMonths:        f.SpendMonths,
			SupportCallGrowth:  f.SupportCallGrowth,
			PaymentDelayGrowth: f.PaymentDelayGrowth,
			UpgradeRate:        f.UpgradeRate,
			UpgradeTiers:       append([]string(nil), f.UpgradeTiers...),
			TenureGrowth:       f.TenureGrowth,
		},
	}
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	cp := *c
	cp.Projections.UpgradeTiers = append([]string(nil), c.Projections.UpgradeTiers...)
	return &cp
}

// Factors converts the projection section for the analytics projector
func (c *Config) Factors() analytics.Factors {
	p := c.Projections
	return analytics.Factors{
		SpendMonths:        p.SpendMonths,
		SupportCallGrowth:  p.SupportCallGrowth,
		PaymentDelayGrowth: p.PaymentDelayGrowth,
		UpgradeRate:        p.UpgradeRate,
		UpgradeTiers:       append([]string(nil), p.UpgradeTiers...),
		TenureGrowth:       p.TenureGrowth,
	}
}
