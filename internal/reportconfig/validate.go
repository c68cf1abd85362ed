package reportconfig

import (
	"fmt"
	"strings"
)

// ValidationError reports the first field that breaks a constraint
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
func Validate(cfg *Config) error {
	// === Meta ===
	if cfg.Meta.ReportID == "" {
		return ValidationError{"meta.report_id", "required"}
	}

	// === Sample ===
	if cfg.Sample.Size < 0 {
		return ValidationError{"sample.size", "must be >= 0"}
	}

	// === Projections ===
	p := cfg.Projections
	if p.SpendMonths <= 0 {
		return ValidationError{"projections.spend_months", "must be > 0"}
	}
	if err := validateGrowth(p.SupportCallGrowth, "projections.support_call_growth"); err != nil {
		return err
	}
	if err := validateGrowth(p.PaymentDelayGrowth, "projections.payment_delay_growth"); err != nil {
		return err
	}
	if err := validateGrowth(p.TenureGrowth, "projections.tenure_growth"); err != nil {
		return err
	}
	if p.UpgradeRate < 0 || p.UpgradeRate > 1 {
		return ValidationError{"projections.upgrade_rate", "must be in range [0, 1]"}
	}
	if len(p.UpgradeTiers) == 0 {
		return ValidationError{"projections.upgrade_tiers", "must not be empty"}
	}
	for i, tier := range p.UpgradeTiers {
		if strings.TrimSpace(tier) == "" {
			return ValidationError{fmt.Sprintf("projections.upgrade_tiers[%d]", i), "must not be blank"}
		}
	}

	return nil
}

func validateGrowth(v float64, field string) error {
	if v <= 0 {
		return ValidationError{field, "must be > 0"}
	}
	return nil
}
