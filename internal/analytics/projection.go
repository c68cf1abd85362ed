package analytics

import (
	"fmt"
	"strings"

	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
)

// Factors are the fixed multipliers of the future-insight heuristics.
// These are documented heuristics, not statistical forecasts.
type Factors struct {
	SpendMonths        float64
	SupportCallGrowth  float64
	PaymentDelayGrowth float64
	UpgradeRate        float64
	UpgradeTiers       []string
	TenureGrowth       float64
}

// DefaultFactors returns the dashboard's published factors.
func DefaultFactors() Factors {
	return Factors{
		SpendMonths:        12,
		SupportCallGrowth:  1.10,
		PaymentDelayGrowth: 1.05,
		UpgradeRate:        0.15,
		UpgradeTiers:       []string{"Basic", "Standard"},
		TenureGrowth:       1.20,
	}
}

// Projector computes each projection independently of the others.
type Projector struct {
	factors Factors
}

// NewProjector creates a Projector with the given factors
func NewProjector(f Factors) *Projector {
	return &Projector{factors: f}
}

// Project runs every projection with DefaultFactors.
func Project(t *dataset.Table) contracts.Projections {
	return NewProjector(DefaultFactors()).All(t)
}

// All runs every projection. A failing projection carries its error and
// does not affect the others.
func (p *Projector) All(t *dataset.Table) contracts.Projections {
	f := p.factors
	defs := []struct {
		key     string
		column  string
		formula string
		fn      func(*dataset.Table) (float64, error)
	}{
		{contracts.ProjectionTotalSpend, dataset.ColTotalSpend,
			fmt.Sprintf("mean(Total Spend) × %g × rows", f.SpendMonths), p.TotalSpendNextYear},
		{contracts.ProjectionChurn, dataset.ColChurn,
			"mean(Churn) × rows", p.ChurnNextYear},
		{contracts.ProjectionSupportCalls, dataset.ColSupportCalls,
			fmt.Sprintf("mean(Support Calls) × %g", f.SupportCallGrowth), p.SupportCallIncrease},
		{contracts.ProjectionPaymentDelay, dataset.ColPaymentDelay,
			fmt.Sprintf("mean(Payment Delay) × %g", f.PaymentDelayGrowth), p.PaymentDelayIncrease},
		{contracts.ProjectionUpgrades, dataset.ColSubscriptionType,
			fmt.Sprintf("count(Subscription Type ∈ {%s}) × %g", strings.Join(f.UpgradeTiers, ", "), f.UpgradeRate), p.SubscriptionUpgrades},
		{contracts.ProjectionTenure, dataset.ColTenure,
			fmt.Sprintf("mean(Tenure) × %g", f.TenureGrowth), p.TenureGrowth},
	}

	out := make(contracts.Projections, 0, len(defs))
	for _, d := range defs {
		proj := contracts.Projection{Key: d.key, Column: d.column, Formula: d.formula}
		v, err := d.fn(t)
		if err != nil {
			proj.Err = err
			proj.Error = err.Error()
		} else {
			proj.Value = v
		}
		out = append(out, proj)
	}
	return out
}

// TotalSpendNextYear = mean(Total Spend) × 12 × row_count
func (p *Projector) TotalSpendNextYear(t *dataset.Table) (float64, error) {
	m, err := meanOf(t, dataset.ColTotalSpend, contracts.ProjectionTotalSpend)
	if err != nil {
		return 0, err
	}
	return m * p.factors.SpendMonths * float64(t.Len()), nil
}

// ChurnNextYear = mean(Churn) × row_count
func (p *Projector) ChurnNextYear(t *dataset.Table) (float64, error) {
	churn, err := dataset.ToBinary(t, dataset.ColChurn)
	if err != nil {
		return 0, err
	}
	vals := churn.ValidValues()
	if len(vals) == 0 {
		return 0, noValidValue(contracts.ProjectionChurn, dataset.ColChurn)
	}
	return mean(vals) * float64(t.Len()), nil
}

// SupportCallIncrease = mean(Support Calls) × 1.10
func (p *Projector) SupportCallIncrease(t *dataset.Table) (float64, error) {
	m, err := meanOf(t, dataset.ColSupportCalls, contracts.ProjectionSupportCalls)
	if err != nil {
		return 0, err
	}
	return m * p.factors.SupportCallGrowth, nil
}

// PaymentDelayIncrease = mean(Payment Delay) × 1.05
func (p *Projector) PaymentDelayIncrease(t *dataset.Table) (float64, error) {
	m, err := meanOf(t, dataset.ColPaymentDelay, contracts.ProjectionPaymentDelay)
	if err != nil {
		return 0, err
	}
	return m * p.factors.PaymentDelayGrowth, nil
}

// SubscriptionUpgrades = count(Subscription Type ∈ {Basic, Standard}) × 0.15
func (p *Projector) SubscriptionUpgrades(t *dataset.Table) (float64, error) {
	raw, err := t.Column(dataset.ColSubscriptionType)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, cell := range raw {
		v := strings.TrimSpace(cell)
		for _, tier := range p.factors.UpgradeTiers {
			if strings.EqualFold(v, tier) {
				n++
				break
			}
		}
	}
	return float64(n) * p.factors.UpgradeRate, nil
}

// TenureGrowth = mean(Tenure) × 1.20
func (p *Projector) TenureGrowth(t *dataset.Table) (float64, error) {
	m, err := meanOf(t, dataset.ColTenure, contracts.ProjectionTenure)
	if err != nil {
		return 0, err
	}
	return m * p.factors.TenureGrowth, nil
}

func meanOf(t *dataset.Table, column, operation string) (float64, error) {
	s, err := dataset.ToNumeric(t, column)
	if err != nil {
		return 0, err
	}
	vals := s.ValidValues()
	if len(vals) == 0 {
		return 0, noValidValue(operation, column)
	}
	return mean(vals), nil
}

func noValidValue(operation, column string) error {
	return &dataset.InsufficientDataError{
		Operation: operation,
		Cause:     fmt.Sprintf("%s has no valid value", column),
	}
}
