package analytics

import (
	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
)

var statisticsColumns = []string{
	dataset.ColAge,
	dataset.ColTenure,
	dataset.ColTotalSpend,
	dataset.ColSupportCalls,
	dataset.ColChurn,
	dataset.ColPaymentDelay,
}

// Statistics computes the customer statistics over every row with a valid
// value in the column concerned. Fails with *dataset.MissingColumnError
// naming the first absent column.
func Statistics(t *dataset.Table) (contracts.Statistics, error) {
	if err := t.Require(statisticsColumns...); err != nil {
		return contracts.Statistics{}, err
	}

	numeric := func(column string) []float64 {
		s, _ := dataset.ToNumeric(t, column)
		return s.ValidValues()
	}
	churn, _ := dataset.ToBinary(t, dataset.ColChurn)

	return contracts.Statistics{
		AverageAge:          mean(numeric(dataset.ColAge)),
		AverageTenure:       mean(numeric(dataset.ColTenure)),
		TotalSpend:          sum(numeric(dataset.ColTotalSpend)),
		AverageSupportCalls: mean(numeric(dataset.ColSupportCalls)),
		ChurnRate:           mean(churn.ValidValues()) * 100,
		PaymentDelayStdDev:  sampleStdDev(numeric(dataset.ColPaymentDelay)),
	}, nil
}
