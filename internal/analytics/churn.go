package analytics

import (
	"sort"

	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
)

// ChurnBreakdown groups rows by churn code and averages every numeric
// column per group.
//
// Churn is coerced to {0,1}, Total Spend and Payment Delay to numbers; rows
// where any of the three fails are dropped. When nothing survives the result
// is returned with Insufficient set, not as an error. A missing column is an
// error.
func ChurnBreakdown(t *dataset.Table) (*contracts.ChurnBreakdown, error) {
	if err := t.Require(dataset.ColChurn, dataset.ColTotalSpend, dataset.ColPaymentDelay); err != nil {
		return nil, err
	}

	churn, _ := dataset.ToBinary(t, dataset.ColChurn)
	spend, _ := dataset.ToNumeric(t, dataset.ColTotalSpend)
	delay, _ := dataset.ToNumeric(t, dataset.ColPaymentDelay)

	rows := allValid(t.Len(), churn.Series, spend, delay)
	result := &contracts.ChurnBreakdown{
		RowsUsed:    len(rows),
		RowsDropped: t.Len() - len(rows),
	}
	if len(rows) == 0 {
		result.Insufficient = &dataset.InsufficientDataError{
			Operation: "churn breakdown",
			Cause:     "no row has parseable Churn, Total Spend and Payment Delay",
		}
		return result, nil
	}

	frame := buildFrame(t, map[string]dataset.Series{
		dataset.ColChurn:        churn.Series,
		dataset.ColTotalSpend:   spend,
		dataset.ColPaymentDelay: delay,
	})
	result.Columns = frame.columns

	byCode := make(map[int][]int)
	for _, r := range rows {
		code := int(churn.Values[r])
		byCode[code] = append(byCode[code], r)
	}
	codes := make([]int, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	for _, code := range codes {
		members := byCode[code]
		label := churn.Label(code)
		means := frame.means(members)

		result.Groups = append(result.Groups, contracts.ChurnGroup{
			Code:  code,
			Label: label,
			Count: len(members),
			Means: means,
		})
		result.SpendByChurn = append(result.SpendByChurn, contracts.GroupMean{
			Code: code, Label: label, Value: means[dataset.ColTotalSpend],
		})
		result.DelayByChurn = append(result.DelayByChurn, contracts.GroupMean{
			Code: code, Label: label, Value: means[dataset.ColPaymentDelay],
		})
		result.SpendDistribution = append(result.SpendDistribution,
			boxSummary(code, label, validAt(spend, members)))
	}

	return result, nil
}
