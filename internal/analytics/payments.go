package analytics

import (
	"sort"

	"oilstcli/pkg/contracts/domain"
)

// PaymentTypeSummary aggregates payment rows for one payment type.
type PaymentTypeSummary struct {
	Type             string
	Count            int
	TotalValue       float64
	MeanInstallments float64
}

// SummarizePaymentsByType rolls payments up per payment type, sorted by
// descending total value.
func SummarizePaymentsByType(payments []domain.Payment) []PaymentTypeSummary {
	byType := make(map[string]*PaymentTypeSummary)
	installments := make(map[string]int)
	for _, p := range payments {
		summary, ok := byType[p.Type]
		if !ok {
			summary = &PaymentTypeSummary{Type: p.Type}
			byType[p.Type] = summary
		}
		summary.Count++
		summary.TotalValue += p.Value
		installments[p.Type] += p.Installments
	}

	result := make([]PaymentTypeSummary, 0, len(byType))
	for name, summary := range byType {
		if summary.Count > 0 {
			summary.MeanInstallments = float64(installments[name]) / float64(summary.Count)
		}
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalValue != result[j].TotalValue {
			return result[i].TotalValue > result[j].TotalValue
		}
		return result[i].Type < result[j].Type
	})
	return result
}
