package analytics

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"oilstcli/pkg/contracts/domain"
)

// delayStatusOrder fixes the column and row order of delay status reports.
var delayStatusOrder = []domain.DelayStatus{
	domain.DelayStatusOnTime,
	domain.DelayStatusShortDelay,
	domain.DelayStatusLongDelay,
}

// FilterDelivered returns only the records whose order status is delivered.
// Delay statistics are meaningless for orders that never arrived.
func FilterDelivered(records []domain.ConsolidatedRecord) []domain.ConsolidatedRecord {
	delivered := make([]domain.ConsolidatedRecord, 0, len(records))
	for _, r := range records {
		if r.Status == domain.OrderStatusDelivered {
			delivered = append(delivered, r)
		}
	}
	return delivered
}

// ValueCount is one row of a frequency table.
type ValueCount struct {
	Value string
	Count int
	Share float64
}

// CountValues builds a frequency table sorted by descending count, ties
// broken by value. Share is the normalized frequency over all rows.
func CountValues(values []string) []ValueCount {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	result := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		share := 0.0
		if len(values) > 0 {
			share = float64(count) / float64(len(values))
		}
		result = append(result, ValueCount{Value: value, Count: count, Share: share})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result
}

// CountOrderStatuses tabulates order statuses across all records.
func CountOrderStatuses(records []domain.ConsolidatedRecord) []ValueCount {
	values := make([]string, 0, len(records))
	for _, r := range records {
		values = append(values, string(r.Status))
	}
	return CountValues(values)
}

// CountDelayStatuses tabulates delay statuses. Records without a delay
// status are reported under the empty value so the total still matches
// the row count.
func CountDelayStatuses(records []domain.ConsolidatedRecord) []ValueCount {
	values := make([]string, 0, len(records))
	for _, r := range records {
		values = append(values, string(r.DelayStatus))
	}
	return CountValues(values)
}

// Describe summarizes a numeric sample the way a describe table does.
// Std is the sample standard deviation.
type Describe struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

func describe(sample []float64) Describe {
	if len(sample) == 0 {
		return Describe{}
	}
	d := Describe{
		Count: len(sample),
		Mean:  stat.Mean(sample, nil),
		Min:   floats.Min(sample),
		Max:   floats.Max(sample),
	}
	if len(sample) > 1 {
		d.Std = stat.StdDev(sample, nil)
	}
	return d
}

// DelayDescribe is the delta days summary for one delay status.
type DelayDescribe struct {
	DelayStatus domain.DelayStatus
	Describe
}

// DescribeDeltaDaysByDelay summarizes delta days per delay status, in the
// fixed on time, short delay, long delay order. Records without a delta
// are excluded from every group.
func DescribeDeltaDaysByDelay(records []domain.ConsolidatedRecord) []DelayDescribe {
	samples := make(map[domain.DelayStatus][]float64)
	for _, r := range records {
		if r.DeltaDays == nil || r.DelayStatus == "" {
			continue
		}
		samples[r.DelayStatus] = append(samples[r.DelayStatus], *r.DeltaDays)
	}

	result := make([]DelayDescribe, 0, len(delayStatusOrder))
	for _, status := range delayStatusOrder {
		result = append(result, DelayDescribe{
			DelayStatus: status,
			Describe:    describe(samples[status]),
		})
	}
	return result
}

// SalesByDelay is the sales total and share for one delay status.
type SalesByDelay struct {
	DelayStatus domain.DelayStatus
	TotalSales  float64
	Share       float64
}

// SumSalesByDelay totals sales per delay status and the share of each
// status in the overall total. Records without sales contribute nothing.
func SumSalesByDelay(records []domain.ConsolidatedRecord) []SalesByDelay {
	sums := make(map[domain.DelayStatus]float64)
	total := 0.0
	for _, r := range records {
		if r.TotalSales == nil || r.DelayStatus == "" {
			continue
		}
		sums[r.DelayStatus] += *r.TotalSales
		total += *r.TotalSales
	}

	result := make([]SalesByDelay, 0, len(delayStatusOrder))
	for _, status := range delayStatusOrder {
		share := 0.0
		if total > 0 {
			share = sums[status] / total
		}
		result = append(result, SalesByDelay{
			DelayStatus: status,
			TotalSales:  sums[status],
			Share:       share,
		})
	}
	return result
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
