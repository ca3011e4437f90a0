package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oilstcli/pkg/contracts/domain"
)

func TestCorrelate_PerfectCorrelation(t *testing.T) {
	// total_sales is exactly 10x total_products, so their correlation is 1.
	records := []domain.ConsolidatedRecord{
		deliveredRecord(domain.DelayStatusOnTime, -1, 10, 1, "2018-01"),
		deliveredRecord(domain.DelayStatusOnTime, -2, 20, 2, "2018-01"),
		deliveredRecord(domain.DelayStatusOnTime, -3, 30, 3, "2018-01"),
	}

	corr := Correlate(records)
	require.NotNil(t, corr.Matrix)
	assert.Equal(t, []string{"total_products", "total_sales", "delta_days"}, corr.Columns)

	assert.InDelta(t, 1.0, corr.Matrix.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0, corr.Matrix.At(0, 1), 1e-9)
	assert.InDelta(t, -1.0, corr.Matrix.At(0, 2), 1e-9)
	assert.InDelta(t, corr.Matrix.At(1, 2), corr.Matrix.At(2, 1), 1e-9)
}

func TestCorrelate_IncludesDistanceWhenPresent(t *testing.T) {
	withDistance := func(r domain.ConsolidatedRecord, distance float64) domain.ConsolidatedRecord {
		r.DistanceDistributionCenter = ptr(distance)
		return r
	}
	// Distance is exactly 2x total_products, so their correlation is 1.
	records := []domain.ConsolidatedRecord{
		withDistance(deliveredRecord(domain.DelayStatusOnTime, -1, 10, 1, "2018-01"), 2),
		withDistance(deliveredRecord(domain.DelayStatusOnTime, -2, 25, 2, "2018-01"), 4),
		withDistance(deliveredRecord(domain.DelayStatusOnTime, -3, 30, 3, "2018-01"), 6),
	}

	corr := Correlate(records)
	require.NotNil(t, corr.Matrix)
	require.Equal(t, []string{"total_products", "total_sales", "delta_days", "distance_distribution_center"}, corr.Columns)
	assert.InDelta(t, 1.0, corr.Matrix.At(0, 3), 1e-9)
	assert.Equal(t, []string{"column", "total_products", "total_sales", "delta_days", "distance_distribution_center"}, corr.Header())

	rows := corr.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "distance_distribution_center", rows[3][0])
}

func TestCorrelate_DistanceColumnRequiresCompleteCase(t *testing.T) {
	full := deliveredRecord(domain.DelayStatusOnTime, -1, 10, 1, "2018-01")
	full.DistanceDistributionCenter = ptr(5.0)
	noDistance := deliveredRecord(domain.DelayStatusOnTime, -2, 20, 2, "2018-01")

	// One record has distance, so the column is included and the record
	// without it drops out of the sample, leaving one complete row.
	corr := Correlate([]domain.ConsolidatedRecord{full, noDistance})
	require.Len(t, corr.Columns, 4)
	assert.Nil(t, corr.Matrix)
}

func TestCorrelate_SkipsIncompleteRows(t *testing.T) {
	records := []domain.ConsolidatedRecord{
		deliveredRecord(domain.DelayStatusOnTime, -1, 10, 1, "2018-01"),
		{Order: domain.Order{Status: domain.OrderStatusDelivered}},
	}

	corr := Correlate(records)
	assert.Nil(t, corr.Matrix, "a single complete row cannot be correlated")
}

func TestCorrelationMatrix_RowsWithoutData(t *testing.T) {
	corr := Correlate(nil)

	rows := corr.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"total_products", "", "", ""}, rows[0])
	assert.Equal(t, []string{"column", "total_products", "total_sales", "delta_days"}, corr.Header())
}

func TestSummarizePaymentsByType(t *testing.T) {
	payments := []domain.Payment{
		{OrderID: "a", Type: "credit_card", Installments: 4, Value: 100},
		{OrderID: "b", Type: "credit_card", Installments: 2, Value: 50},
		{OrderID: "c", Type: "boleto", Installments: 1, Value: 200},
	}

	groups := SummarizePaymentsByType(payments)
	require.Len(t, groups, 2)

	assert.Equal(t, "boleto", groups[0].Type)
	assert.InDelta(t, 200.0, groups[0].TotalValue, 1e-9)

	assert.Equal(t, "credit_card", groups[1].Type)
	assert.Equal(t, 2, groups[1].Count)
	assert.InDelta(t, 150.0, groups[1].TotalValue, 1e-9)
	assert.InDelta(t, 3.0, groups[1].MeanInstallments, 1e-9)
}
