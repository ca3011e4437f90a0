package analytics

import (
	"sort"
	"strconv"

	"oilstcli/pkg/contracts/domain"
)

// SalesPivot is total sales per purchase month, split by delay status.
// Months without a value for a status hold zero.
type SalesPivot struct {
	Months   []string
	Statuses []domain.DelayStatus
	Values   map[string]map[domain.DelayStatus]float64
}

// PivotSalesByMonth builds the month by delay status sales table. Records
// without a purchase month, a delay status or sales are skipped.
func PivotSalesByMonth(records []domain.ConsolidatedRecord) SalesPivot {
	values := make(map[string]map[domain.DelayStatus]float64)
	for _, r := range records {
		if r.YearMonth == "" || r.DelayStatus == "" || r.TotalSales == nil {
			continue
		}
		row, ok := values[r.YearMonth]
		if !ok {
			row = make(map[domain.DelayStatus]float64)
			values[r.YearMonth] = row
		}
		row[r.DelayStatus] += *r.TotalSales
	}

	months := make([]string, 0, len(values))
	for month := range values {
		months = append(months, month)
	}
	sort.Strings(months)

	return SalesPivot{
		Months:   months,
		Statuses: delayStatusOrder,
		Values:   values,
	}
}

// Rows renders the pivot as CSV rows, one per month.
func (p SalesPivot) Rows() [][]string {
	rows := make([][]string, 0, len(p.Months))
	for _, month := range p.Months {
		row := make([]string, 0, len(p.Statuses)+1)
		row = append(row, month)
		for _, status := range p.Statuses {
			row = append(row, formatFloat(p.Values[month][status]))
		}
		rows = append(rows, row)
	}
	return rows
}

// Header returns the pivot header matching Rows.
func (p SalesPivot) Header() []string {
	header := make([]string, 0, len(p.Statuses)+1)
	header = append(header, "year_month")
	for _, status := range p.Statuses {
		header = append(header, string(status))
	}
	return header
}

// ProductsCrosstab counts orders by product count and delay status.
type ProductsCrosstab struct {
	ProductCounts []int
	Statuses      []domain.DelayStatus
	Counts        map[int]map[domain.DelayStatus]int
}

// CrosstabProductsByDelay cross tabulates order counts by the number of
// products in the order against the delay status.
func CrosstabProductsByDelay(records []domain.ConsolidatedRecord) ProductsCrosstab {
	counts := make(map[int]map[domain.DelayStatus]int)
	for _, r := range records {
		if r.TotalProducts == nil || r.DelayStatus == "" {
			continue
		}
		row, ok := counts[*r.TotalProducts]
		if !ok {
			row = make(map[domain.DelayStatus]int)
			counts[*r.TotalProducts] = row
		}
		row[r.DelayStatus]++
	}

	productCounts := make([]int, 0, len(counts))
	for n := range counts {
		productCounts = append(productCounts, n)
	}
	sort.Ints(productCounts)

	return ProductsCrosstab{
		ProductCounts: productCounts,
		Statuses:      delayStatusOrder,
		Counts:        counts,
	}
}

// Rows renders the crosstab as CSV rows, one per product count.
func (c ProductsCrosstab) Rows() [][]string {
	rows := make([][]string, 0, len(c.ProductCounts))
	for _, n := range c.ProductCounts {
		row := make([]string, 0, len(c.Statuses)+1)
		row = append(row, strconv.Itoa(n))
		for _, status := range c.Statuses {
			row = append(row, strconv.Itoa(c.Counts[n][status]))
		}
		rows = append(rows, row)
	}
	return rows
}

// Header returns the crosstab header matching Rows.
func (c ProductsCrosstab) Header() []string {
	header := make([]string, 0, len(c.Statuses)+1)
	header = append(header, "total_products")
	for _, status := range c.Statuses {
		header = append(header, string(status))
	}
	return header
}
