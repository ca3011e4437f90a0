package analytics

import (
	"context"
	"log/slog"
	"strconv"

	"oilstcli/internal/exporter"
	"oilstcli/pkg/contracts/domain"
)

// Report file names produced by the summarize command.
const (
	ReportOrderStatusCounts = "order_status_counts.csv"
	ReportDelayStatusCounts = "delay_status_counts.csv"
	ReportDeltaDaysByDelay  = "delta_days_by_delay.csv"
	ReportSalesByDelay      = "sales_by_delay.csv"
	ReportSalesByMonth      = "sales_by_month.csv"
	ReportProductsByDelay   = "products_by_delay.csv"
	ReportCorrelation       = "correlation.csv"
	ReportPaymentsByType    = "payments_by_type.csv"
)

// Reporter writes the summary report tables.
type Reporter struct {
	writer *exporter.CSVWriter
}

// NewReporter creates a reporter backed by the given CSV writer.
func NewReporter(writer *exporter.CSVWriter) *Reporter {
	return &Reporter{writer: writer}
}

// WriteReports computes every summary table and writes each as its own CSV
// file. Status counts cover all orders; the delay statistics only cover
// delivered orders. payments may be nil when the payments source is
// unavailable, in which case the payments report is skipped.
func (r *Reporter) WriteReports(ctx context.Context, records []domain.ConsolidatedRecord, payments []domain.Payment) error {
	delivered := FilterDelivered(records)
	slog.InfoContext(ctx, "Computing summary reports",
		slog.Int("orders", len(records)),
		slog.Int("delivered", len(delivered)))

	if err := r.writeValueCounts(ReportOrderStatusCounts, "order_status", CountOrderStatuses(records)); err != nil {
		return err
	}
	if err := r.writeValueCounts(ReportDelayStatusCounts, "delay_status", CountDelayStatuses(delivered)); err != nil {
		return err
	}
	if err := r.writeDeltaDescribe(DescribeDeltaDaysByDelay(delivered)); err != nil {
		return err
	}
	if err := r.writeSalesByDelay(SumSalesByDelay(delivered)); err != nil {
		return err
	}

	pivot := PivotSalesByMonth(delivered)
	if err := r.writer.WriteSimpleCSV(ReportSalesByMonth, pivot.Header(), pivot.Rows()); err != nil {
		return err
	}

	crosstab := CrosstabProductsByDelay(delivered)
	if err := r.writer.WriteSimpleCSV(ReportProductsByDelay, crosstab.Header(), crosstab.Rows()); err != nil {
		return err
	}

	corr := Correlate(delivered)
	if err := r.writer.WriteSimpleCSV(ReportCorrelation, corr.Header(), corr.Rows()); err != nil {
		return err
	}

	if payments != nil {
		if err := r.writePaymentsByType(SummarizePaymentsByType(payments)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reporter) writeValueCounts(fileName, valueColumn string, counts []ValueCount) error {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, strconv.Itoa(c.Count), formatFloat(c.Share)})
	}
	return r.writer.WriteSimpleCSV(fileName, []string{valueColumn, "count", "share"}, rows)
}

func (r *Reporter) writeDeltaDescribe(groups []DelayDescribe) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			string(g.DelayStatus),
			strconv.Itoa(g.Count),
			formatFloat(g.Mean),
			formatFloat(g.Std),
			formatFloat(g.Min),
			formatFloat(g.Max),
		})
	}
	return r.writer.WriteSimpleCSV(ReportDeltaDaysByDelay,
		[]string{"delay_status", "count", "mean", "std", "min", "max"}, rows)
}

func (r *Reporter) writeSalesByDelay(groups []SalesByDelay) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			string(g.DelayStatus),
			formatFloat(g.TotalSales),
			formatFloat(g.Share),
		})
	}
	return r.writer.WriteSimpleCSV(ReportSalesByDelay,
		[]string{"delay_status", "total_sales", "share"}, rows)
}

func (r *Reporter) writePaymentsByType(groups []PaymentTypeSummary) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Type,
			strconv.Itoa(g.Count),
			formatFloat(g.TotalValue),
			formatFloat(g.MeanInstallments),
		})
	}
	return r.writer.WriteSimpleCSV(ReportPaymentsByType,
		[]string{"payment_type", "count", "total_value", "mean_installments"}, rows)
}
