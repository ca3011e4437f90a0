package exporter

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	apperrors "oilstcli/internal/errors"
	"oilstcli/pkg/contracts/domain"
)

// timestampLayout is the wire format for exported timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// ConsolidatedHeader is the fixed column order of the processed dataset.
// Downstream consumers rely on these positions, so the order never changes.
var ConsolidatedHeader = []string{
	"order_id",
	"customer_id",
	"order_status",
	"order_purchase_timestamp",
	"order_approved_at",
	"order_delivered_carrier_date",
	"order_delivered_customer_date",
	"order_estimated_delivery_date",
	"distance_distribution_center",
	"delay_status",
	"total_products",
	"total_sales",
	"customer_unique_id",
	"customer_zip_code_prefix",
	"customer_city",
	"customer_state",
	"geolocation_zip_code_prefix",
	"geolocation_lat",
	"geolocation_lng",
	"geolocation_city",
	"geolocation_state",
	"abbreviation",
	"state_name",
	"year",
	"month",
	"quarter",
	"year_month",
	"delta_days",
}

// ConsolidatedExporter writes consolidated order records as the processed
// dataset table.
type ConsolidatedExporter struct {
	writer *CSVWriter
}

// NewConsolidatedExporter creates a consolidated exporter backed by the
// given CSV writer.
func NewConsolidatedExporter(writer *CSVWriter) *ConsolidatedExporter {
	return &ConsolidatedExporter{writer: writer}
}

// Export streams the records to filePath, one row per order. Missing
// values become empty fields so a later read can tell absent from zero.
// The output appears atomically; a failed export leaves no partial file.
func (e *ConsolidatedExporter) Export(ctx context.Context, records []domain.ConsolidatedRecord, filePath string) error {
	stream, err := e.writer.CreateStreamWriter(filePath, ConsolidatedHeader)
	if err != nil {
		return apperrors.NewStorageError("failed to export consolidated dataset", err).
			WithContext("file_path", filePath)
	}

	for i := range records {
		if err := stream.WriteRecord(FormatConsolidatedRecord(&records[i])); err != nil {
			stream.Abort()
			return apperrors.NewStorageError("failed to export consolidated dataset", err).
				WithContext("file_path", filePath)
		}
	}

	if err := stream.Close(); err != nil {
		return apperrors.NewStorageError("failed to export consolidated dataset", err).
			WithContext("file_path", filePath)
	}

	slog.InfoContext(ctx, "Exported consolidated dataset",
		slog.String("file_path", filePath),
		slog.Int("rows", len(records)))
	return nil
}

// FormatConsolidatedRecord renders one record in ConsolidatedHeader order.
func FormatConsolidatedRecord(r *domain.ConsolidatedRecord) []string {
	return []string{
		r.OrderID,
		r.CustomerID,
		string(r.Status),
		formatTime(r.PurchaseTimestamp),
		formatTime(r.ApprovedAt),
		formatTime(r.DeliveredCarrierDate),
		formatTime(r.DeliveredCustomerDate),
		formatTime(r.EstimatedDeliveryDate),
		formatFloatPtr(r.DistanceDistributionCenter),
		string(r.DelayStatus),
		formatIntPtr(r.TotalProducts),
		formatFloatPtr(r.TotalSales),
		formatStringPtr(r.CustomerUniqueID),
		formatStringPtr(r.CustomerZipCodePrefix),
		formatStringPtr(r.CustomerCity),
		formatStringPtr(r.CustomerState),
		formatStringPtr(r.GeolocationZipCodePrefix),
		formatFloatPtr(r.GeolocationLat),
		formatFloatPtr(r.GeolocationLng),
		formatStringPtr(r.GeolocationCity),
		formatStringPtr(r.GeolocationState),
		formatStringPtr(r.Abbreviation),
		formatStringPtr(r.StateName),
		formatIntPtr(r.Year),
		formatIntPtr(r.Month),
		r.Quarter,
		r.YearMonth,
		formatFloatPtr(r.DeltaDays),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatStringPtr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
