package analytics

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "oilstcli/internal/errors"
	"oilstcli/pkg/contracts/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// LoadConsolidated reads a processed dataset file back into consolidated
// records. Columns are located by header name, so column order does not
// matter. Empty fields become nil pointers.
func LoadConsolidated(path string) ([]domain.ConsolidatedRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewSourceNotFoundError("consolidated dataset", err).
				WithContext("path", path)
		}
		return nil, apperrors.NewStorageError("failed to open consolidated dataset", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read consolidated header", err).
			WithContext("path", path)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	for _, required := range []string{"order_id", "customer_id", "order_status"} {
		if _, ok := columns[required]; !ok {
			return nil, apperrors.NewSchemaError("consolidated dataset", required).
				WithContext("path", path)
		}
	}

	var records []domain.ConsolidatedRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to read consolidated row", err).
				WithContext("path", path)
		}
		records = append(records, parseRecord(row, columns))
	}

	slog.Info("Loaded consolidated dataset",
		slog.String("path", path),
		slog.Int("rows", len(records)))
	return records, nil
}

func parseRecord(row []string, columns map[string]int) domain.ConsolidatedRecord {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	return domain.ConsolidatedRecord{
		Order: domain.Order{
			OrderID:                    get("order_id"),
			CustomerID:                 get("customer_id"),
			Status:                     domain.OrderStatus(get("order_status")),
			PurchaseTimestamp:          parseTimePtr(get("order_purchase_timestamp")),
			ApprovedAt:                 parseTimePtr(get("order_approved_at")),
			DeliveredCarrierDate:       parseTimePtr(get("order_delivered_carrier_date")),
			DeliveredCustomerDate:      parseTimePtr(get("order_delivered_customer_date")),
			EstimatedDeliveryDate:      parseTimePtr(get("order_estimated_delivery_date")),
			DistanceDistributionCenter: parseFloatPtr(get("distance_distribution_center")),
			Year:                       parseIntPtr(get("year")),
			Month:                      parseIntPtr(get("month")),
			Quarter:                    get("quarter"),
			YearMonth:                  get("year_month"),
			DeltaDays:                  parseFloatPtr(get("delta_days")),
			DelayStatus:                domain.DelayStatus(get("delay_status")),
		},
		TotalProducts:            parseIntPtr(get("total_products")),
		TotalSales:               parseFloatPtr(get("total_sales")),
		CustomerUniqueID:         parseStringPtr(get("customer_unique_id")),
		CustomerZipCodePrefix:    parseStringPtr(get("customer_zip_code_prefix")),
		CustomerCity:             parseStringPtr(get("customer_city")),
		CustomerState:            parseStringPtr(get("customer_state")),
		GeolocationZipCodePrefix: parseStringPtr(get("geolocation_zip_code_prefix")),
		GeolocationLat:           parseFloatPtr(get("geolocation_lat")),
		GeolocationLng:           parseFloatPtr(get("geolocation_lng")),
		GeolocationCity:          parseStringPtr(get("geolocation_city")),
		GeolocationState:         parseStringPtr(get("geolocation_state")),
		Abbreviation:             parseStringPtr(get("abbreviation")),
		StateName:                parseStringPtr(get("state_name")),
	}
}

func parseTimePtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		slog.Debug("Skipping unparseable timestamp", slog.String("value", value))
		return nil
	}
	return &t
}

func parseFloatPtr(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Debug("Skipping unparseable number", slog.String("value", value))
		return nil
	}
	return &f
}

func parseIntPtr(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Debug("Skipping unparseable integer", slog.String("value", value))
		return nil
	}
	return &n
}

func parseStringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
