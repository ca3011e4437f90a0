package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"oilstcli/internal/config"
	"oilstcli/internal/errors"
	"oilstcli/internal/infrastructure"
	"oilstcli/pkg/contracts/domain"
)

// Source names used in logs and error context.
const (
	SourceCustomers   = "customers"
	SourceGeolocation = "geolocation"
	SourceItems       = "order items"
	SourcePayments    = "payments"
	SourceOrders      = "orders"
	SourceStates      = "state abbreviations"
)

// Datasets holds every raw source after a successful load.
type Datasets struct {
	Customers    []domain.Customer
	Geolocations []domain.Geolocation
	Items        []domain.OrderItem
	Payments     []domain.Payment
	Orders       []domain.RawOrder
	States       []domain.StateAbbreviation
}

// Loader reads the six raw sources from the data directory into typed
// tables. Loading is a pure read; nothing is written or mutated.
type Loader struct {
	dataDir string
	sources config.SourcesConfig
}

// NewLoader creates a loader for the given data directory and source names.
func NewLoader(dataDir string, sources config.SourcesConfig) *Loader {
	return &Loader{dataDir: dataDir, sources: sources}
}

// LoadAll loads every source. It fails fast on the first missing file or
// schema mismatch, naming the offending source.
func (l *Loader) LoadAll(ctx context.Context) (*Datasets, error) {
	logger := infrastructure.LoggerFromContext(ctx)

	ds := &Datasets{}
	var err error

	if ds.Customers, err = l.LoadCustomers(ctx); err != nil {
		return nil, err
	}
	if ds.Geolocations, err = l.LoadGeolocations(ctx); err != nil {
		return nil, err
	}
	if ds.Items, err = l.LoadItems(ctx); err != nil {
		return nil, err
	}
	if ds.Payments, err = l.LoadPayments(ctx); err != nil {
		return nil, err
	}
	if ds.Orders, err = l.LoadOrders(ctx); err != nil {
		return nil, err
	}
	if ds.States, err = l.LoadStates(ctx); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "loaded all raw sources",
		slog.Int("customers", len(ds.Customers)),
		slog.Int("geolocations", len(ds.Geolocations)),
		slog.Int("items", len(ds.Items)),
		slog.Int("payments", len(ds.Payments)),
		slog.Int("orders", len(ds.Orders)),
		slog.Int("states", len(ds.States)))

	return ds, nil
}

// LoadCustomers reads the customers Excel source. The zip code prefix is
// kept as text; leading zeros are significant.
func (l *Loader) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	t, err := readExcelTable(l.path(l.sources.Customers), SourceCustomers, []string{
		"customer_id", "customer_unique_id", "customer_zip_code_prefix",
		"customer_city", "customer_state",
	})
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		customers = append(customers, domain.Customer{
			CustomerID:       t.get(row, "customer_id"),
			CustomerUniqueID: t.get(row, "customer_unique_id"),
			ZipCodePrefix:    t.get(row, "customer_zip_code_prefix"),
			City:             t.get(row, "customer_city"),
			State:            t.get(row, "customer_state"),
		})
	}

	l.logLoaded(ctx, SourceCustomers, len(customers))
	return customers, nil
}

// LoadGeolocations reads the raw geolocation samples. Many rows share the
// same prefix until the deduplication stage collapses them.
func (l *Loader) LoadGeolocations(ctx context.Context) ([]domain.Geolocation, error) {
	t, err := readCSVTable(l.path(l.sources.Geolocation), SourceGeolocation, []string{
		"geolocation_zip_code_prefix", "geolocation_lat", "geolocation_lng",
		"geolocation_city", "geolocation_state",
	})
	if err != nil {
		return nil, err
	}

	geos := make([]domain.Geolocation, 0, len(t.rows))
	for i, row := range t.rows {
		geos = append(geos, domain.Geolocation{
			ZipCodePrefix: t.get(row, "geolocation_zip_code_prefix"),
			Lat:           t.getFloat(row, "geolocation_lat", i),
			Lng:           t.getFloat(row, "geolocation_lng", i),
			City:          t.get(row, "geolocation_city"),
			State:         t.get(row, "geolocation_state"),
		})
	}

	l.logLoaded(ctx, SourceGeolocation, len(geos))
	return geos, nil
}

// LoadItems reads the order items source, one row per physical item.
func (l *Loader) LoadItems(ctx context.Context) ([]domain.OrderItem, error) {
	t, err := readCSVTable(l.path(l.sources.Items), SourceItems, []string{
		"order_id", "order_item_id", "price",
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(t.rows))
	for i, row := range t.rows {
		items = append(items, domain.OrderItem{
			OrderID:      t.get(row, "order_id"),
			OrderItemID:  t.getInt(row, "order_item_id", i),
			ProductID:    t.get(row, "product_id"),
			SellerID:     t.get(row, "seller_id"),
			Price:        t.getFloat(row, "price", i),
			FreightValue: t.getFloat(row, "freight_value", i),
		})
	}

	l.logLoaded(ctx, SourceItems, len(items))
	return items, nil
}

// LoadPayments reads the payments source. Payments are schema-checked here
// but only the reporting layer consumes them.
func (l *Loader) LoadPayments(ctx context.Context) ([]domain.Payment, error) {
	t, err := readCSVTable(l.path(l.sources.Payments), SourcePayments, []string{
		"order_id", "payment_type", "payment_value",
	})
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(t.rows))
	for i, row := range t.rows {
		payments = append(payments, domain.Payment{
			OrderID:      t.get(row, "order_id"),
			Sequential:   t.getInt(row, "payment_sequential", i),
			Type:         t.get(row, "payment_type"),
			Installments: t.getInt(row, "payment_installments", i),
			Value:        t.getFloat(row, "payment_value", i),
		})
	}

	l.logLoaded(ctx, SourcePayments, len(payments))
	return payments, nil
}

// LoadOrders reads the orders source. Timestamp columns stay raw strings;
// the enrichment stage parses them with its coercion policy. The optional
// distance_distribution_center column is carried through when present.
func (l *Loader) LoadOrders(ctx context.Context) ([]domain.RawOrder, error) {
	t, err := readCSVTable(l.path(l.sources.Orders), SourceOrders, []string{
		"order_id", "customer_id", "order_status",
		"order_purchase_timestamp", "order_approved_at",
		"order_delivered_carrier_date", "order_delivered_customer_date",
		"order_estimated_delivery_date",
	})
	if err != nil {
		return nil, err
	}

	hasDistance := t.hasColumn("distance_distribution_center")

	orders := make([]domain.RawOrder, 0, len(t.rows))
	for _, row := range t.rows {
		order := domain.RawOrder{
			OrderID:               t.get(row, "order_id"),
			CustomerID:            t.get(row, "customer_id"),
			Status:                t.get(row, "order_status"),
			PurchaseTimestamp:     t.get(row, "order_purchase_timestamp"),
			ApprovedAt:            t.get(row, "order_approved_at"),
			DeliveredCarrierDate:  t.get(row, "order_delivered_carrier_date"),
			DeliveredCustomerDate: t.get(row, "order_delivered_customer_date"),
			EstimatedDeliveryDate: t.get(row, "order_estimated_delivery_date"),
		}
		if hasDistance {
			order.DistanceDistributionCenter = t.get(row, "distance_distribution_center")
		}
		orders = append(orders, order)
	}

	l.logLoaded(ctx, SourceOrders, len(orders))
	return orders, nil
}

// LoadStates reads the state abbreviation mapping from its JSON source.
func (l *Loader) LoadStates(ctx context.Context) ([]domain.StateAbbreviation, error) {
	path := l.path(l.sources.States)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewSourceNotFoundError(SourceStates, err)
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to read source %s", SourceStates), err)
	}

	var states []domain.StateAbbreviation
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to decode source %s", SourceStates), err)
	}

	for _, state := range states {
		if state.Abbreviation == "" {
			return nil, errors.NewSchemaError(SourceStates, "abbreviation")
		}
		if state.StateName == "" {
			return nil, errors.NewSchemaError(SourceStates, "state_name")
		}
	}

	l.logLoaded(ctx, SourceStates, len(states))
	return states, nil
}

func (l *Loader) path(filename string) string {
	return filepath.Join(l.dataDir, filename)
}

func (l *Loader) logLoaded(ctx context.Context, source string, rows int) {
	infrastructure.LoggerFromContext(ctx).InfoContext(ctx, "loaded source",
		slog.String("source", source),
		slog.Int("rows", rows))
}
