package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"oilstcli/internal/infrastructure"
	"oilstcli/pkg/contracts/domain"
)

// timestampLayouts are tried in order when parsing order timestamps. The
// marketplace exports full timestamps, but the estimated delivery column
// sometimes carries bare dates.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const secondsPerDay = 86400.0

// Enricher derives the temporal and delay fields of an order from its raw
// timestamp strings.
type Enricher struct {
	longDelayDays float64
}

// NewEnricher creates an enricher with the given long delay threshold in
// days. Deliveries later than the estimate by more than the threshold are
// long delays; positive lateness up to the threshold is a short delay.
func NewEnricher(longDelayDays float64) *Enricher {
	return &Enricher{longDelayDays: longDelayDays}
}

// EnrichOrders parses the timestamp columns of every raw order and derives
// the calendar fields, delta_days and delay_status. Unparseable or empty
// timestamps become missing values; enrichment never fails a run.
func (e *Enricher) EnrichOrders(ctx context.Context, raw []domain.RawOrder) []domain.Order {
	orders := make([]domain.Order, 0, len(raw))
	for _, r := range raw {
		orders = append(orders, e.enrich(r))
	}

	infrastructure.LoggerFromContext(ctx).InfoContext(ctx, "enriched orders",
		slog.Int("orders", len(orders)),
		slog.Float64("long_delay_days", e.longDelayDays))

	return orders
}

func (e *Enricher) enrich(raw domain.RawOrder) domain.Order {
	order := domain.Order{
		OrderID:               raw.OrderID,
		CustomerID:            raw.CustomerID,
		Status:                domain.OrderStatus(raw.Status),
		PurchaseTimestamp:     parseTimestamp(raw.PurchaseTimestamp),
		ApprovedAt:            parseTimestamp(raw.ApprovedAt),
		DeliveredCarrierDate:  parseTimestamp(raw.DeliveredCarrierDate),
		DeliveredCustomerDate: parseTimestamp(raw.DeliveredCustomerDate),
		EstimatedDeliveryDate: parseTimestamp(raw.EstimatedDeliveryDate),
	}

	if raw.DistanceDistributionCenter != "" {
		if distance, err := strconv.ParseFloat(raw.DistanceDistributionCenter, 64); err == nil {
			order.DistanceDistributionCenter = &distance
		} else {
			slog.Debug("coerced unparseable distance to missing",
				slog.String("order_id", raw.OrderID),
				slog.String("value", raw.DistanceDistributionCenter))
		}
	}

	if purchase := order.PurchaseTimestamp; purchase != nil {
		year := purchase.Year()
		month := int(purchase.Month())
		order.Year = &year
		order.Month = &month
		order.Quarter = fmt.Sprintf("%dQ%d", year, (month-1)/3+1)
		order.YearMonth = fmt.Sprintf("%04d-%02d", year, month)
	}

	order.DeltaDays = deltaDays(order.DeliveredCustomerDate, order.EstimatedDeliveryDate)
	order.DelayStatus = e.classify(order.DeltaDays)

	return order
}

// parseTimestamp converts a raw timestamp string to a time value. Empty and
// unparseable strings become nil, mirroring a coercing datetime read.
func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// deltaDays returns the signed distance between actual and promised
// delivery in fractional days, or nil when either endpoint is missing.
func deltaDays(delivered, estimated *time.Time) *float64 {
	if delivered == nil || estimated == nil {
		return nil
	}
	delta := delivered.Sub(*estimated).Seconds() / secondsPerDay
	return &delta
}

// classify maps delta_days onto the delay taxonomy. The order of the rules
// matters: a missing delta stays missing, lateness beyond the threshold is
// a long delay, zero or early is on time, anything else is a short delay.
func (e *Enricher) classify(delta *float64) domain.DelayStatus {
	switch {
	case delta == nil:
		return ""
	case *delta > e.longDelayDays:
		return domain.DelayStatusLongDelay
	case *delta <= 0:
		return domain.DelayStatusOnTime
	default:
		return domain.DelayStatusShortDelay
	}
}
