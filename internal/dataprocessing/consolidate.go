package dataprocessing

import (
	"context"
	"log/slog"

	"oilstcli/internal/infrastructure"
	"oilstcli/pkg/contracts/domain"
)

// customerLocation is the intermediate result of joining a customer with
// its geolocation and state name.
type customerLocation struct {
	customer domain.Customer
	geo      *domain.Geolocation
	state    *domain.StateAbbreviation
}

// Consolidate combines the enriched orders with the item aggregates and
// the customer/geolocation/state lookups into the final wide table.
//
// The joins run in a fixed order, all of them left joins anchored on the
// order/customer side: customer with geolocation, that result with the
// state name, order with its item aggregate, and finally both halves on
// customer_id. No order row is ever dropped; unmatched sides stay nil. A
// duplicate key on the lookup side of any join would fan rows out, so
// duplicates are logged at warn level and the first occurrence wins,
// keeping the output row count equal to the order row count.
func Consolidate(
	ctx context.Context,
	orders []domain.Order,
	aggregates map[string]domain.OrderItemAggregate,
	customers []domain.Customer,
	geos []domain.Geolocation,
	states []domain.StateAbbreviation,
) []domain.ConsolidatedRecord {
	logger := infrastructure.LoggerFromContext(ctx)

	geoByPrefix := make(map[string]domain.Geolocation, len(geos))
	for _, geo := range geos {
		if _, ok := geoByPrefix[geo.ZipCodePrefix]; ok {
			logger.WarnContext(ctx, "duplicate geolocation prefix on lookup side of join, keeping first",
				slog.String("zip_code_prefix", geo.ZipCodePrefix))
			continue
		}
		geoByPrefix[geo.ZipCodePrefix] = geo
	}

	stateByAbbreviation := make(map[string]domain.StateAbbreviation, len(states))
	for _, state := range states {
		if _, ok := stateByAbbreviation[state.Abbreviation]; ok {
			logger.WarnContext(ctx, "duplicate state abbreviation on lookup side of join, keeping first",
				slog.String("abbreviation", state.Abbreviation))
			continue
		}
		stateByAbbreviation[state.Abbreviation] = state
	}

	// Join 1 and 2: customer with geolocation, then with the state name of
	// the matched geolocation.
	locationByCustomerID := make(map[string]customerLocation, len(customers))
	for _, customer := range customers {
		if _, ok := locationByCustomerID[customer.CustomerID]; ok {
			logger.WarnContext(ctx, "duplicate customer_id on lookup side of join, keeping first",
				slog.String("customer_id", customer.CustomerID))
			continue
		}

		loc := customerLocation{customer: customer}
		if geo, ok := geoByPrefix[customer.ZipCodePrefix]; ok {
			loc.geo = &geo
			if state, ok := stateByAbbreviation[geo.State]; ok {
				loc.state = &state
			}
		}
		locationByCustomerID[customer.CustomerID] = loc
	}

	// Joins 3 and 4: order with its item aggregate, then with the
	// customer+location half.
	records := make([]domain.ConsolidatedRecord, 0, len(orders))
	var matchedCustomers, matchedAggregates int
	for _, order := range orders {
		record := domain.ConsolidatedRecord{Order: order}

		if agg, ok := aggregates[order.OrderID]; ok {
			totalProducts := agg.TotalProducts
			totalSales := agg.TotalSales
			record.TotalProducts = &totalProducts
			record.TotalSales = &totalSales
			matchedAggregates++
		}

		if loc, ok := locationByCustomerID[order.CustomerID]; ok {
			record.CustomerUniqueID = &loc.customer.CustomerUniqueID
			record.CustomerZipCodePrefix = &loc.customer.ZipCodePrefix
			record.CustomerCity = &loc.customer.City
			record.CustomerState = &loc.customer.State

			if loc.geo != nil {
				record.GeolocationZipCodePrefix = &loc.geo.ZipCodePrefix
				record.GeolocationLat = &loc.geo.Lat
				record.GeolocationLng = &loc.geo.Lng
				record.GeolocationCity = &loc.geo.City
				record.GeolocationState = &loc.geo.State
			}
			if loc.state != nil {
				record.Abbreviation = &loc.state.Abbreviation
				record.StateName = &loc.state.StateName
			}
			matchedCustomers++
		}

		records = append(records, record)
	}

	logger.InfoContext(ctx, "consolidated orders",
		slog.Int("orders", len(orders)),
		slog.Int("rows", len(records)),
		slog.Int("with_items", matchedAggregates),
		slog.Int("with_customer", matchedCustomers))

	return records
}
