package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oilstcli/pkg/contracts/domain"
)

func testFixtures() ([]domain.Customer, []domain.Geolocation, []domain.StateAbbreviation) {
	customers := []domain.Customer{
		{CustomerID: "c1", CustomerUniqueID: "u1", ZipCodePrefix: "01037", City: "sao paulo", State: "SP"},
		{CustomerID: "c2", CustomerUniqueID: "u2", ZipCodePrefix: "99999", City: "nowhere", State: "XX"},
	}
	geos := []domain.Geolocation{
		{ZipCodePrefix: "01037", Lat: -23.5, Lng: -46.6, City: "sao paulo", State: "SP"},
	}
	states := []domain.StateAbbreviation{
		{Abbreviation: "SP", StateName: "Sao Paulo"},
	}
	return customers, geos, states
}

func TestConsolidate_FullMatch(t *testing.T) {
	customers, geos, states := testFixtures()
	orders := []domain.Order{{OrderID: "o1", CustomerID: "c1", Status: domain.OrderStatusDelivered}}
	aggregates := map[string]domain.OrderItemAggregate{
		"o1": {OrderID: "o1", TotalProducts: 1, TotalSales: 20},
	}

	records := Consolidate(context.Background(), orders, aggregates, customers, geos, states)

	require.Len(t, records, 1)
	record := records[0]

	require.NotNil(t, record.TotalProducts)
	assert.Equal(t, 1, *record.TotalProducts)
	require.NotNil(t, record.TotalSales)
	assert.InDelta(t, 20.0, *record.TotalSales, 1e-9)

	require.NotNil(t, record.CustomerUniqueID)
	assert.Equal(t, "u1", *record.CustomerUniqueID)
	require.NotNil(t, record.GeolocationZipCodePrefix)
	assert.Equal(t, "01037", *record.GeolocationZipCodePrefix)
	require.NotNil(t, record.StateName)
	assert.Equal(t, "Sao Paulo", *record.StateName)
	require.NotNil(t, record.Abbreviation)
	assert.Equal(t, "SP", *record.Abbreviation)
}

func TestConsolidate_PreservesOrderRowCount(t *testing.T) {
	// Every order is unmatched everywhere: rows must survive with nil
	// derived columns.
	orders := []domain.Order{
		{OrderID: "o1", CustomerID: "ghost1"},
		{OrderID: "o2", CustomerID: "ghost2"},
		{OrderID: "o3", CustomerID: "ghost3"},
	}

	records := Consolidate(context.Background(), orders, nil, nil, nil, nil)

	require.Len(t, records, len(orders))
	for _, record := range records {
		assert.Nil(t, record.TotalProducts)
		assert.Nil(t, record.TotalSales)
		assert.Nil(t, record.CustomerUniqueID)
		assert.Nil(t, record.GeolocationLat)
		assert.Nil(t, record.StateName)
	}
}

func TestConsolidate_MissingAggregateStaysNil(t *testing.T) {
	customers, geos, states := testFixtures()
	orders := []domain.Order{{OrderID: "o-empty", CustomerID: "c1"}}

	records := Consolidate(context.Background(), orders, map[string]domain.OrderItemAggregate{}, customers, geos, states)

	require.Len(t, records, 1)
	// No items recorded is nil, never zero.
	assert.Nil(t, records[0].TotalProducts)
	assert.Nil(t, records[0].TotalSales)
	// The customer side still joined.
	require.NotNil(t, records[0].CustomerUniqueID)
}

func TestConsolidate_CustomerWithoutGeolocation(t *testing.T) {
	customers, geos, states := testFixtures()
	orders := []domain.Order{{OrderID: "o1", CustomerID: "c2"}}

	records := Consolidate(context.Background(), orders, nil, customers, geos, states)

	require.Len(t, records, 1)
	record := records[0]

	require.NotNil(t, record.CustomerZipCodePrefix)
	assert.Equal(t, "99999", *record.CustomerZipCodePrefix)
	assert.Nil(t, record.GeolocationZipCodePrefix)
	assert.Nil(t, record.GeolocationLat)
	assert.Nil(t, record.StateName)
}

func TestConsolidate_GeolocationStateWithoutName(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "c1", CustomerUniqueID: "u1", ZipCodePrefix: "70000", State: "DF"},
	}
	geos := []domain.Geolocation{
		{ZipCodePrefix: "70000", Lat: -15.8, Lng: -47.9, City: "brasilia", State: "DF"},
	}
	orders := []domain.Order{{OrderID: "o1", CustomerID: "c1"}}

	records := Consolidate(context.Background(), orders, nil, customers, geos, nil)

	require.Len(t, records, 1)
	require.NotNil(t, records[0].GeolocationState)
	assert.Equal(t, "DF", *records[0].GeolocationState)
	assert.Nil(t, records[0].StateName)
}

func TestConsolidate_DuplicateCustomerKeepsFirst(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "c1", CustomerUniqueID: "first", ZipCodePrefix: "01037"},
		{CustomerID: "c1", CustomerUniqueID: "second", ZipCodePrefix: "24220"},
	}
	orders := []domain.Order{{OrderID: "o1", CustomerID: "c1"}}

	records := Consolidate(context.Background(), orders, nil, customers, nil, nil)

	// Fan-out never happens: one order row in, one row out.
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CustomerUniqueID)
	assert.Equal(t, "first", *records[0].CustomerUniqueID)
}

func TestConsolidate_EndToEndScenario(t *testing.T) {
	// One order bought 2018-01-01, promised 2018-01-10, delivered
	// 2018-01-08, with a single 20.0 item.
	enricher := NewEnricher(3)
	orders := enricher.EnrichOrders(context.Background(), []domain.RawOrder{{
		OrderID:               "1",
		CustomerID:            "c1",
		Status:                "delivered",
		PurchaseTimestamp:     "2018-01-01 00:00:00",
		DeliveredCustomerDate: "2018-01-08 00:00:00",
		EstimatedDeliveryDate: "2018-01-10 00:00:00",
	}})
	aggregates := AggregateItems(context.Background(), []domain.OrderItem{
		{OrderID: "1", OrderItemID: 1, Price: 20},
	})
	customers, geos, states := testFixtures()

	records := Consolidate(context.Background(), orders, aggregates, customers,
		DedupeGeolocations(context.Background(), geos),
		DedupeStates(context.Background(), states))

	require.Len(t, records, 1)
	record := records[0]

	require.NotNil(t, record.DeltaDays)
	assert.InDelta(t, -2.0, *record.DeltaDays, 1e-9)
	assert.Equal(t, domain.DelayStatusOnTime, record.DelayStatus)
	require.NotNil(t, record.TotalProducts)
	assert.Equal(t, 1, *record.TotalProducts)
	require.NotNil(t, record.TotalSales)
	assert.InDelta(t, 20.0, *record.TotalSales, 1e-9)
}
