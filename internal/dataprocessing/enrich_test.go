package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oilstcli/pkg/contracts/domain"
)

func enrichOne(t *testing.T, raw domain.RawOrder) domain.Order {
	t.Helper()
	orders := NewEnricher(3).EnrichOrders(context.Background(), []domain.RawOrder{raw})
	require.Len(t, orders, 1)
	return orders[0]
}

func TestEnrichOrders_CalendarFields(t *testing.T) {
	order := enrichOne(t, domain.RawOrder{
		OrderID:           "o1",
		CustomerID:        "c1",
		Status:            "delivered",
		PurchaseTimestamp: "2018-02-14 09:30:00",
	})

	require.NotNil(t, order.Year)
	require.NotNil(t, order.Month)
	assert.Equal(t, 2018, *order.Year)
	assert.Equal(t, 2, *order.Month)
	assert.Equal(t, "2018Q1", order.Quarter)
	assert.Equal(t, "2018-02", order.YearMonth)
	assert.Equal(t, domain.OrderStatusDelivered, order.Status)
}

func TestEnrichOrders_QuarterBoundaries(t *testing.T) {
	tests := []struct {
		purchase string
		quarter  string
	}{
		{"2018-01-01 00:00:00", "2018Q1"},
		{"2018-03-31 23:59:59", "2018Q1"},
		{"2018-04-01 00:00:00", "2018Q2"},
		{"2018-07-15 12:00:00", "2018Q3"},
		{"2018-12-31 23:59:59", "2018Q4"},
	}

	for _, tt := range tests {
		t.Run(tt.purchase, func(t *testing.T) {
			order := enrichOne(t, domain.RawOrder{PurchaseTimestamp: tt.purchase})
			assert.Equal(t, tt.quarter, order.Quarter)
		})
	}
}

func TestEnrichOrders_MissingPurchaseTimestamp(t *testing.T) {
	order := enrichOne(t, domain.RawOrder{OrderID: "o1"})

	assert.Nil(t, order.Year)
	assert.Nil(t, order.Month)
	assert.Empty(t, order.Quarter)
	assert.Empty(t, order.YearMonth)
}

func TestEnrichOrders_UnparseableTimestampCoercesToMissing(t *testing.T) {
	order := enrichOne(t, domain.RawOrder{
		PurchaseTimestamp: "not a timestamp",
		ApprovedAt:        "2018/13/45",
	})

	assert.Nil(t, order.PurchaseTimestamp)
	assert.Nil(t, order.ApprovedAt)
	assert.Nil(t, order.Year)
}

func TestEnrichOrders_DateOnlyTimestamp(t *testing.T) {
	order := enrichOne(t, domain.RawOrder{
		EstimatedDeliveryDate: "2018-01-10",
	})

	require.NotNil(t, order.EstimatedDeliveryDate)
	assert.Equal(t, "2018-01-10", order.EstimatedDeliveryDate.Format("2006-01-02"))
}

func TestEnrichOrders_DeltaDays(t *testing.T) {
	order := enrichOne(t, domain.RawOrder{
		PurchaseTimestamp:     "2018-01-01 00:00:00",
		DeliveredCustomerDate: "2018-01-08 00:00:00",
		EstimatedDeliveryDate: "2018-01-10 00:00:00",
	})

	require.NotNil(t, order.DeltaDays)
	assert.InDelta(t, -2.0, *order.DeltaDays, 1e-9)
	assert.Equal(t, domain.DelayStatusOnTime, order.DelayStatus)
}

func TestEnrichOrders_DeltaDaysFractional(t *testing.T) {
	order := enrichOne(t, domain.RawOrder{
		DeliveredCustomerDate: "2018-01-10 12:00:00",
		EstimatedDeliveryDate: "2018-01-10 00:00:00",
	})

	require.NotNil(t, order.DeltaDays)
	assert.InDelta(t, 0.5, *order.DeltaDays, 1e-9)
	assert.Equal(t, domain.DelayStatusShortDelay, order.DelayStatus)
}

func TestEnrichOrders_DeltaMissingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		raw  domain.RawOrder
	}{
		{
			name: "missing delivered date",
			raw:  domain.RawOrder{EstimatedDeliveryDate: "2018-01-10 00:00:00"},
		},
		{
			name: "missing estimated date",
			raw:  domain.RawOrder{DeliveredCustomerDate: "2018-01-08 00:00:00"},
		},
		{
			name: "both missing",
			raw:  domain.RawOrder{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := enrichOne(t, tt.raw)
			assert.Nil(t, order.DeltaDays)
			assert.Empty(t, order.DelayStatus)
		})
	}
}

func TestClassify_Boundaries(t *testing.T) {
	enricher := NewEnricher(3)

	tests := []struct {
		name  string
		delta *float64
		want  domain.DelayStatus
	}{
		{"missing delta", nil, ""},
		{"well early", ptr(-5.0), domain.DelayStatusOnTime},
		{"exactly zero", ptr(0.0), domain.DelayStatusOnTime},
		{"just late", ptr(0.0001), domain.DelayStatusShortDelay},
		{"exactly threshold", ptr(3.0), domain.DelayStatusShortDelay},
		{"just past threshold", ptr(3.0001), domain.DelayStatusLongDelay},
		{"well past threshold", ptr(12.0), domain.DelayStatusLongDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enricher.classify(tt.delta))
		})
	}
}

func TestEnrichOrders_DistancePassthrough(t *testing.T) {
	order := enrichOne(t, domain.RawOrder{DistanceDistributionCenter: "152.7"})
	require.NotNil(t, order.DistanceDistributionCenter)
	assert.InDelta(t, 152.7, *order.DistanceDistributionCenter, 1e-9)

	bad := enrichOne(t, domain.RawOrder{DistanceDistributionCenter: "n/a"})
	assert.Nil(t, bad.DistanceDistributionCenter)
}

func ptr[T any](v T) *T {
	return &v
}
