package domain

import (
	"time"
)

// Order represents a marketplace order together with the temporal fields
// derived by the enrichment stage. The five lifecycle timestamps are
// pointers because an order may never have reached a given stage; nil
// always means "missing", never "zero time".
type Order struct {
	OrderID    string      `json:"order_id"`
	CustomerID string      `json:"customer_id"`
	Status     OrderStatus `json:"order_status"`

	PurchaseTimestamp     *time.Time `json:"order_purchase_timestamp,omitempty"`
	ApprovedAt            *time.Time `json:"order_approved_at,omitempty"`
	DeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date,omitempty"`
	DeliveredCustomerDate *time.Time `json:"order_delivered_customer_date,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date,omitempty"`

	// DistanceDistributionCenter is carried through from the raw orders
	// source when present; it is never computed here.
	DistanceDistributionCenter *float64 `json:"distance_distribution_center,omitempty"`

	// Fields below are derived from PurchaseTimestamp and the delivery
	// timestamps by the enrichment stage.
	Year        *int        `json:"year,omitempty"`
	Month       *int        `json:"month,omitempty"`
	Quarter     string      `json:"quarter,omitempty"`    // e.g. "2018Q1"
	YearMonth   string      `json:"year_month,omitempty"` // e.g. "2018-02"
	DeltaDays   *float64    `json:"delta_days,omitempty"`
	DelayStatus DelayStatus `json:"delay_status,omitempty"`
}

// RawOrder is an order row exactly as loaded from the orders source. The
// timestamp columns stay unparsed strings; the enrichment stage owns the
// conversion so that unparseable values can be coerced to missing in one
// place.
type RawOrder struct {
	OrderID                    string `json:"order_id"`
	CustomerID                 string `json:"customer_id"`
	Status                     string `json:"order_status"`
	PurchaseTimestamp          string `json:"order_purchase_timestamp"`
	ApprovedAt                 string `json:"order_approved_at"`
	DeliveredCarrierDate       string `json:"order_delivered_carrier_date"`
	DeliveredCustomerDate      string `json:"order_delivered_customer_date"`
	EstimatedDeliveryDate      string `json:"order_estimated_delivery_date"`
	DistanceDistributionCenter string `json:"distance_distribution_center,omitempty"`
}

// OrderStatus represents the fulfillment status reported by the marketplace
type OrderStatus string

const (
	OrderStatusCreated     OrderStatus = "created"
	OrderStatusApproved    OrderStatus = "approved"
	OrderStatusInvoiced    OrderStatus = "invoiced"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusCanceled    OrderStatus = "canceled"
	OrderStatusUnavailable OrderStatus = "unavailable"
)

// DelayStatus classifies the gap between the promised and the actual
// delivery date. The empty string means the gap could not be computed.
type DelayStatus string

const (
	DelayStatusOnTime     DelayStatus = "on_time"
	DelayStatusShortDelay DelayStatus = "short_delay"
	DelayStatusLongDelay  DelayStatus = "long_delay"
)

// OrderItem represents a single physical item inside an order. Each row is
// one item; there is no quantity column in the raw data.
type OrderItem struct {
	OrderID      string  `json:"order_id"`
	OrderItemID  int     `json:"order_item_id"`
	ProductID    string  `json:"product_id"`
	SellerID     string  `json:"seller_id"`
	Price        float64 `json:"price"`
	FreightValue float64 `json:"freight_value"`
}

// OrderItemAggregate is the per-order rollup of OrderItem rows. Orders
// without any item row have no aggregate at all; the consolidation join
// keeps that distinction instead of zero-filling.
type OrderItemAggregate struct {
	OrderID       string  `json:"order_id"`
	TotalProducts int     `json:"total_products"`
	TotalSales    float64 `json:"total_sales"`
}

// Payment represents one payment method applied to an order. Payments are
// loaded and schema-checked but only consumed by the reporting layer.
type Payment struct {
	OrderID      string  `json:"order_id"`
	Sequential   int     `json:"payment_sequential"`
	Type         string  `json:"payment_type"`
	Installments int     `json:"payment_installments"`
	Value        float64 `json:"payment_value"`
}
