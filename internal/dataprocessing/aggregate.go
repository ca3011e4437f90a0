package dataprocessing

import (
	"context"
	"log/slog"

	"oilstcli/internal/infrastructure"
	"oilstcli/pkg/contracts/domain"
)

// AggregateItems rolls the raw item rows up to one aggregate per order:
// total_products counts the item rows (each row is one physical item) and
// total_sales sums their prices. Orders without item rows are simply absent
// from the result, which lets the join distinguish "no items recorded"
// from "zero-priced items".
func AggregateItems(ctx context.Context, items []domain.OrderItem) map[string]domain.OrderItemAggregate {
	aggregates := make(map[string]domain.OrderItemAggregate)

	for _, item := range items {
		agg := aggregates[item.OrderID]
		agg.OrderID = item.OrderID
		agg.TotalProducts++
		agg.TotalSales += item.Price
		aggregates[item.OrderID] = agg
	}

	infrastructure.LoggerFromContext(ctx).InfoContext(ctx, "aggregated order items",
		slog.Int("item_rows", len(items)),
		slog.Int("orders_with_items", len(aggregates)))

	return aggregates
}
