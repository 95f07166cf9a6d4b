package gateway

import (
	"context"
	"fmt"
	"time"

	"vinyl-storefront/internal/infra"
	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/usecase/queries"
)

type orderRow struct {
	ID        int64     `json:"id" validate:"required"`
	UserID    int64     `json:"user_id" validate:"required"`
	Status    string    `json:"status" validate:"required"`
	Total     int64     `json:"total" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at"`
}

type orderItemRow struct {
	ID              int64 `json:"id" validate:"required"`
	OrderID         int64 `json:"order_id" validate:"required"`
	VinylID         int64 `json:"vinyl_id" validate:"required"`
	Quantity        int   `json:"quantity" validate:"required,min=1"`
	PriceAtPurchase int64 `json:"price_at_purchase" validate:"gte=0"`
}

// OrderLineCreate is one line of a batch order_item insert.
type OrderLineCreate struct {
	OrderID         int64 `json:"order_id"`
	VinylID         int64 `json:"vinyl_id"`
	Quantity        int   `json:"quantity"`
	PriceAtPurchase int64 `json:"price_at_purchase"`
}

type OrderGateway struct {
	api *rest.Client
}

func NewOrderGateway(api *rest.Client) *OrderGateway {
	return &OrderGateway{api: api}
}

func (g *OrderGateway) Create(ctx context.Context, userID int64, status string, total int64) (*queries.OrderView, error) {
	payload := map[string]any{
		"user_id": userID,
		"status":  status,
		"total":   total,
	}
	var row orderRow
	if err := g.api.Post(ctx, "/order", payload, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to create order", err)
	}
	if err := checkRow("malformed order payload", row); err != nil {
		return nil, err
	}
	return toOrderView(row), nil
}

func (g *OrderGateway) UpdateStatus(ctx context.Context, orderID int64, status string) (*queries.OrderView, error) {
	var row orderRow
	if err := g.api.Patch(ctx, fmt.Sprintf("/order/%d", orderID), map[string]any{"status": status}, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to update order status", err)
	}
	if err := checkRow("malformed order payload", row); err != nil {
		return nil, err
	}
	return toOrderView(row), nil
}

func (g *OrderGateway) FindByID(ctx context.Context, orderID int64) (*queries.OrderView, error) {
	var row orderRow
	if err := g.api.Get(ctx, fmt.Sprintf("/order/%d", orderID), &row); err != nil {
		return nil, infra.WrapBackendErr("failed to find order", err)
	}
	if err := checkRow("malformed order payload", row); err != nil {
		return nil, err
	}
	return toOrderView(row), nil
}

func (g *OrderGateway) List(ctx context.Context) ([]*queries.OrderView, error) {
	return g.list(ctx, "/order")
}

func (g *OrderGateway) ListByUser(ctx context.Context, userID int64) ([]*queries.OrderView, error) {
	return g.list(ctx, fmt.Sprintf("/order?user_id=%d", userID))
}

func (g *OrderGateway) list(ctx context.Context, path string) ([]*queries.OrderView, error) {
	var rows []orderRow
	if err := g.api.Get(ctx, path, &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to list orders", err)
	}
	if err := checkRows("malformed order payload", rows); err != nil {
		return nil, err
	}

	orders := make([]*queries.OrderView, len(rows))
	for i, row := range rows {
		orders[i] = toOrderView(row)
	}
	return orders, nil
}

// CreateItems inserts all lines of an order in a single batch request.
func (g *OrderGateway) CreateItems(ctx context.Context, lines []OrderLineCreate) ([]*queries.OrderLineView, error) {
	var rows []orderItemRow
	if err := g.api.Post(ctx, "/order_item", lines, &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to create order items", err)
	}
	if err := checkRows("malformed order item payload", rows); err != nil {
		return nil, err
	}

	views := make([]*queries.OrderLineView, len(rows))
	for i, row := range rows {
		views[i] = toOrderLineView(row)
	}
	return views, nil
}

func (g *OrderGateway) ListItems(ctx context.Context, orderID int64) ([]*queries.OrderLineView, error) {
	var rows []orderItemRow
	if err := g.api.Get(ctx, fmt.Sprintf("/order_item?order_id=%d", orderID), &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to list order items", err)
	}
	if err := checkRows("malformed order item payload", rows); err != nil {
		return nil, err
	}

	views := make([]*queries.OrderLineView, len(rows))
	for i, row := range rows {
		views[i] = toOrderLineView(row)
	}
	return views, nil
}

func toOrderView(row orderRow) *queries.OrderView {
	return &queries.OrderView{
		ID:        row.ID,
		UserID:    row.UserID,
		Status:    row.Status,
		Total:     row.Total,
		CreatedAt: row.CreatedAt,
	}
}

func toOrderLineView(row orderItemRow) *queries.OrderLineView {
	return &queries.OrderLineView{
		ID:              row.ID,
		OrderID:         row.OrderID,
		VinylID:         row.VinylID,
		Quantity:        row.Quantity,
		PriceAtPurchase: row.PriceAtPurchase,
	}
}
