package gateway

import (
	"context"
	"fmt"

	"vinyl-storefront/internal/infra"
	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/usecase/queries"
)

type cartRow struct {
	ID     int64 `json:"id" validate:"required"`
	UserID int64 `json:"user_id" validate:"required"`
}

type cartItemRow struct {
	ID       int64 `json:"id" validate:"required"`
	CartID   int64 `json:"cart_id" validate:"required"`
	VinylID  int64 `json:"vinyl_id" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

// CartGateway speaks to the cart and cart_item resources of the commerce
// backend.
type CartGateway struct {
	api *rest.Client
}

func NewCartGateway(api *rest.Client) *CartGateway {
	return &CartGateway{api: api}
}

func (g *CartGateway) FindByUser(ctx context.Context, userID int64) ([]*queries.CartView, error) {
	var rows []cartRow
	if err := g.api.Get(ctx, fmt.Sprintf("/cart?user_id=%d", userID), &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to list carts by user", err)
	}
	if err := checkRows("malformed cart payload", rows); err != nil {
		return nil, err
	}

	carts := make([]*queries.CartView, len(rows))
	for i, row := range rows {
		carts[i] = toCartView(row)
	}
	return carts, nil
}

func (g *CartGateway) Create(ctx context.Context, userID int64) (*queries.CartView, error) {
	var row cartRow
	if err := g.api.Post(ctx, "/cart", map[string]any{"user_id": userID}, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to create cart", err)
	}
	if err := checkRow("malformed cart payload", row); err != nil {
		return nil, err
	}
	return toCartView(row), nil
}

func (g *CartGateway) ListItems(ctx context.Context, cartID int64) ([]*queries.CartLineView, error) {
	var rows []cartItemRow
	if err := g.api.Get(ctx, fmt.Sprintf("/cart_item?cart_id=%d", cartID), &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to list cart items", err)
	}
	if err := checkRows("malformed cart item payload", rows); err != nil {
		return nil, err
	}

	lines := make([]*queries.CartLineView, len(rows))
	for i, row := range rows {
		lines[i] = toCartLineView(row)
	}
	return lines, nil
}

func (g *CartGateway) CreateItem(ctx context.Context, cartID, vinylID int64, quantity int) (*queries.CartLineView, error) {
	payload := map[string]any{
		"cart_id":  cartID,
		"vinyl_id": vinylID,
		"quantity": quantity,
	}
	var row cartItemRow
	if err := g.api.Post(ctx, "/cart_item", payload, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to create cart item", err)
	}
	if err := checkRow("malformed cart item payload", row); err != nil {
		return nil, err
	}
	return toCartLineView(row), nil
}

// UpdateItemQuantity patches the full (cart_id, vinyl_id, quantity) triple;
// the backend treats partial cart_item patches inconsistently, so the
// complete shape is always sent.
func (g *CartGateway) UpdateItemQuantity(ctx context.Context, itemID, cartID, vinylID int64, quantity int) (*queries.CartLineView, error) {
	payload := map[string]any{
		"cart_id":  cartID,
		"vinyl_id": vinylID,
		"quantity": quantity,
	}
	var row cartItemRow
	if err := g.api.Patch(ctx, fmt.Sprintf("/cart_item/%d", itemID), payload, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to update cart item", err)
	}
	if err := checkRow("malformed cart item payload", row); err != nil {
		return nil, err
	}
	return toCartLineView(row), nil
}

func (g *CartGateway) DeleteItem(ctx context.Context, itemID int64) error {
	if err := g.api.Delete(ctx, fmt.Sprintf("/cart_item/%d", itemID)); err != nil {
		return infra.WrapBackendErr("failed to delete cart item", err)
	}
	return nil
}

func toCartView(row cartRow) *queries.CartView {
	return &queries.CartView{
		ID:     row.ID,
		UserID: row.UserID,
	}
}

func toCartLineView(row cartItemRow) *queries.CartLineView {
	return &queries.CartLineView{
		ID:       row.ID,
		CartID:   row.CartID,
		VinylID:  row.VinylID,
		Quantity: row.Quantity,
	}
}
