package response

import (
	"log/slog"
	"time"

	"vinyl-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Status    string    `json:"status"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderLineResponse struct {
	ID              int64 `json:"id"`
	OrderID         int64 `json:"order_id"`
	VinylID         int64 `json:"vinyl_id"`
	Quantity        int   `json:"quantity"`
	PriceAtPurchase int64 `json:"price_at_purchase"`
}

type OrderDetailResponse struct {
	Order *OrderResponse       `json:"order"`
	Lines []*OrderLineResponse `json:"lines"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map order view", "error", err)
		return &OrderResponse{}
	}
	return &resp
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, len(views))
	for i, view := range views {
		out[i] = FromOrderView(view)
	}
	return out
}

func FromOrderDetailView(view *queries.OrderDetailView) *OrderDetailResponse {
	resp := &OrderDetailResponse{
		Order: FromOrderView(view.Order),
		Lines: make([]*OrderLineResponse, len(view.Lines)),
	}
	for i, line := range view.Lines {
		var lr OrderLineResponse
		if err := copier.Copy(&lr, line); err != nil {
			slog.Error("failed to map order line view", "error", err)
		}
		resp.Lines[i] = &lr
	}
	return resp
}
