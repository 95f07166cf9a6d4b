package response

import (
	"vinyl-storefront/internal/usecase/queries"
)

type CartLineResponse struct {
	ID       int64 `json:"id"`
	CartID   int64 `json:"cart_id"`
	VinylID  int64 `json:"vinyl_id"`
	Quantity int   `json:"quantity"`
	Removed  bool  `json:"removed,omitempty"`
}

type CartLineDetailResponse struct {
	CartLineResponse
	Vinyl    *VinylResponse `json:"vinyl,omitempty"`
	Subtotal int64          `json:"subtotal"`
}

type CartSummaryResponse struct {
	CartID int64                     `json:"cart_id"`
	Lines  []*CartLineDetailResponse `json:"lines"`
	Total  int64                     `json:"total"`
}

func FromCartLineView(view *queries.CartLineView) *CartLineResponse {
	return &CartLineResponse{
		ID:       view.ID,
		CartID:   view.CartID,
		VinylID:  view.VinylID,
		Quantity: view.Quantity,
		Removed:  view.Removed,
	}
}

func FromCartSummaryView(view *queries.CartSummaryView) *CartSummaryResponse {
	resp := &CartSummaryResponse{
		CartID: view.Cart.ID,
		Lines:  make([]*CartLineDetailResponse, len(view.Lines)),
		Total:  view.Total,
	}
	for i, line := range view.Lines {
		detail := &CartLineDetailResponse{
			CartLineResponse: *FromCartLineView(&line.CartLineView),
			Subtotal:         line.Subtotal,
		}
		if line.Vinyl != nil {
			detail.Vinyl = FromVinylView(line.Vinyl)
		}
		resp.Lines[i] = detail
	}
	return resp
}
