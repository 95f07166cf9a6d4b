package response

import (
	"log/slog"

	"vinyl-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VinylResponse struct {
	ID       int64                `json:"id"`
	Name     string               `json:"name"`
	Category string               `json:"category"`
	Price    int64                `json:"price"`
	Stock    *int64               `json:"stock,omitempty"`
	Images   []VinylImageResponse `json:"images"`
}

type VinylImageResponse struct {
	URL string `json:"url"`
}

func FromVinylView(view *queries.VinylView) *VinylResponse {
	var resp VinylResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map vinyl view", "error", err)
		return &VinylResponse{}
	}
	return &resp
}

func FromVinylViews(views []*queries.VinylView) []*VinylResponse {
	out := make([]*VinylResponse, len(views))
	for i, view := range views {
		out[i] = FromVinylView(view)
	}
	return out
}
