package response

import (
	"log/slog"

	"vinyl-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	Phone           string `json:"phone,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map user view", "error", err)
		return &UserResponse{}
	}
	return &resp
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(views))
	for i, view := range views {
		out[i] = FromUserView(view)
	}
	return out
}
