package gateway

import (
	"context"

	"vinyl-storefront/internal/infra"
	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/usecase/queries"
)

type loginResultRow struct {
	User userRow `json:"user" validate:"required"`
}

// AuthGateway delegates credential verification to the auth endpoint of
// the backend. Passwords never transit anywhere else in this service.
type AuthGateway struct {
	api *rest.Client
}

func NewAuthGateway(api *rest.Client) *AuthGateway {
	return &AuthGateway{api: api}
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (*queries.UserView, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	var row loginResultRow
	if err := g.api.Post(ctx, "/auth/login", payload, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to log in", err)
	}
	if err := checkRow("malformed login payload", row.User); err != nil {
		return nil, err
	}
	return toUserView(row.User), nil
}
