package gateway

import (
	"context"
	"fmt"
	"net/url"

	"vinyl-storefront/internal/infra"
	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/usecase/queries"
)

type userRow struct {
	ID              int64  `json:"id" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Role            string `json:"role" validate:"required"`
	Status          string `json:"status" validate:"required"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
}

// UserCreate is the write payload for registration and admin creation.
// The password travels to the backend, which owns credential storage.
type UserCreate struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	Phone           string `json:"phone,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
}

type UserPatch struct {
	Email           *string `json:"email,omitempty"`
	Name            *string `json:"name,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Role            *string `json:"role,omitempty"`
	Status          *string `json:"status,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	ShippingAddress *string `json:"shipping_address,omitempty"`
}

type UserGateway struct {
	api *rest.Client
}

func NewUserGateway(api *rest.Client) *UserGateway {
	return &UserGateway{api: api}
}

func (g *UserGateway) List(ctx context.Context) ([]*queries.UserView, error) {
	var rows []userRow
	if err := g.api.Get(ctx, "/user", &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to list users", err)
	}
	if err := checkRows("malformed user payload", rows); err != nil {
		return nil, err
	}

	users := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		users[i] = toUserView(row)
	}
	return users, nil
}

func (g *UserGateway) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	var row userRow
	if err := g.api.Get(ctx, fmt.Sprintf("/user/%d", id), &row); err != nil {
		return nil, infra.WrapBackendErr("failed to find user", err)
	}
	if err := checkRow("malformed user payload", row); err != nil {
		return nil, err
	}
	return toUserView(row), nil
}

// FindByEmail returns nil without error when no user carries the address.
func (g *UserGateway) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	var rows []userRow
	if err := g.api.Get(ctx, "/user?email="+url.QueryEscape(email), &rows); err != nil {
		return nil, infra.WrapBackendErr("failed to find user by email", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := checkRow("malformed user payload", rows[0]); err != nil {
		return nil, err
	}
	return toUserView(rows[0]), nil
}

func (g *UserGateway) Create(ctx context.Context, create UserCreate) (*queries.UserView, error) {
	var row userRow
	if err := g.api.Post(ctx, "/user", create, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to create user", err)
	}
	if err := checkRow("malformed user payload", row); err != nil {
		return nil, err
	}
	return toUserView(row), nil
}

func (g *UserGateway) Update(ctx context.Context, id int64, patch UserPatch) (*queries.UserView, error) {
	var row userRow
	if err := g.api.Patch(ctx, fmt.Sprintf("/user/%d", id), patch, &row); err != nil {
		return nil, infra.WrapBackendErr("failed to update user", err)
	}
	if err := checkRow("malformed user payload", row); err != nil {
		return nil, err
	}
	return toUserView(row), nil
}

func (g *UserGateway) Delete(ctx context.Context, id int64) error {
	if err := g.api.Delete(ctx, fmt.Sprintf("/user/%d", id)); err != nil {
		return infra.WrapBackendErr("failed to delete user", err)
	}
	return nil
}

func toUserView(row userRow) *queries.UserView {
	return &queries.UserView{
		ID:              row.ID,
		Email:           row.Email,
		Name:            row.Name,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Role:            row.Role,
		Status:          row.Status,
		Phone:           row.Phone,
		ShippingAddress: row.ShippingAddress,
	}
}
