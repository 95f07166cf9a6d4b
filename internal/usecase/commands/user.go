package commands

import (
	"context"

	"vinyl-storefront/internal/domain/user"
	"vinyl-storefront/internal/infra/gateway"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/usecase/queries"
)

// UserWriter is the user write surface of the backend.
type UserWriter interface {
	FindByEmail(ctx context.Context, email string) (*queries.UserView, error)
	Create(ctx context.Context, create gateway.UserCreate) (*queries.UserView, error)
	Update(ctx context.Context, id int64, patch gateway.UserPatch) (*queries.UserView, error)
	Delete(ctx context.Context, id int64) error
}

// UserCommands is the admin write path for accounts.
type UserCommands struct {
	gw    UserWriter
	reads *queries.UserQueries
}

func NewUserCommands(gw UserWriter, reads *queries.UserQueries) *UserCommands {
	return &UserCommands{gw: gw, reads: reads}
}

type CreateUserInput struct {
	Email           string
	Password        string
	Name            string
	FirstName       string
	LastName        string
	Role            string
	Status          string
	Phone           string
	ShippingAddress string
}

func (c *UserCommands) Create(ctx context.Context, in CreateUserInput) (*queries.UserView, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, err
	}
	status, err := user.NewStatus(in.Status)
	if err != nil {
		return nil, err
	}

	existing, err := c.gw.FindByEmail(ctx, email.Value())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Mark(errs.Newf("email %s taken", email.Value()), ErrEmailTaken)
	}

	return c.gw.Create(ctx, gateway.UserCreate{
		Email:           email.Value(),
		Password:        password.Value(),
		Name:            in.Name,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Role:            role.String(),
		Status:          status.String(),
		Phone:           in.Phone,
		ShippingAddress: in.ShippingAddress,
	})
}

type UpdateUserInput struct {
	Email           *string
	Name            *string
	FirstName       *string
	LastName        *string
	Role            *string
	Status          *string
	Phone           *string
	ShippingAddress *string
}

func (c *UserCommands) Update(ctx context.Context, id int64, in UpdateUserInput) (*queries.UserView, error) {
	patch := gateway.UserPatch{
		Name:            in.Name,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Phone:           in.Phone,
		ShippingAddress: in.ShippingAddress,
	}
	if in.Email != nil {
		email, err := user.NewEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		normalized := email.Value()
		patch.Email = &normalized
	}
	if in.Role != nil {
		if _, err := user.NewRole(*in.Role); err != nil {
			return nil, err
		}
		patch.Role = in.Role
	}
	if in.Status != nil {
		if _, err := user.NewStatus(*in.Status); err != nil {
			return nil, err
		}
		patch.Status = in.Status
	}

	view, err := c.gw.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.reads.InvalidateUser(id)
	return view, nil
}

func (c *UserCommands) Delete(ctx context.Context, id int64) error {
	if err := c.gw.Delete(ctx, id); err != nil {
		return err
	}
	c.reads.InvalidateUser(id)
	return nil
}
