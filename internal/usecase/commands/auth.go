package commands

import (
	"context"

	"vinyl-storefront/internal/domain/user"
	"vinyl-storefront/internal/infra/gateway"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/pkg/jwt"
	"vinyl-storefront/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountInactive    = errs.New("account is inactive")
	ErrEmailTaken         = errs.New("email is already registered")
)

// CredentialVerifier checks a credential pair against the backend.
type CredentialVerifier interface {
	Login(ctx context.Context, email, password string) (*queries.UserView, error)
}

// UserRegistrar is the slice of the user gateway registration needs.
type UserRegistrar interface {
	FindByEmail(ctx context.Context, email string) (*queries.UserView, error)
	Create(ctx context.Context, create gateway.UserCreate) (*queries.UserView, error)
}

// TokenPair is the session material set as cookies on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands struct {
	auth  CredentialVerifier
	users UserRegistrar
	jwt   *jwt.Service
}

func NewAuthCommands(auth CredentialVerifier, users UserRegistrar, jwtSvc *jwt.Service) *AuthCommands {
	return &AuthCommands{auth: auth, users: users, jwt: jwtSvc}
}

// Login verifies credentials against the backend and mints a local token
// pair. Backend rejections collapse into ErrInvalidCredentials so callers
// cannot distinguish an unknown email from a wrong password.
func (c *AuthCommands) Login(ctx context.Context, rawEmail, rawPassword string) (*queries.UserView, *TokenPair, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, err := c.auth.Login(ctx, email.Value(), rawPassword)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !view.IsActive() {
		return nil, nil, errs.Mark(errs.Newf("user %d is not active", view.ID), ErrAccountInactive)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, err
	}
	pair, err := c.issueTokens(view.ID, role)
	if err != nil {
		return nil, nil, err
	}
	return view, pair, nil
}

// RegisterInput carries the self-service signup fields. Role and status
// are never client-controlled; registration always produces an active
// customer.
type RegisterInput struct {
	Email           string
	Password        string
	Name            string
	FirstName       string
	LastName        string
	Phone           string
	ShippingAddress string
}

func (c *AuthCommands) Register(ctx context.Context, in RegisterInput) (*queries.UserView, *TokenPair, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, nil, err
	}
	password, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	existing, err := c.users.FindByEmail(ctx, email.Value())
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, errs.Mark(errs.Newf("email %s taken", email.Value()), ErrEmailTaken)
	}

	view, err := c.users.Create(ctx, gateway.UserCreate{
		Email:           email.Value(),
		Password:        password.Value(),
		Name:            in.Name,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Role:            user.RoleCustomer.String(),
		Status:          user.StatusActive.String(),
		Phone:           in.Phone,
		ShippingAddress: in.ShippingAddress,
	})
	if err != nil {
		return nil, nil, err
	}

	pair, err := c.issueTokens(view.ID, user.RoleCustomer)
	if err != nil {
		return nil, nil, err
	}
	return view, pair, nil
}

func (c *AuthCommands) issueTokens(userID int64, role user.Role) (*TokenPair, error) {
	access, err := c.jwt.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := c.jwt.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new pair.
func (c *AuthCommands) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := c.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, jwt.ErrInvalidToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}
	return c.issueTokens(claims.UserID, role)
}
