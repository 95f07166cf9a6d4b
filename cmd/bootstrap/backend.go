package bootstrap

import (
	"vinyl-storefront/internal/infra/gateway"
	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

// Gateways bundles every backend-facing gateway. They are constructed
// together because the user and auth services may live on separate base
// URLs from the commerce resources.
type Gateways struct {
	Vinyl *gateway.VinylGateway
	Cart  *gateway.CartGateway
	Order *gateway.OrderGateway
	User  *gateway.UserGateway
	Auth  *gateway.AuthGateway
}

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewGateways,
		func(g Gateways) *gateway.VinylGateway { return g.Vinyl },
		func(g Gateways) *gateway.CartGateway { return g.Cart },
		func(g Gateways) *gateway.OrderGateway { return g.Order },
		func(g Gateways) *gateway.UserGateway { return g.User },
		func(g Gateways) *gateway.AuthGateway { return g.Auth },
	),
)

func NewGateways(cfg config.Config) Gateways {
	commerce := rest.NewClient(cfg.Backend.CommerceURL)
	userAPI := rest.NewClient(cfg.Backend.ResolvedUserURL())
	authAPI := rest.NewClient(cfg.Backend.ResolvedAuthURL())

	return Gateways{
		Vinyl: gateway.NewVinylGateway(commerce),
		Cart:  gateway.NewCartGateway(commerce),
		Order: gateway.NewOrderGateway(commerce),
		User:  gateway.NewUserGateway(userAPI),
		Auth:  gateway.NewAuthGateway(authAPI),
	}
}
