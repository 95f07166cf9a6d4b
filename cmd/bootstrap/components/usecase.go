package components

import (
	"vinyl-storefront/internal/infra/gateway"
	"vinyl-storefront/internal/usecase/commands"
	"vinyl-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseGatewayBindings,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

// The gateways satisfy the narrow interfaces each usecase declares.
var usecaseGatewayBindings = fx.Provide(
	fx.Annotate(
		func(g *gateway.VinylGateway) *gateway.VinylGateway { return g },
		fx.As(new(queries.VinylReader)),
		fx.As(new(commands.CatalogWriter)),
	),
	fx.Annotate(
		func(g *gateway.CartGateway) *gateway.CartGateway { return g },
		fx.As(new(queries.CartLineReader)),
		fx.As(new(commands.CartWriter)),
	),
	fx.Annotate(
		func(g *gateway.OrderGateway) *gateway.OrderGateway { return g },
		fx.As(new(queries.OrderReader)),
		fx.As(new(commands.OrderWriter)),
		fx.As(new(commands.OrderStatusWriter)),
	),
	fx.Annotate(
		func(g *gateway.UserGateway) *gateway.UserGateway { return g },
		fx.As(new(queries.UserReader)),
		fx.As(new(commands.UserWriter)),
		fx.As(new(commands.UserRegistrar)),
	),
	fx.Annotate(
		func(g *gateway.AuthGateway) *gateway.AuthGateway { return g },
		fx.As(new(commands.CredentialVerifier)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVinylQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewCatalogCommands,
		commands.NewUserCommands,
		commands.NewOrderCommands,
	),
)
