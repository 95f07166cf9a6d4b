package components

import (
	"vinyl-storefront/internal/handler"
	"vinyl-storefront/internal/handler/api"
	"vinyl-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewAdminCatalogHandler,
		api.NewAdminUserHandler,
		api.NewAdminOrderHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	order *api.OrderHandler,
	adminCatalog *api.AdminCatalogHandler,
	adminUser *api.AdminUserHandler,
	adminOrder *api.AdminOrderHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Catalog:      catalog,
		Cart:         cart,
		Checkout:     checkout,
		Order:        order,
		AdminCatalog: adminCatalog,
		AdminUser:    adminUser,
		AdminOrder:   adminOrder,
	}
}
