package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vinyl-storefront/internal/domain/user"
	"vinyl-storefront/internal/handler/api"
	"vinyl-storefront/internal/handler/middleware"
	"vinyl-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Catalog      *api.CatalogHandler
	Cart         *api.CartHandler
	Checkout     *api.CheckoutHandler
	Order        *api.OrderHandler
	AdminCatalog *api.AdminCatalogHandler
	AdminUser    *api.AdminUserHandler
	AdminOrder   *api.AdminOrderHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		vinyls := apiGroup.Group("/vinyls")
		{
			addRoutes(vinyls, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.Get},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.ChangeItem},
				{Method: http.MethodDelete, Path: "/items/:vinyl_id", Handler: h.Cart.RemoveItem},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.Checkout},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/vinyls", Handler: h.AdminCatalog.Create},
				{Method: http.MethodPatch, Path: "/vinyls/:id", Handler: h.AdminCatalog.Update},
				{Method: http.MethodPut, Path: "/vinyls/:id", Handler: h.AdminCatalog.UpdateWithImage},
				{Method: http.MethodDelete, Path: "/vinyls/:id", Handler: h.AdminCatalog.Delete},

				{Method: http.MethodGet, Path: "/users", Handler: h.AdminUser.List},
				{Method: http.MethodGet, Path: "/users/:id", Handler: h.AdminUser.Get},
				{Method: http.MethodPost, Path: "/users", Handler: h.AdminUser.Create},
				{Method: http.MethodPatch, Path: "/users/:id", Handler: h.AdminUser.Update},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.AdminUser.Delete},

				{Method: http.MethodGet, Path: "/orders", Handler: h.AdminOrder.List},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.AdminOrder.Get},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.AdminOrder.UpdateStatus},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
