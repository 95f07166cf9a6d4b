package components

import (
	"vinyl-storefront/internal/pkg/cache"
	"vinyl-storefront/internal/pkg/clock"
	"vinyl-storefront/internal/pkg/config"
	"vinyl-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

// One cache instance per resource family, each with the TTL its staleness
// tolerance allows. The cart cache is the shortest lived; it is also the
// one invalidated on every write.
var CacheModule = fx.Module("cache",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config, clk clock.Clock) *cache.Cache[[]*queries.VinylView] {
			return cache.New[[]*queries.VinylView](cfg.Cache.VinylTTL, clk)
		},
		func(cfg config.Config, clk clock.Clock) *cache.Cache[*queries.VinylView] {
			return cache.New[*queries.VinylView](cfg.Cache.VinylTTL, clk)
		},
		func(cfg config.Config, clk clock.Clock) *cache.Cache[[]*queries.CartLineView] {
			return cache.New[[]*queries.CartLineView](cfg.Cache.CartTTL, clk)
		},
		func(cfg config.Config, clk clock.Clock) *cache.Cache[*queries.CartView] {
			return cache.New[*queries.CartView](cfg.Cache.CartTTL, clk)
		},
		func(cfg config.Config, clk clock.Clock) *cache.Cache[*queries.UserView] {
			return cache.New[*queries.UserView](cfg.Cache.UserTTL, clk)
		},
	),
)
