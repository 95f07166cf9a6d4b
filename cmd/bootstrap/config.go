package bootstrap

import (
	"log/slog"

	"vinyl-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

func logConfig(cfg config.Config) {
	slog.Info("configuration loaded",
		"backend", cfg.Backend.CommerceURL,
		"guest_user_id", cfg.Guest.UserID,
	)
}
