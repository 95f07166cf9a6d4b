package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URLs,
//   secrets), security settings
// - default: Values common across all environments (cache TTLs, timeouts,
//   timezone), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Cache   CacheConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Guest   GuestConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig holds the base URLs of the hosted REST backend. The user
// and auth services may be hosted separately; when unset they fall back to
// the commerce URL.
type BackendConfig struct {
	CommerceURL string `envconfig:"API_BASE_URL" required:"true"`
	UserURL     string `envconfig:"API_USER_URL" default:""`
	AuthURL     string `envconfig:"API_AUTH_URL" default:""`
}

func (c *BackendConfig) ResolvedUserURL() string {
	if c.UserURL != "" {
		return c.UserURL
	}
	return c.CommerceURL
}

func (c *BackendConfig) ResolvedAuthURL() string {
	if c.AuthURL != "" {
		return c.AuthURL
	}
	return c.ResolvedUserURL()
}

type CacheConfig struct {
	VinylTTL time.Duration `envconfig:"VINYL_CACHE_TTL" default:"3m"`
	UserTTL  time.Duration `envconfig:"USER_CACHE_TTL" default:"3m"`
	CartTTL  time.Duration `envconfig:"CART_CACHE_TTL" default:"2m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Santiago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// GuestConfig names the backend user row that owns anonymous carts. The
// backend requires every cart to reference a user id, so guest sessions
// share one well-known identity.
type GuestConfig struct {
	UserID int64 `envconfig:"GUEST_USER_ID" required:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			CommerceURL: "http://localhost:18080",
		},
		Cache: CacheConfig{
			VinylTTL: 3 * time.Minute,
			UserTTL:  3 * time.Minute,
			CartTTL:  2 * time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Santiago",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -14400,
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
		Guest: GuestConfig{
			UserID: 2,
		},
	}
}
