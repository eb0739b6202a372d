package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: security settings (session secret)
// - default: everything else, with localhost fallbacks for local development
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Session   SessionConfig
	Cookie    CookieConfig
	Upstream  UpstreamConfig
	OAuth     OAuthConfig
	Maps      MapsConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Tracing   TracingConfig
}

// PublicURL is used to build OAuth redirect URLs and post-login redirects.
type ServerConfig struct {
	Port      string `envconfig:"PORT" default:"3000"`
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:3000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Upstream access tokens are assumed to live AccessTokenLifetime after issue or refresh.
type SessionConfig struct {
	Secret              string        `envconfig:"SESSION_SECRET" required:"true"`
	MaxAge              time.Duration `envconfig:"SESSION_MAX_AGE" default:"720h"`
	AccessTokenLifetime time.Duration `envconfig:"ACCESS_TOKEN_LIFETIME" default:"1h"`
	RefreshLookahead    time.Duration `envconfig:"REFRESH_LOOKAHEAD" default:"5m"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type UpstreamConfig struct {
	UserServiceURL       string        `envconfig:"USER_SERVICE_URL" default:"http://localhost:8000"`
	FacilitiesServiceURL string        `envconfig:"FACILITIES_SERVICE_URL" default:"http://localhost:8001"`
	BookingServiceURL    string        `envconfig:"BOOKING_SERVICE_URL" default:"http://localhost:8002"`
	APIVersion           string        `envconfig:"API_VERSION" default:"v1"`
	Timeout              time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	EnrichmentTimeout    time.Duration `envconfig:"UPSTREAM_ENRICHMENT_TIMEOUT" default:"5s"`
}

type OAuthConfig struct {
	GoogleClientID     string `envconfig:"AUTH_GOOGLE_ID" default:""`
	GoogleClientSecret string `envconfig:"AUTH_GOOGLE_SECRET" default:""`
}

type MapsConfig struct {
	GoogleMapsAPIKey string `envconfig:"GOOGLE_MAPS_API_KEY" default:""`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"AUTH_RATE_LIMIT_RPS" default:"5"`
	Burst int     `envconfig:"AUTH_RATE_LIMIT_BURST" default:"10"`
}

type TracingConfig struct {
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"courtmate-gateway"`
	Environment  string `envconfig:"ENV" default:"dev"`
}

// JoinURL joins a base URL and a path with exactly one slash between them.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func (o OAuthConfig) GoogleEnabled() bool {
	return o.GoogleClientID != "" && o.GoogleClientSecret != ""
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
			Port:      "8889", // Test port
			PublicURL: "http://localhost:8889",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Session: SessionConfig{
			Secret:              "test-session-secret",
			MaxAge:              24 * time.Hour,
			AccessTokenLifetime: time.Hour,
			RefreshLookahead:    5 * time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Upstream: UpstreamConfig{
			UserServiceURL:       "http://localhost:8000",
			FacilitiesServiceURL: "http://localhost:8001",
			BookingServiceURL:    "http://localhost:8002",
			APIVersion:           "v1",
			Timeout:              10 * time.Second,
			EnrichmentTimeout:    5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
		},
		Tracing: TracingConfig{
			ServiceName: "courtmate-gateway-test",
			Environment: "test",
		},
	}
}
