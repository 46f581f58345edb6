package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe default
// - default: Values common across all environments (timeouts, formats, etc.)
// The client works with defaults only; the dev server reads the same struct.
// -----------------------------------------------------------------------------

type Config struct {
	API       APIConfig
	Store     StoreConfig
	Log       LogConfig
	Tracing   TracingConfig
	Booking   BookingConfig
	DevServer DevServerConfig
	CORS      CORSConfig
	JWT       JWTConfig
}

type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8080/api/"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	// 401 on these prefixes never tears the session down
	SoftAuthPaths []string `envconfig:"API_SOFT_AUTH_PATHS" default:"/clubs,/courts"`
}

type StoreConfig struct {
	// empty means <user config dir>/courtbook/credentials.json
	Path string `envconfig:"CREDENTIALS_PATH"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"warn"`
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"courtbook"`
	Environment string `envconfig:"ENV" default:"dev"`
}

type BookingConfig struct {
	LatestEnd       string        `envconfig:"BOOKING_LATEST_END" default:"22:30"`
	DefaultDuration time.Duration `envconfig:"BOOKING_DEFAULT_DURATION" default:"1h"`
}

type DevServerConfig struct {
	Port string `envconfig:"DEVSERVER_PORT" default:"8080"`

	// club and court reads require a bearer token, like a misconfigured gateway
	StrictPublic bool   `envconfig:"DEVSERVER_STRICT_PUBLIC" default:"false"`
	Seed         bool   `envconfig:"DEVSERVER_SEED" default:"true"`
	LogLevel     string `envconfig:"DEVSERVER_LOG_LEVEL" default:"info"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" default:"courtbook-dev-secret"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func LoadConfig() (Config, error) {
	loadDotEnv()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// .env is optional; a missing file is not an error.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err.Error())
	}
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:       "http://127.0.0.1:18080/api/",
			Timeout:       2 * time.Second,
			SoftAuthPaths: []string{"/clubs", "/courts"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Booking: BookingConfig{
			LatestEnd:       "22:30",
			DefaultDuration: time.Hour,
		},
		DevServer: DevServerConfig{
			Port: "18080",
			Seed: true,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"},
			MaxAge:       time.Hour,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
	}
}
