// Package config loads server configuration from an optional YAML file,
// .env files and PROPLEDGER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// ServerConfig holds transport settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	TLSCert         string        `mapstructure:"tls_cert"`
	TLSKey          string        `mapstructure:"tls_key"`
	Dev             bool          `mapstructure:"dev"` // plaintext gRPC
	MetricsAddr     string        `mapstructure:"metrics_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig selects and configures the ownership store.
type DatabaseConfig struct {
	DSN          string        `mapstructure:"dsn"`
	Store        string        `mapstructure:"store"`
	StoreTimeout time.Duration `mapstructure:"store_timeout"`
}

// AuthConfig holds the bearer token verification key.
type AuthConfig struct {
	JWTKey string `mapstructure:"jwt_key"`
}

// LedgerConfig is passed to the state machine at construction.
type LedgerConfig struct {
	Network           string `mapstructure:"network"`
	FrontendURL       string `mapstructure:"frontend_url"`
	MaxCommitAttempts int    `mapstructure:"max_commit_attempts"`
}

// CloudflareConfig enables Cloudflare Images for property images when set.
type CloudflareConfig struct {
	AccountID string `mapstructure:"account_id"`
	APIToken  string `mapstructure:"api_token"`
}

// MediaConfig configures the local file store for documents.
type MediaConfig struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"base_url"`
}

// NATSConfig enables event publishing when URL is set.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
}

// LogConfig configures zap and Sentry.
type LogConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// Config is the full server configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Cloudflare CloudflareConfig `mapstructure:"cloudflare"`
	Media      MediaConfig      `mapstructure:"media"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Log        LogConfig        `mapstructure:"log"`
}

var keys = []string{
	"server.addr", "server.tls_cert", "server.tls_key", "server.dev", "server.metrics_addr", "server.shutdown_timeout",
	"database.dsn", "database.store", "database.store_timeout",
	"auth.jwt_key",
	"ledger.network", "ledger.frontend_url", "ledger.max_commit_attempts",
	"cloudflare.account_id", "cloudflare.api_token",
	"media.dir", "media.base_url",
	"nats.url", "nats.stream_name", "nats.connection_name", "nats.max_reconnects", "nats.reconnect_wait",
	"log.debug", "log.sentry_dsn", "log.environment",
}

// Load reads configFile (optional; config.yaml is searched when empty),
// then .env files under envPath, then environment variables.
func Load(configFile, envPath string) (*Config, error) {
	loadEnv(envPath)

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config/")
	}
	v.SetEnvPrefix("PROPLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("server.addr", ":8443")
	v.SetDefault("server.metrics_addr", ":9090")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.store", StorePostgres)
	v.SetDefault("database.store_timeout", "5s")
	v.SetDefault("ledger.network", "polygon-mumbai")
	v.SetDefault("ledger.max_commit_attempts", 3)
	v.SetDefault("media.dir", "./media")
	v.SetDefault("media.base_url", "http://localhost:9090/media")
	v.SetDefault("nats.stream_name", "PROPERTIES")
	v.SetDefault("nats.connection_name", "propledger")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports missing or inconsistent settings.
func (c *Config) Validate() error {
	if c.Auth.JWTKey == "" {
		return errors.New("config: auth.jwt_key is required")
	}
	switch c.Database.Store {
	case StorePostgres:
		if c.Database.DSN == "" {
			return errors.New("config: database.dsn is required for the postgres store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("config: unknown database.store %q", c.Database.Store)
	}
	if c.Ledger.MaxCommitAttempts < 1 {
		return errors.New("config: ledger.max_commit_attempts must be >= 1")
	}
	if !c.Server.Dev && (c.Server.TLSCert == "" || c.Server.TLSKey == "") {
		return errors.New("config: server.tls_cert and server.tls_key are required unless server.dev is set")
	}
	return nil
}

// loadEnv applies .env then .env.local from envPath; later files win.
func loadEnv(envPath string) {
	for _, name := range []string{".env", ".env.local"} {
		_ = godotenv.Overload(filepath.Join(envPath, name))
	}
}
