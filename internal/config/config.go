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

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// NATSConfig holds NATS configuration for the push event stream
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	Subject        string        `mapstructure:"subject"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// BackendsConfig holds the base URLs of the remote notification services
type BackendsConfig struct {
	AuthURL          string        `mapstructure:"auth_url"`
	UserStorageURL   string        `mapstructure:"user_storage_url"`
	PushURL          string        `mapstructure:"push_url"`
	TriggerURL       string        `mapstructure:"trigger_url"`
	AnnouncementsURL string        `mapstructure:"announcements_url"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
}

// WalletConfig holds the local wallet identity used towards the backends
type WalletConfig struct {
	Identifier        string `mapstructure:"identifier"`
	APIKey            string `mapstructure:"api_key"`
	RegistrationToken string `mapstructure:"registration_token"` // push platform device token
}

// KeystoreConfig holds the go-ethereum keystore directory configuration
type KeystoreConfig struct {
	Path string `mapstructure:"path"`
}

// StoreConfig holds local state persistence configuration
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// ServiceConfig holds configuration for the notifyd daemon
type ServiceConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Server        ServerConfig   `mapstructure:"server"`
	NATS          NATSConfig     `mapstructure:"nats"`
	Backends      BackendsConfig `mapstructure:"backends"`
	Wallet        WalletConfig   `mapstructure:"wallet"`
	Keystore      KeystoreConfig `mapstructure:"keystore"`
	Store         StoreConfig    `mapstructure:"store"`
	FetchInterval time.Duration  `mapstructure:"fetch_interval"`
}

// LoadServiceConfig loads configuration for the notifyd daemon
func LoadServiceConfig(configFile string, envPath string) (*ServiceConfig, error) {
	v := configureViper("notifyd", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8374)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("nats.subject", "wallet.notifications.push")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "notifyd")
	v.SetDefault("backends.http_timeout", "30s")
	v.SetDefault("store.path", "notifyd.db")
	v.SetDefault("fetch_interval", "5m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg ServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Keystore.Path == "" {
		return nil, errors.New("keystore.path is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("NOTIFYD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"fetch_interval",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// NATS
		"nats.url",
		"nats.subject",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Backends
		"backends.auth_url",
		"backends.user_storage_url",
		"backends.push_url",
		"backends.trigger_url",
		"backends.announcements_url",
		"backends.http_timeout",
		// Wallet
		"wallet.identifier",
		"wallet.api_key",
		"wallet.registration_token",
		// Keystore
		"keystore.path",
		// Store
		"store.path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}
