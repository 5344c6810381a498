package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bassista/go_unis/internal/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "GO_UNIS"

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Network NetworkConfig
	Store   StoreConfig
	Misc    MiscConfig
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutDownTimeout    time.Duration
	RequestTimeout     time.Duration
	CORSAllowedOrigins string
}

// APIConfig describes the remote universities API.
type APIConfig struct {
	Scheme  string
	Host    string
	Country string
}

// NetworkConfig drives the connectivity monitor.
type NetworkConfig struct {
	ProbeAddress  string
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
}

// StoreConfig selects the persistent store backing. Exactly one of Path and
// InMemoryIdentifier is used; the identifier wins when both are set.
type StoreConfig struct {
	Path               string
	InMemoryIdentifier string
}

type MiscConfig struct {
	LogLevel       string
	GinMode        string
	HoneybadgerKey string
	HoneybadgerEnv string
}

// LoadConfig reads config.yaml from configDir (or ./config when empty),
// applies .env and GO_UNIS_* environment overrides and validates the result.
func LoadConfig(configDir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.WithComponent("config").Warnf("cannot load .env file: %v", err)
	}

	if configDir == "" {
		configDir = getEnvOrDefault(envPrefix+"_CONFIG_DIR", "./config")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	setDefaults()

	// GO_UNIS_SERVER_PORT overrides server.port, and so on.
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
		logger.WithComponent("config").Info("no config file found, using defaults and env vars")
	}

	return build()
}

// Watch re-reads the config file whenever it changes and hands the new,
// validated configuration to onChange. Invalid edits are logged and skipped.
func Watch(onChange func(*Config)) bool {
	if viper.ConfigFileUsed() == "" {
		return false
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		cfg, err := build()
		if err != nil {
			logger.WithComponent("config").Errorf("ignoring invalid config change in %s: %v", e.Name, err)
			return
		}
		logger.WithComponent("config").Infof("config reloaded from %s", e.Name)
		onChange(cfg)
	})
	viper.WatchConfig()
	return true
}

func setDefaults() {
	viper.SetDefault("server.port", 8084)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.idle_timeout", 120*time.Second)
	viper.SetDefault("server.shutdown_timeout", 5*time.Second)
	viper.SetDefault("server.request_timeout", 20*time.Second)
	viper.SetDefault("server.cors_allowed_origins", "*")

	viper.SetDefault("api.scheme", "http")
	viper.SetDefault("api.host", "universities.hipolabs.com")
	viper.SetDefault("api.country", "United Arab Emirates")

	viper.SetDefault("network.probe_address", "universities.hipolabs.com:80")
	viper.SetDefault("network.probe_interval", 10*time.Second)
	viper.SetDefault("network.probe_timeout", 3*time.Second)

	viper.SetDefault("store.path", "./data/universities.db")
	viper.SetDefault("store.in_memory_identifier", "")

	viper.SetDefault("misc.log_level", "info")
	viper.SetDefault("misc.gin_mode", "release")
}

func build() (*Config, error) {
	port, err := getEnvOrViperPort("PORT", "server.port")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               port,
			ReadTimeout:        viper.GetDuration("server.read_timeout"),
			WriteTimeout:       viper.GetDuration("server.write_timeout"),
			IdleTimeout:        viper.GetDuration("server.idle_timeout"),
			ShutDownTimeout:    viper.GetDuration("server.shutdown_timeout"),
			RequestTimeout:     viper.GetDuration("server.request_timeout"),
			CORSAllowedOrigins: viper.GetString("server.cors_allowed_origins"),
		},
		API: APIConfig{
			Scheme:       viper.GetString("api.scheme"),
			Host:         viper.GetString("api.host"),
			Country:      viper.GetString("api.country"),
		},
		Network: NetworkConfig{
			ProbeAddress:  viper.GetString("network.probe_address"),
			ProbeInterval: viper.GetDuration("network.probe_interval"),
			ProbeTimeout:  viper.GetDuration("network.probe_timeout"),
		},
		Store: StoreConfig{
			Path:               viper.GetString("store.path"),
			InMemoryIdentifier: viper.GetString("store.in_memory_identifier"),
		},
		Misc: MiscConfig{
			LogLevel:       getEnvOrDefault("LOG_LEVEL", viper.GetString("misc.log_level")),
			GinMode:        viper.GetString("misc.gin_mode"),
			HoneybadgerKey: os.Getenv("HONEYBADGER_API_KEY"),
			HoneybadgerEnv: os.Getenv("GO_ENV"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return errors.New("server read, write and idle timeouts must be positive")
	}
	if c.Server.ShutDownTimeout <= 0 {
		return errors.New("server shutdown timeout must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("server request timeout must be positive")
	}

	if c.API.Scheme != "http" && c.API.Scheme != "https" {
		return fmt.Errorf("api scheme must be http or https, got %q", c.API.Scheme)
	}
	if c.API.Host == "" {
		return errors.New("api host is required")
	}
	if _, err := url.Parse(c.API.Scheme + "://" + c.API.Host); err != nil {
		return fmt.Errorf("invalid api host %q: %w", c.API.Host, err)
	}
	if strings.TrimSpace(c.API.Country) == "" {
		return errors.New("api country is required")
	}

	if _, _, err := net.SplitHostPort(c.Network.ProbeAddress); err != nil {
		return fmt.Errorf("invalid network probe address %q: %w", c.Network.ProbeAddress, err)
	}
	if c.Network.ProbeInterval <= 0 || c.Network.ProbeTimeout <= 0 {
		return errors.New("network probe interval and timeout must be positive")
	}

	if c.Store.Path == "" && c.Store.InMemoryIdentifier == "" {
		return errors.New("store path or in-memory identifier is required")
	}

	if c.Misc.LogLevel != "" {
		if _, err := logrus.ParseLevel(strings.ToLower(c.Misc.LogLevel)); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvOrViperPort(envKey, viperKey string) (int, error) {
	if value := os.Getenv(envKey); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", envKey, value, err)
		}
		return port, nil
	}
	return viper.GetInt(viperKey), nil
}
