// Package runtimeconfig loads the service configuration from TOML files,
// applies environment-specific overlays and validates the result.
package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv selects the configuration overlay (e.g. "production").
	EnvServiceEnv = "PORTFOLIO_ENV"

	// EnvHTTPAddr overrides the HTTP listen address.
	EnvHTTPAddr = "PORTFOLIO_HTTP_ADDR"

	// EnvDatabaseDSN overrides the database connection string.
	EnvDatabaseDSN = "PORTFOLIO_DATABASE_DSN"

	// EnvAdminToken overrides the admin bearer token.
	EnvAdminToken = "PORTFOLIO_ADMIN_TOKEN"
)

var ErrHTTPAddrRequired = errors.New("portfolio config: http listen address is required")
var ErrShutdownTimeoutInvalid = errors.New("portfolio config: shutdown timeout is invalid")
var ErrDatabaseDriverUnknown = errors.New("portfolio config: database driver is invalid")
var ErrDatabaseDSNRequired = errors.New("portfolio config: database dsn is required")
var ErrBlobDirRequired = errors.New("portfolio config: blob directory is required")
var ErrDefaultLanguageUnknown = errors.New("portfolio config: default language is invalid")
var ErrCacheTTLInvalid = errors.New("portfolio config: cache ttl is invalid")
var ErrLoggingProviderUnknown = errors.New("portfolio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("portfolio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portfolio config: logging format is invalid")

// Config aggregates runtime settings for the portfolio service.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Blobs    BlobConfig     `toml:"blobs"`
	Admin    AdminConfig    `toml:"admin"`
	Content  ContentConfig  `toml:"content"`
	Cache    CacheConfig    `toml:"cache"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ServerConfig captures the HTTP listener behaviour.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout.
func (c ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// DatabaseConfig selects the bun driver and its connection string.
type DatabaseConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// BlobConfig captures where uploaded media files live on disk and the public
// URL prefix they are served under.
type BlobConfig struct {
	Dir     string `toml:"dir"`
	BaseURL string `toml:"base_url"`
}

// AdminConfig guards the editing surface. An empty token disables admin routes.
type AdminConfig struct {
	Token string `toml:"token"`
}

// ContentConfig captures content defaults.
type ContentConfig struct {
	DefaultLanguage string `toml:"default_language"`
}

// CacheConfig toggles the repository read cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"`
}

// TTLDuration parses and returns the cache TTL.
func (c CacheConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `toml:"provider"`
	Level     string   `toml:"level"`
	Format    string   `toml:"format"`
	AddSource bool     `toml:"add_source"`
	Focus     []string `toml:"focus"`
}

// DefaultConfig returns the defaults used when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "15s",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "file:portfolio.db?_fk=1",
		},
		Blobs: BlobConfig{
			Dir:     "media",
			BaseURL: "/media",
		},
		Content: ContentConfig{
			DefaultLanguage: "fr",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     "1m",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Load reads the base configuration file, applies any environment overlay and
// environment variable overrides, and validates the result. A missing base
// file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = BaseConfigFile
	}

	cfg := DefaultConfig()
	if err := mergeFile(&cfg, path, false); err != nil {
		return Config{}, err
	}
	if overlay := overlayPath(path); overlay != "" {
		if err := mergeFile(&cfg, overlay, true); err != nil {
			return Config{}, err
		}
	}
	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrHTTPAddrRequired
	}
	if _, err := time.ParseDuration(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("%w: %s", ErrShutdownTimeoutInvalid, cfg.Server.ShutdownTimeout)
	}
	if !isSupportedDriver(cfg.Database.Driver) {
		return fmt.Errorf("%w: %s", ErrDatabaseDriverUnknown, cfg.Database.Driver)
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return ErrDatabaseDSNRequired
	}
	if strings.TrimSpace(cfg.Blobs.Dir) == "" {
		return ErrBlobDirRequired
	}
	if !isSupportedLanguage(cfg.Content.DefaultLanguage) {
		return fmt.Errorf("%w: %s", ErrDefaultLanguageUnknown, cfg.Content.DefaultLanguage)
	}
	if cfg.Cache.Enabled {
		if _, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			return fmt.Errorf("%w: %s", ErrCacheTTLInvalid, cfg.Cache.TTL)
		}
	}
	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func (cfg *Config) loadEnv() {
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv(EnvAdminToken); v != "" {
		cfg.Admin.Token = v
	}
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvServiceEnv)
	if env == "" {
		return ""
	}
	name := fmt.Sprintf(OverlayConfigPattern, env)
	if dir := strings.TrimSuffix(base, BaseConfigFile); dir != base {
		name = dir + name
	}
	if _, err := os.Stat(name); err != nil {
		return ""
	}
	return name
}

func isSupportedDriver(driver string) bool {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "postgres":
		return true
	default:
		return false
	}
}

func isSupportedLanguage(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "fr", "en":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
