package portfolio

import "github.com/carnelle/portfolio/internal/runtimeconfig"

var (
	ErrHTTPAddrRequired       = runtimeconfig.ErrHTTPAddrRequired
	ErrShutdownTimeoutInvalid = runtimeconfig.ErrShutdownTimeoutInvalid
	ErrDatabaseDriverUnknown  = runtimeconfig.ErrDatabaseDriverUnknown
	ErrDatabaseDSNRequired    = runtimeconfig.ErrDatabaseDSNRequired
	ErrBlobDirRequired        = runtimeconfig.ErrBlobDirRequired
	ErrDefaultLanguageUnknown = runtimeconfig.ErrDefaultLanguageUnknown
	ErrCacheTTLInvalid        = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	ServerConfig   = runtimeconfig.ServerConfig
	DatabaseConfig = runtimeconfig.DatabaseConfig
	BlobConfig     = runtimeconfig.BlobConfig
	AdminConfig    = runtimeconfig.AdminConfig
	ContentConfig  = runtimeconfig.ContentConfig
	CacheConfig    = runtimeconfig.CacheConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads, overlays and validates the configuration at path.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
