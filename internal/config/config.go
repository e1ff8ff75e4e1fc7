package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config holds all configuration options for the task viewer
type Config struct {
	Storage     StorageConfig
	Remote      RemoteConfig
	Display     DisplayConfig
	Server      ServerConfig
	Application ApplicationConfig
}

// StorageConfig holds configuration for the local override store
type StorageConfig struct {
	Backend        string        `env:"TV_STORE_BACKEND"`
	Dir            string        `env:"TV_STORE_DIR"`
	DBFilename     string        `env:"TV_STORE_DB_FILENAME"`
	JSONFilename   string        `env:"TV_STORE_JSON_FILENAME"`
	QueryTimeout   time.Duration `env:"TV_STORE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TV_STORE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TV_STORE_DIR_PERMISSIONS"`
}

// RemoteConfig holds configuration for the remote task source
type RemoteConfig struct {
	BaseURL  string        `env:"TV_REMOTE_BASE_URL"`
	Limit    int           `env:"TV_REMOTE_LIMIT"`
	Timeout  time.Duration `env:"TV_REMOTE_TIMEOUT"`
	CacheTTL time.Duration `env:"TV_REMOTE_CACHE_TTL"`
}

// DisplayConfig holds list presentation configuration
type DisplayConfig struct {
	PageSize   int `env:"TV_DISPLAY_PAGE_SIZE"`
	PageWindow int `env:"TV_DISPLAY_PAGE_WINDOW"`
}

// ServerConfig holds web front-end configuration
type ServerConfig struct {
	Addr string `env:"TV_SERVER_ADDR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TV_APP_TIMEOUT"`
	Verbose bool          `env:"TV_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            filepath.Join(homeDir, ".tv"),
			DBFilename:     "tv.db",
			JSONFilename:   "store.json",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Remote: RemoteConfig{
			BaseURL:  "https://jsonplaceholder.typicode.com",
			Limit:    200,
			Timeout:  10 * time.Second,
			CacheTTL: 5 * time.Minute,
		},
		Display: DisplayConfig{
			PageSize:   20,
			PageWindow: 7,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStorePath returns the full path of the file backing the configured store
func (c *Config) GetStorePath() string {
	if c.Storage.Backend == BackendFile {
		return filepath.Join(c.Storage.Dir, c.Storage.JSONFilename)
	}
	return filepath.Join(c.Storage.Dir, c.Storage.DBFilename)
}

// GetDefaultConfigFile returns the location of the optional config file
func (c *Config) GetDefaultConfigFile() string {
	return filepath.Join(c.Storage.Dir, ConfigFileName)
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that fail to parse keep their previous setting.
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TV_STORE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("TV_STORE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if name := os.Getenv("TV_STORE_DB_FILENAME"); name != "" {
		c.Storage.DBFilename = name
	}
	if name := os.Getenv("TV_STORE_JSON_FILENAME"); name != "" {
		c.Storage.JSONFilename = name
	}
	if v := os.Getenv("TV_STORE_QUERY_TIMEOUT"); v != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(v, c.Storage.QueryTimeout)
	}
	if v := os.Getenv("TV_STORE_WRITE_TIMEOUT"); v != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(v, c.Storage.WriteTimeout)
	}
	if v := os.Getenv("TV_STORE_DIR_PERMISSIONS"); v != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(v, 8, c.Storage.DirPermissions)
	}

	// Remote configuration
	if url := os.Getenv("TV_REMOTE_BASE_URL"); url != "" {
		c.Remote.BaseURL = url
	}
	if v := os.Getenv("TV_REMOTE_LIMIT"); v != "" {
		c.Remote.Limit = ParseIntWithFallback(v, c.Remote.Limit)
	}
	if v := os.Getenv("TV_REMOTE_TIMEOUT"); v != "" {
		c.Remote.Timeout = ParseDurationWithFallback(v, c.Remote.Timeout)
	}
	if v := os.Getenv("TV_REMOTE_CACHE_TTL"); v != "" {
		c.Remote.CacheTTL = ParseDurationWithFallback(v, c.Remote.CacheTTL)
	}

	// Display configuration
	if v := os.Getenv("TV_DISPLAY_PAGE_SIZE"); v != "" {
		c.Display.PageSize = ParseIntWithFallback(v, c.Display.PageSize)
	}
	if v := os.Getenv("TV_DISPLAY_PAGE_WINDOW"); v != "" {
		c.Display.PageWindow = ParseIntWithFallback(v, c.Display.PageWindow)
	}

	// Server configuration
	if addr := os.Getenv("TV_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}

	// Application configuration
	if v := os.Getenv("TV_APP_TIMEOUT"); v != "" {
		c.Application.Timeout = ParseDurationWithFallback(v, c.Application.Timeout)
	}
	if v := os.Getenv("TV_APP_VERBOSE"); v != "" {
		c.Application.Verbose = ParseBoolWithFallback(v, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Storage
	if c.Storage.Backend != BackendSQLite && c.Storage.Backend != BackendFile {
		return &ConfigError{Field: "storage.backend", Message: "backend must be sqlite or file"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.DBFilename == "" {
		return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.JSONFilename == "" {
		return &ConfigError{Field: "storage.json_filename", Message: "json filename cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Remote
	if c.Remote.BaseURL == "" {
		return &ConfigError{Field: "remote.base_url", Message: "base url cannot be empty"}
	}
	if c.Remote.Limit < 1 {
		return &ConfigError{Field: "remote.limit", Message: "limit must be at least 1"}
	}
	if c.Remote.Timeout <= 0 {
		return &ConfigError{Field: "remote.timeout", Message: "remote timeout must be positive"}
	}
	if c.Remote.CacheTTL < 0 {
		return &ConfigError{Field: "remote.cache_ttl", Message: "cache ttl cannot be negative"}
	}

	// Display
	if c.Display.PageSize < 1 {
		return &ConfigError{Field: "display.page_size", Message: "page size must be at least 1"}
	}
	if c.Display.PageWindow < 5 {
		return &ConfigError{Field: "display.page_window", Message: "page window must be at least 5"}
	}

	// Server
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}

	// Application
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
