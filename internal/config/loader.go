package config

import (
	"os"
	"strconv"
	"time"

	"task-viewer/internal/logging"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file (TV_CONFIG, or config.json in the default storage dir)
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	path := os.Getenv("TV_CONFIG")
	mustExist := path != ""
	if path == "" {
		path = l.config.GetDefaultConfigFile()
	}
	loaded, err := l.config.LoadFromFile(path, mustExist)
	if err != nil {
		return nil, err
	}
	if loaded {
		logging.Debugf("loaded config file %s\n", path)
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides; nil fields are left alone
type ConfigOverrides struct {
	// Storage overrides
	StoreBackend *string
	StoreDir     *string

	// Remote overrides
	RemoteBaseURL *string
	RemoteLimit   *int
	RemoteTimeout *time.Duration

	// Display overrides
	PageSize   *int
	PageWindow *int

	// Server overrides
	ServerAddr *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// Apply copies every set override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.StoreBackend != nil {
		config.Storage.Backend = *o.StoreBackend
	}
	if o.StoreDir != nil {
		config.Storage.Dir = *o.StoreDir
	}

	if o.RemoteBaseURL != nil {
		config.Remote.BaseURL = *o.RemoteBaseURL
	}
	if o.RemoteLimit != nil {
		config.Remote.Limit = *o.RemoteLimit
	}
	if o.RemoteTimeout != nil {
		config.Remote.Timeout = *o.RemoteTimeout
	}

	if o.PageSize != nil {
		config.Display.PageSize = *o.PageSize
	}
	if o.PageWindow != nil {
		config.Display.PageWindow = *o.PageWindow
	}

	if o.ServerAddr != nil {
		config.Server.Addr = *o.ServerAddr
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
