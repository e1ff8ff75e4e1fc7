package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tailscale/hujson"
)

// ConfigFileName is the name of the optional config file inside the storage directory
const ConfigFileName = "config.json"

var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
)

// fileConfig mirrors Config for the JSON (with comments) config file.
// Every field is optional; durations are Go duration strings.
type fileConfig struct {
	Storage struct {
		Backend      *string `json:"backend"`
		Dir          *string `json:"dir"`
		DBFilename   *string `json:"db_filename"`
		JSONFilename *string `json:"json_filename"`
		QueryTimeout *string `json:"query_timeout"`
		WriteTimeout *string `json:"write_timeout"`
	} `json:"storage"`
	Remote struct {
		BaseURL  *string `json:"base_url"`
		Limit    *int    `json:"limit"`
		Timeout  *string `json:"timeout"`
		CacheTTL *string `json:"cache_ttl"`
	} `json:"remote"`
	Display struct {
		PageSize   *int `json:"page_size"`
		PageWindow *int `json:"page_window"`
	} `json:"display"`
	Server struct {
		Addr *string `json:"addr"`
	} `json:"server"`
	Application struct {
		Timeout *string `json:"timeout"`
		Verbose *bool   `json:"verbose"`
	} `json:"application"`
}

// LoadFromFile overlays values from a config file. When mustExist is false a
// missing file is not an error. It reports whether a file was read.
func (c *Config) LoadFromFile(path string, mustExist bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}
			return false, nil
		}
		return false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	fc, err := parseConfigFile(data)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	if err := c.applyFile(fc); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}
	return true, nil
}

func parseConfigFile(data []byte) (*fileConfig, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(standardized, &fc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &fc, nil
}

func (c *Config) applyFile(fc *fileConfig) error {
	setString(&c.Storage.Backend, fc.Storage.Backend)
	setString(&c.Storage.Dir, fc.Storage.Dir)
	setString(&c.Storage.DBFilename, fc.Storage.DBFilename)
	setString(&c.Storage.JSONFilename, fc.Storage.JSONFilename)
	if err := setDuration(&c.Storage.QueryTimeout, fc.Storage.QueryTimeout, "storage.query_timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.Storage.WriteTimeout, fc.Storage.WriteTimeout, "storage.write_timeout"); err != nil {
		return err
	}

	setString(&c.Remote.BaseURL, fc.Remote.BaseURL)
	if fc.Remote.Limit != nil {
		c.Remote.Limit = *fc.Remote.Limit
	}
	if err := setDuration(&c.Remote.Timeout, fc.Remote.Timeout, "remote.timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.Remote.CacheTTL, fc.Remote.CacheTTL, "remote.cache_ttl"); err != nil {
		return err
	}

	if fc.Display.PageSize != nil {
		c.Display.PageSize = *fc.Display.PageSize
	}
	if fc.Display.PageWindow != nil {
		c.Display.PageWindow = *fc.Display.PageWindow
	}

	setString(&c.Server.Addr, fc.Server.Addr)

	if err := setDuration(&c.Application.Timeout, fc.Application.Timeout, "application.timeout"); err != nil {
		return err
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string, field string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return &ConfigError{Field: field, Message: fmt.Sprintf("invalid duration %q", *v)}
	}
	*dst = d
	return nil
}
