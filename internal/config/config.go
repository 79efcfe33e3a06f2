package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultURL        = "https://simpsons.fandom.com/wiki/Bart%27s_prank_calls"
	DefaultTimeoutSec = 10
	DefaultNameColumn = 1

	BackendHTTP  = "http"
	BackendColly = "colly"
)

// Rows of the first prank-call table that hold section separators rather
// than names on the source page.
var DefaultExcludedRows = []int{13, 28, 32, 34}

var (
	ErrInvalidTimeout     = errors.New("invalid timeout: must be positive")
	ErrInvalidBackend     = errors.New("invalid fetch backend: must be \"http\" or \"colly\"")
	ErrInvalidNameColumn  = errors.New("invalid name column: must be non-negative")
	ErrInvalidExcludedRow = errors.New("invalid excluded row: must be non-negative")
	ErrEmptyURL           = errors.New("fetch url is empty")
)

type FetchConfig struct {
	URL           string `yaml:"url"`
	TimeoutSec    int    `yaml:"timeout_sec"`
	Backend       string `yaml:"backend"`
	UserAgent     string `yaml:"user_agent"`
	RespectRobots bool   `yaml:"respect_robots"`
}

type ExtractConfig struct {
	NameColumn   int   `yaml:"name_column"`
	ExcludedRows []int `yaml:"excluded_rows"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Fetch   FetchConfig   `yaml:"fetch"`
	Extract ExtractConfig `yaml:"extract"`
	Log     LogConfig     `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			URL:        DefaultURL,
			TimeoutSec: DefaultTimeoutSec,
			Backend:    BackendHTTP,
		},
		Extract: ExtractConfig{
			NameColumn:   DefaultNameColumn,
			ExcludedRows: append([]int(nil), DefaultExcludedRows...),
		},
		Log: LogConfig{Level: "warn"},
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file is not an
// error: the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Fetch.URL == "" {
		return ErrEmptyURL
	}
	if c.Fetch.TimeoutSec <= 0 {
		return ErrInvalidTimeout
	}
	switch c.Fetch.Backend {
	case BackendHTTP, BackendColly:
	default:
		return ErrInvalidBackend
	}
	if c.Extract.NameColumn < 0 {
		return ErrInvalidNameColumn
	}
	for _, row := range c.Extract.ExcludedRows {
		if row < 0 {
			return ErrInvalidExcludedRow
		}
	}
	return nil
}

// Timeout is the per-request fetch timeout.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSec) * time.Second
}
