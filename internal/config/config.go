// ABOUTME: Configuration loading and parsing for the Telldemm admin console
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAPIBase is the production backend used when api.base_url is unset.
const DefaultAPIBase = "https://apps.ekarigar.com/backend"

// Config represents the complete admin console configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Session  SessionConfig  `yaml:"session"`
	Gate     GateConfig     `yaml:"gate"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds the dashboard's listen address
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// APIConfig holds remote backend connection configuration
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// SessionConfig holds credential cookie configuration
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"-"`
	Secure     bool          `yaml:"secure"`

	TTLRaw string `yaml:"ttl"`
}

// GateConfig holds session gate path policy configuration.
// By default everything is protected except the login page and static
// assets; public_prefixes adds further exemptions (e.g. backend API
// routes proxied under the same host).
type GateConfig struct {
	// Strict requires a credential even for static assets unless the
	// request was referred by the login page.
	Strict bool `yaml:"strict"`

	LoginPath      string   `yaml:"login_path"`
	PublicPrefixes []string `yaml:"public_prefixes"`
}

// DatabaseConfig holds the audit database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	// Parse duration fields
	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when
// no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.API.Timeout = 10 * time.Second
	cfg.Session.TTL = 24 * time.Hour
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = ":8080"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBase
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "auth_token"
	}
	if c.Gate.LoginPath == "" {
		c.Gate.LoginPath = "/login"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/admin-console.db"
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Session.TTL < 0 {
		return fmt.Errorf("session.ttl must not be negative")
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.API.TimeoutRaw != "" {
		cfg.API.Timeout, err = time.ParseDuration(cfg.API.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing api.timeout %q: %w", cfg.API.TimeoutRaw, err)
		}
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}

	if cfg.Session.TTLRaw != "" {
		cfg.Session.TTL, err = time.ParseDuration(cfg.Session.TTLRaw)
		if err != nil {
			return fmt.Errorf("parsing session.ttl %q: %w", cfg.Session.TTLRaw, err)
		}
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}

	return nil
}
