// Package config loads and validates the bridge configuration from an
// optional YAML file overlaid by environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the controller credentials, transport knobs, and process
// settings both binaries need. Values come from defaults, then an optional
// YAML file, then environment variables; environment wins. Immutable once
// loaded.
type Config struct {
	BaseURL      string `yaml:"base_url"`
	OmadacID     string `yaml:"omadac_id"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	SiteID       string `yaml:"site_id"`

	VerifyTLS bool   `yaml:"verify_tls"`
	ProxyURL  string `yaml:"proxy_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
	PageSize  int    `yaml:"page_size"`

	// SessionInvalidCodes overrides the controller error codes treated as
	// "token no longer honored". Empty means the built-in default set.
	SessionInvalidCodes []int `yaml:"session_invalid_codes"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	ListenAddr string `yaml:"listen_addr"`
}

// Load builds the configuration and validates it before any network
// activity happens. A missing or malformed required value is fatal to
// startup; the caller is expected to exit.
func Load(path string) (*Config, error) {
	cfg := &Config{
		VerifyTLS:  true,
		TimeoutMS:  30000,
		PageSize:   100,
		LogLevel:   "info",
		ListenAddr: ":8080",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	loadDotEnv()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// Timeout returns the per-request HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func (c *Config) applyEnv() error {
	setString("OMADA_BASE_URL", &c.BaseURL)
	setString("OMADA_OMADAC_ID", &c.OmadacID)
	setString("OMADA_CLIENT_ID", &c.ClientID)
	setString("OMADA_CLIENT_SECRET", &c.ClientSecret)
	setString("OMADA_SITE_ID", &c.SiteID)
	setString("OMADA_PROXY_URL", &c.ProxyURL)
	setString("LOG_LEVEL", &c.LogLevel)
	setString("LOG_FILE", &c.LogFile)
	setString("API_LISTEN_ADDR", &c.ListenAddr)

	if err := setBool("OMADA_VERIFY_TLS", &c.VerifyTLS); err != nil {
		return err
	}
	if err := setInt("OMADA_TIMEOUT_MS", &c.TimeoutMS); err != nil {
		return err
	}
	if err := setInt("OMADA_PAGE_SIZE", &c.PageSize); err != nil {
		return err
	}
	return setIntList("OMADA_SESSION_INVALID_CODES", &c.SessionInvalidCodes)
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required (OMADA_BASE_URL)")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("base_url %q must be an http(s) URL", c.BaseURL)
	}
	if c.OmadacID == "" {
		return fmt.Errorf("omadac_id is required (OMADA_OMADAC_ID)")
	}
	if c.ClientID == "" {
		return fmt.Errorf("client_id is required (OMADA_CLIENT_ID)")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("client_secret is required (OMADA_CLIENT_SECRET)")
	}
	if c.ProxyURL != "" {
		p, err := url.Parse(c.ProxyURL)
		if err != nil || p.Scheme == "" || p.Host == "" {
			return fmt.Errorf("proxy_url %q is not a valid URL", c.ProxyURL)
		}
	}
	if c.TimeoutMS <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", c.TimeoutMS)
	}
	if c.PageSize < 1 || c.PageSize > 1000 {
		return fmt.Errorf("page_size must be between 1 and 1000, got %d", c.PageSize)
	}
	return nil
}

// normalize trims the base URL's trailing slash so path joins stay
// predictable.
func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
}

// loadDotEnv pulls a local .env file into the environment if one exists.
// Variables already set in the environment keep their values.
func loadDotEnv() {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return
	}
	_ = godotenv.Load(".env")
}

func setString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func setInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setIntList(key string, dst *[]int) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		codes = append(codes, n)
	}
	*dst = codes
	return nil
}
