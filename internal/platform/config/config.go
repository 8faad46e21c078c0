package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RegistryCacheTTL enforces retention for sensitive registry data.
var RegistryCacheTTL = 5 * time.Minute

// DefaultTimeout bounds a single registry call.
const DefaultTimeout = 30 * time.Second

// Sample captures everything the sample driver needs besides TLS material.
type Sample struct {
	Heldin   Heldin
	LogLevel string
	Timeout  time.Duration
	CacheTTL time.Duration
	Redis    RedisConfig
	// Certificate holds folkv3.* certificate properties from the config file.
	Certificate map[string]string
}

// RedisConfig configures the optional shared lookup cache.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// MockRegistry configures the local registry stub.
type MockRegistry struct {
	Addr string
}

type sampleFile struct {
	Heldin struct {
		Host   string `yaml:"host"`
		Secure *bool  `yaml:"secure"`
		Client string `yaml:"client"`
		UserID string `yaml:"user_id"`
	} `yaml:"heldin"`
	LogLevel    string            `yaml:"log_level"`
	Timeout     time.Duration     `yaml:"timeout"`
	CacheTTL    time.Duration     `yaml:"cache_ttl"`
	Redis       RedisConfig       `yaml:"redis"`
	Certificate map[string]string `yaml:"certificate"`
}

// Load reads the sample configuration from a YAML file, then applies
// environment overrides. An empty path means environment only.
func Load(path string) (Sample, error) {
	var file sampleFile
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Sample{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Sample{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&file); err != nil {
		return Sample{}, err
	}
	return fromFile(file)
}

// FromEnv builds the sample configuration from environment variables only.
func FromEnv() (Sample, error) {
	return Load("")
}

func fromFile(file sampleFile) (Sample, error) {
	secure := true
	if file.Heldin.Secure != nil {
		secure = *file.Heldin.Secure
	}
	if file.Heldin.Client == "" {
		return Sample{}, fmt.Errorf("%w: client path is required (heldin.client or FOLKV3_CLIENT)", ErrInvalidHeldin)
	}
	heldin, err := ParseHeldin(file.Heldin.Host, secure, file.Heldin.Client)
	if err != nil {
		return Sample{}, err
	}
	heldin.UserID = file.Heldin.UserID

	cfg := Sample{
		Heldin:      heldin,
		LogLevel:    file.LogLevel,
		Timeout:     file.Timeout,
		CacheTTL:    file.CacheTTL,
		Redis:       file.Redis,
		Certificate: file.Certificate,
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Sample{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Sample) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = RegistryCacheTTL
	}
	if cfg.Redis.URL != "" {
		if cfg.Redis.PoolSize == 0 {
			cfg.Redis.PoolSize = 10
		}
		if cfg.Redis.DialTimeout == 0 {
			cfg.Redis.DialTimeout = 5 * time.Second
		}
		if cfg.Redis.ReadTimeout == 0 {
			cfg.Redis.ReadTimeout = 3 * time.Second
		}
		if cfg.Redis.WriteTimeout == 0 {
			cfg.Redis.WriteTimeout = 3 * time.Second
		}
	}
}

// Validate checks the assembled configuration.
func (c Sample) Validate() error {
	if err := c.Heldin.Validate(); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %v", c.Timeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative, got %v", c.CacheTTL)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// applyEnvOverrides overrides file values with environment variables if set.
// Invalid values fail fast.
func applyEnvOverrides(file *sampleFile) error {
	if host := os.Getenv("FOLKV3_HOST"); host != "" {
		file.Heldin.Host = host
	}
	if secure := os.Getenv("FOLKV3_SECURE"); secure != "" {
		b, err := parseBool(secure)
		if err != nil {
			return fmt.Errorf("invalid FOLKV3_SECURE %q: %w", secure, err)
		}
		file.Heldin.Secure = &b
	}
	if client := os.Getenv("FOLKV3_CLIENT"); client != "" {
		file.Heldin.Client = client
	}
	if userID := os.Getenv("FOLKV3_USERID"); userID != "" {
		file.Heldin.UserID = userID
	}
	if level := os.Getenv("FOLKV3_LOG_LEVEL"); level != "" {
		file.LogLevel = level
	}
	if timeout := os.Getenv("FOLKV3_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid FOLKV3_TIMEOUT %q: %w", timeout, err)
		}
		file.Timeout = d
	}
	if ttl := os.Getenv("FOLKV3_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid FOLKV3_CACHE_TTL %q: %w", ttl, err)
		}
		file.CacheTTL = d
	}
	if url := os.Getenv("FOLKV3_REDIS_URL"); url != "" {
		file.Redis.URL = url
	}
	return nil
}

// MockRegistryFromEnv builds the stub server config from environment variables.
func MockRegistryFromEnv() MockRegistry {
	addr := os.Getenv("MOCKREGISTRY_ADDR")
	if addr == "" {
		addr = ":8090"
	}
	return MockRegistry{Addr: addr}
}

var errInvalidBool = errors.New("expected true/false, 1/0, yes/no or on/off")

// parseBool accepts "true", "1", "yes", "on" and "false", "0", "no", "off".
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, errInvalidBool
	}
}
