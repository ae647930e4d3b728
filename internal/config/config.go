package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port           string `yaml:"port"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

type SessionConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

// TTL returns the session lifetime.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// RedisConfig selects the session backend. An empty Addr keeps sessions in
// process memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ExportConfig struct {
	PNGEnabled bool `yaml:"png_enabled"`
}

type ViewConfig struct {
	DefaultTheme       string `yaml:"default_theme"`
	DefaultGranularity string `yaml:"default_granularity"`
}

type Config struct {
	Server      ServerConfig  `yaml:"server"`
	Session     SessionConfig `yaml:"session"`
	Redis       RedisConfig   `yaml:"redis"`
	Export      ExportConfig  `yaml:"export"`
	View        ViewConfig    `yaml:"view"`
	Development bool          `yaml:"development"`
}

// Load reads config.yaml (path overridable via CONFIG_PATH), applies env
// var overrides on top, then fills defaults. A missing file is fine — the
// dashboard runs out of the box on defaults.
func Load() *Config {
	cfg := &Config{Export: ExportConfig{PNGEnabled: true}}

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	envOverride(&cfg.Server.Port, "SERVER_PORT")
	envOverrideInt64(&cfg.Server.MaxUploadBytes, "MAX_UPLOAD_BYTES")
	envOverrideInt(&cfg.Session.TTLMinutes, "SESSION_TTL_MINUTES")
	envOverride(&cfg.Redis.Addr, "REDIS_ADDR")
	envOverride(&cfg.Redis.Password, "REDIS_PASSWORD")
	envOverrideInt(&cfg.Redis.DB, "REDIS_DB")
	envOverrideBool(&cfg.Export.PNGEnabled, "PNG_EXPORT_ENABLED")
	envOverride(&cfg.View.DefaultTheme, "DEFAULT_THEME")
	envOverride(&cfg.View.DefaultGranularity, "DEFAULT_GRANULARITY")
	envOverrideBool(&cfg.Development, "DEVELOPMENT")

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 10 << 20
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = 60
	}
	if cfg.View.DefaultTheme == "" {
		cfg.View.DefaultTheme = "default"
	}
	if cfg.View.DefaultGranularity == "" {
		cfg.View.DefaultGranularity = "monthly"
	}

	return cfg
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func envOverrideInt64(target *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*target = n
		}
	}
}

func envOverrideBool(target *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}
