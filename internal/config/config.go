package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Stats    StatsConfig    `mapstructure:"stats"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Filter   FilterConfig   `mapstructure:"filter"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LogConfig represents log output configuration. An empty File logs to stdout only.
type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string       `mapstructure:"driver"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// SQLiteConfig represents the embedded SQLite configuration
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StatsConfig controls how raw visits are bucketed
type StatsConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the configured timezone. Load rejects unknown zones; an
// unvalidated value that fails to load falls back to time.Local.
func (s StatsConfig) Location() *time.Location {
	if s.Timezone == "" || strings.EqualFold(s.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// CacheConfig represents site cache configuration
type CacheConfig struct {
	SiteTTL time.Duration `mapstructure:"site_ttl"`
}

// FilterConfig represents the site registry Bloom Filter configuration
type FilterConfig struct {
	Capacity  int64   `mapstructure:"capacity"`
	ErrorRate float64 `mapstructure:"error_rate"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Redis.Password = expandEnv(v, cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(v, cfg.Database.MySQL.DSN)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql":
		if c.Database.MySQL.DSN == "" {
			return fmt.Errorf("database.mysql.dsn is required for the mysql driver")
		}
	case "sqlite":
		if c.Database.SQLite.Path == "" {
			return fmt.Errorf("database.sqlite.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if tz := c.Stats.Timezone; tz != "" && !strings.EqualFold(tz, "local") {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("invalid stats.timezone %q: %w", tz, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.sqlite.path", "data/sitepulse.db")
	v.SetDefault("stats.timezone", "Local")
	v.SetDefault("cache.site_ttl", 10*time.Minute)
	v.SetDefault("filter.capacity", 10000000)
	v.SetDefault("filter.error_rate", 0.01)
	v.SetDefault("rocketmq.topic", "site_visits")
	v.SetDefault("rocketmq.group", "sitepulse_consumer_group")
}

// expandEnv expands a "${NAME}" placeholder from the environment
func expandEnv(v *viper.Viper, s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return v.GetString(envKey)
	}
	return s
}
