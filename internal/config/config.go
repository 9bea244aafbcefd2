// Package config loads server settings from defaults, an optional config
// file, a .env file and DECKCODES_* environment variables.
package config

import (
	"time"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Image   ImageConfig   `mapstructure:"image" validate:"required"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

type CatalogConfig struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// RedisConfig configures the share store. An empty Addr disables sharing.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
	TTLHours int    `mapstructure:"ttl_hours" validate:"gt=0"`
}

type ImageConfig struct {
	QRSize int `mapstructure:"qr_size" validate:"gte=64,lte=2048"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}
