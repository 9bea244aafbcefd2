package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "DECKCODES"

var validate = validator.New()

// Load reads configuration. configPath names a YAML file; when empty,
// config.yaml in the working directory is used if present.
// Environment variables take precedence over the file, and PORT, if set,
// overrides the server port.
func Load(configPath string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("server.port", 8080)
	v.SetDefault("catalog.data_dir", "data")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl_hours", 720)
	v.SetDefault("image.qr_size", 400)

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configPath)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "reading config file")
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, errors.Wrapf(err, "PORT %q", port)
		}
		cfg.Server.Port = p
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return &cfg, nil
}
