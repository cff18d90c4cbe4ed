package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and, when present, a
// config.yaml in the working directory. Environment variables take
// precedence. Returns a validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for the development profile.
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")

	// Recognized environment variables. ENV_TYPE is an accepted alias for
	// ENV; the per-profile database URLs mirror the deployment convention.
	bindings := map[string][]string{
		"env":                              {"ENV", "ENV_TYPE"},
		"server.host":                      {"SERVER_HOST"},
		"server.port":                      {"SERVER_PORT"},
		"server.log_level":                 {"LOG_LEVEL"},
		"database.url":                     {"DATABASE_URL"},
		"database.dev_url":                 {"DEV_DATABASE_URL"},
		"database.test_url":                {"TEST_DATABASE_URL"},
		"database.prod_url":                {"PROD_DATABASE_URL"},
		"database.host":                    {"DATABASE_HOST"},
		"database.port":                    {"DATABASE_PORT"},
		"database.user":                    {"DATABASE_USER"},
		"database.password":                {"DATABASE_PASSWORD"},
		"database.name":                    {"DATABASE_NAME"},
		"auth.secret_key":                  {"SECRET_KEY"},
		"auth.algorithm":                   {"ALGORITHM"},
		"auth.access_token_expire_minutes": {"ACCESS_TOKEN_EXPIRE_MINUTES"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Optional config file; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Fail at startup, not first query, when no database target exists.
	if _, err := cfg.Database.Resolve(cfg.Env); err != nil {
		return nil, err
	}

	return &cfg, nil
}
