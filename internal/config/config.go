package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// Environment profile names.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds all application configuration.
type Config struct {
	// Env selects the active profile: development, testing or production.
	Env    string       `mapstructure:"env"    validate:"required,oneof=development testing production"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
	// Database carries no required tag: Load checks Resolve instead, which
	// reports which environment is missing a target.
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains the HTTP bind address and logging settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig describes where the relational store lives. A target can be
// given three ways, in descending precedence: a unified URL, a per-profile
// URL, or discrete host/port/user/password/name parts.
type DatabaseConfig struct {
	URL     string `mapstructure:"url"`
	DevURL  string `mapstructure:"dev_url"`
	TestURL string `mapstructure:"test_url"`
	ProdURL string `mapstructure:"prod_url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// AuthConfig carries credentials-related settings that the environment may
// provide. They are recognized and parsed, but no code path consumes them:
// this service performs authentication checks only and issues no tokens.
type AuthConfig struct {
	SecretKey                string `mapstructure:"secret_key"`
	Algorithm                string `mapstructure:"algorithm"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
}

// Resolve returns the connection URL for the given environment profile.
// An explicit URL wins, then the per-profile URL, then a URL composed from
// the discrete parts. Returns an error when no target is configured.
func (c DatabaseConfig) Resolve(env string) (string, error) {
	if c.URL != "" {
		return c.URL, nil
	}

	var profileURL string
	switch env {
	case EnvTesting:
		profileURL = c.TestURL
	case EnvProduction:
		profileURL = c.ProdURL
	default:
		profileURL = c.DevURL
	}
	if profileURL != "" {
		return profileURL, nil
	}

	if c.Host != "" && c.Name != "" {
		u := &url.URL{
			Scheme: "postgres",
			Host:   c.Host,
			Path:   "/" + c.Name,
		}
		if c.Port != 0 {
			u.Host = c.Host + ":" + strconv.Itoa(c.Port)
		}
		if c.User != "" {
			if c.Password != "" {
				u.User = url.UserPassword(c.User, c.Password)
			} else {
				u.User = url.User(c.User)
			}
		}
		return u.String(), nil
	}

	return "", fmt.Errorf("no database target configured for environment %q", env)
}
