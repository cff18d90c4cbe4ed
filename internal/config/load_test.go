package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"ENV", "ENV_TYPE", "SERVER_HOST", "SERVER_PORT", "LOG_LEVEL",
		"DATABASE_URL", "DEV_DATABASE_URL", "TEST_DATABASE_URL", "PROD_DATABASE_URL",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_NAME",
		"SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/fintrack")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadEnvTypeAlias(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV_TYPE", EnvTesting)
	t.Setenv("TEST_DATABASE_URL", "postgres://app:pw@localhost:5432/fintrack_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvTesting, cfg.Env)

	dbURL, err := cfg.Database.Resolve(cfg.Env)
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:pw@localhost:5432/fintrack_test", dbURL)
}

func TestLoadInvalidEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "staging")
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/fintrack")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingDatabaseTarget(t *testing.T) {
	clearConfigEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database target")
	assert.Contains(t, err.Error(), EnvDevelopment,
		"the error should name the environment that lacks a target")
}

func TestLoadAuthConfigIsRecognized(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/fintrack")
	t.Setenv("SECRET_KEY", "super-secret")
	t.Setenv("ALGORITHM", "HS256")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.Auth.SecretKey)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 30, cfg.Auth.AccessTokenExpireMinutes)
}

func TestDatabaseConfigResolve(t *testing.T) {
	t.Run("explicit url wins", func(t *testing.T) {
		cfg := DatabaseConfig{
			URL:    "postgres://app:pw@primary:5432/db",
			DevURL: "postgres://app:pw@dev:5432/db",
		}
		dbURL, err := cfg.Resolve(EnvDevelopment)
		require.NoError(t, err)
		assert.Equal(t, "postgres://app:pw@primary:5432/db", dbURL)
	})

	t.Run("per profile url", func(t *testing.T) {
		cfg := DatabaseConfig{
			DevURL:  "postgres://app:pw@dev:5432/db",
			ProdURL: "postgres://app:pw@prod:5432/db",
		}

		dbURL, err := cfg.Resolve(EnvProduction)
		require.NoError(t, err)
		assert.Equal(t, "postgres://app:pw@prod:5432/db", dbURL)

		dbURL, err = cfg.Resolve(EnvDevelopment)
		require.NoError(t, err)
		assert.Equal(t, "postgres://app:pw@dev:5432/db", dbURL)
	})

	t.Run("composed from discrete parts", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5433,
			User:     "app",
			Password: "pw",
			Name:     "fintrack",
		}
		dbURL, err := cfg.Resolve(EnvDevelopment)
		require.NoError(t, err)
		assert.Equal(t, "postgres://app:pw@localhost:5433/fintrack", dbURL)
	})

	t.Run("no target", func(t *testing.T) {
		_, err := DatabaseConfig{}.Resolve(EnvDevelopment)
		assert.Error(t, err)
	})
}
