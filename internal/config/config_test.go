package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	require.Equal(t, "data/catalog.db", cfg.Database.Path)
	require.Equal(t, "", cfg.Auth.JWTSecret)
	require.Equal(t, "HS256", cfg.Auth.Algorithm)
	require.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("CATALOG_DATABASE_PATH", "/tmp/other.db")
	t.Setenv("CATALOG_AUTH_JWTSECRET", "test-secret")
	t.Setenv("CATALOG_AUTH_ALGORITHM", "HS512")
	t.Setenv("CATALOG_AUTH_TOKENTTLMINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	require.Equal(t, "/tmp/other.db", cfg.Database.Path)
	require.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	require.Equal(t, "HS512", cfg.Auth.Algorithm)
	require.Equal(t, 5, cfg.Auth.TokenTTLMinutes)
}
