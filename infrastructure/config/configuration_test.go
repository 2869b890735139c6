package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DSN", "user:pass@tcp(db:3306)/sitepay?parseTime=true")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MAX_CONNECTIONS", "25")
	t.Setenv("ALLOW_ORIGINS", "https://app.example.com, https://admin.example.com")

	c := ServerConfig{
		Port:           "8080",
		MaxConnections: 10,
		AllowOrigins:   []string{"http://localhost:3000"},
	}
	require.NoError(t, applyEnvOverrides(&c))

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "user:pass@tcp(db:3306)/sitepay?parseTime=true", c.DSN)
	assert.Equal(t, "env-secret", c.JWTSecret)
	assert.Equal(t, 25, c.MaxConnections)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, c.AllowOrigins)
}

func TestApplyEnvOverridesKeepsDefaultsWhenUnset(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_CONNECTIONS", "")
	t.Setenv("ALLOW_ORIGINS", "")

	c := ServerConfig{
		Port:           "8080",
		MaxConnections: 10,
		AllowOrigins:   []string{"http://localhost:3000"},
	}
	require.NoError(t, applyEnvOverrides(&c))

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 10, c.MaxConnections)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowOrigins)
}

func TestApplyEnvOverridesRejectsBadMaxConnections(t *testing.T) {
	t.Setenv("MAX_CONNECTIONS", "lots")

	c := ServerConfig{MaxConnections: 10}
	assert.Error(t, applyEnvOverrides(&c))

	t.Setenv("MAX_CONNECTIONS", "0")
	assert.Error(t, applyEnvOverrides(&c))
}
