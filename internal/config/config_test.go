package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv(t *testing.T) {

	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("AUTH_SECRET", "supersecret")
	t.Setenv("AUTH_COOKIE_EXPIRES_SECONDS", "600")

	conf, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", conf.RunAddress)
	assert.Equal(t, []byte("supersecret"), conf.Secret)
	assert.Equal(t, 600, conf.AuthCookieExpiresIn)
	// not set in the environment, falls back to the flag default
	assert.NotEmpty(t, conf.DatabaseDSN)
}
