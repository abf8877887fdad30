package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {

	secret := []byte("secret")

	token, err := BuildJWTString("taller", secret, time.Minute)
	assert.NoError(t, err)

	user, err := GetUser(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "taller", user)
}

func TestTokenWrongSecret(t *testing.T) {

	token, err := BuildJWTString("taller", []byte("secret"), time.Minute)
	assert.NoError(t, err)

	_, err = GetUser(token, []byte("other"))
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {

	secret := []byte("secret")

	token, err := BuildJWTString("taller", secret, -time.Minute)
	assert.NoError(t, err)

	_, err = GetUser(token, secret)
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {

	hash, err := HashPassword("mypassword")
	assert.NoError(t, err)
	assert.NotEqual(t, "mypassword", hash)

	assert.True(t, CheckPasswordHash("mypassword", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
