package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autokomis-pl/autokomis-api/internal/config"
	"github.com/autokomis-pl/autokomis-api/internal/models"
)

func testConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpires: ttl,
	}
}

func TestSignAndVerify(t *testing.T) {
	cfg := testConfig(time.Hour)
	user := &models.User{ID: 42, Email: "jan@example.com"}

	raw, err := Sign(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := Verify(raw, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jan@example.com", claims.Email)
}

func TestVerifyExpired(t *testing.T) {
	cfg := testConfig(-time.Minute)
	user := &models.User{ID: 1, Email: "a@example.com"}

	raw, err := Sign(user, cfg)
	require.NoError(t, err)

	_, err = Verify(raw, cfg)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	cfg := testConfig(time.Hour)
	user := &models.User{ID: 1, Email: "a@example.com"}

	raw, err := Sign(user, cfg)
	require.NoError(t, err)

	other := &config.Config{JWTSecret: "other-secret", JWTExpires: time.Hour}
	_, err = Verify(raw, other)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	cfg := testConfig(time.Hour)

	_, err := Verify("not-a-token", cfg)
	assert.ErrorIs(t, err, ErrInvalid)
}
