package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONNeverExposesPasswordHash(t *testing.T) {
	u := User{
		ID:           1,
		Name:         "Jan",
		Email:        "jan@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         "user",
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")

	raw, err = json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestPublicKeepsIdentityFields(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	u := User{ID: 7, Name: "Anna", Email: "anna@example.com", Role: "user", CreatedAt: created}

	p := u.Public()
	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, "Anna", p.Name)
	assert.Equal(t, "anna@example.com", p.Email)
	assert.Equal(t, "user", p.Role)
	assert.Equal(t, created, p.CreatedAt)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"created_at":"2025-03-14T09:30:00Z"`)
}
