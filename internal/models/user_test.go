package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	user := &User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		Avatar:       "//www.gravatar.com/avatar/abc",
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), `"_id":"u1"`)
	assert.Contains(t, string(data), `"date":"2024-01-02T03:04:05Z"`)
}

func TestUser_Public(t *testing.T) {
	user := &User{ID: "u1", PasswordHash: "hash"}

	pub := user.Public()

	assert.Empty(t, pub.PasswordHash)
	assert.Equal(t, "u1", pub.ID)
	assert.Equal(t, "hash", user.PasswordHash, "source user must not be modified")
}
