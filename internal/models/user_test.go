package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUser_JSONNeverIncludesDigest(t *testing.T) {
	user := User{
		ID:           primitive.NewObjectID(),
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$somethingsecret",
		CreatedAt:    time.Now(),
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	require.NotContains(t, strings.ToLower(string(raw)), "password")
}

func TestPublic(t *testing.T) {
	birthdate := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
	user := User{
		ID:        primitive.NewObjectID(),
		Name:      "Jane Doe",
		Email:     "jane@x.com",
		Phone:     "+15550001111",
		Birthdate: &birthdate,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	pub := user.Public()
	require.Equal(t, user.ID.Hex(), pub.ID)
	require.Equal(t, "1990-04-02", pub.Birthdate)
	require.Equal(t, "2024-01-02T03:04:05Z", pub.CreatedAt)
	require.Equal(t, "https://ui-avatars.com/api/?name=Jane+Doe", pub.Avatar)
}

func TestAvatarURL_Deterministic(t *testing.T) {
	require.Equal(t, AvatarURL("Jane Doe"), AvatarURL("Jane Doe"))
	require.NotEqual(t, AvatarURL("Jane Doe"), AvatarURL("John Doe"))
}
