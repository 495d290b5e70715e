package pkg

import (
	"strings"

	"github.com/google/uuid"
)

const userIDPrefix = "User-"

// GenerateUserID - mints a new opaque user id. Ids are never reused, a rejoin gets a fresh one.
func GenerateUserID() string {
	return userIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateRoomID - a short random room id for clients that want the server to pick one.
func GenerateRoomID() string {
	id := uuid.New()

	return strings.ReplaceAll(id.String(), "-", "")[:12]
}
