package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is the outward form of a user. The password credential is
// never part of it.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
