package model

import "time"

// User roles
const (
	RoleTourist   = "tourist"
	RoleAuthority = "authority"
)

type User struct {
	UserID       string    `bson:"user_id" json:"id"`                                           // Unique ID number
	Email        string    `bson:"email" json:"email" validate:"required,email"`                // Unique email field
	FullName     string    `bson:"full_name" json:"full_name" validate:"required"`              // Display name
	Role         string    `bson:"role" json:"role" validate:"required,oneof=tourist authority"` // tourist or authority
	PasswordHash string    `bson:"password_hash" json:"-"`                                      // Hashed password, never serialized
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
