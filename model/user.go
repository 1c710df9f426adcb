package model

import "time"

// User ...
type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`
	Role  Role   `db:"role" json:"role"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NullUser ...
type NullUser struct {
	Valid bool
	User  User
}

// Role ...
type Role int

const (
	// RoleStudent ...
	RoleStudent Role = 1

	// RoleCoordinator ...
	RoleCoordinator Role = 2

	// RoleAdmin ...
	RoleAdmin Role = 3
)
