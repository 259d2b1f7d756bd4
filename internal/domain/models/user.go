package models

import "time"

// User is an admin dashboard account. PasswordHash never serializes.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`   // admin | staff
	Status       string    `json:"status"` // active | inactive
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserUpdate carries mutable user fields. Nil means unchanged.
type UserUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Role     *string
	Status   *string
	Password *string // plain text; hashed before storage
}
