package model

import "time"

// User represents a registered author in the database.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterInput is the bound body of a registration form.
type RegisterInput struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"-" validate:"required,min=4"`
	PasswordConfirm string `json:"-" validate:"required,eqfield=Password"`
}

// LoginInput is the bound body of a login form.
type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"-" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}
