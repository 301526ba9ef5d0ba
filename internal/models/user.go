package models

import "time"

// User represents an operator account for the dashboard.
type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// DummyRegister receives registration data from a JSON request.
type DummyRegister struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// DummyLogin receives login credentials from a JSON request.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
