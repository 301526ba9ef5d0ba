package models

import "time"

// EmailAddress is a standalone reusable notification address. Services
// keep weak references to these records; removing an address does not
// touch the services pointing at it.
type EmailAddress struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// DummyEmail receives a new address from a JSON request before validation.
type DummyEmail struct {
	Email string `json:"email" validate:"required,email"`
}
