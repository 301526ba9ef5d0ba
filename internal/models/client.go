// Package models contains the domain structures for clients, service
// providers, services and reusable notification email addresses, plus the
// request types used to receive and validate JSON payloads.
package models

import "time"

// Client represents a company the services are managed for.
// ClientStatus is a plain active/inactive flag that is only ever toggled.
type Client struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	ClientName   string    `json:"client_name"`
	ClientEmail  string    `json:"client_email"`
	ClientPhone  string    `json:"client_phone"`
	Address      string    `json:"address"`
	ClientType   string    `json:"client_type"` // "external" or "internal"
	ClientStatus bool      `json:"client_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// DummyClient receives client data from a JSON request before validation.
type DummyClient struct {
	CompanyName string `json:"company_name" validate:"required"`
	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	ClientPhone string `json:"client_phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
	ClientType  string `json:"client_type" validate:"required,oneof=external internal"`
}
