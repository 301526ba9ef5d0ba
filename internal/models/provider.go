package models

import "time"

// Provider represents a vendor fulfilling one or more services
// (registrar, hosting company).
type Provider struct {
	ID              string    `json:"id"`
	ProviderName    string    `json:"provider_name"`
	ProviderEmail   string    `json:"provider_email"`
	ProviderPhone   string    `json:"provider_phone"`
	ProviderAddress string    `json:"provider_address"`
	Status          bool      `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// DummyProvider receives provider data from a JSON request before validation.
type DummyProvider struct {
	ProviderName    string `json:"provider_name" validate:"required"`
	ProviderEmail   string `json:"provider_email" validate:"required,email"`
	ProviderPhone   string `json:"provider_phone" validate:"required"`
	ProviderAddress string `json:"provider_address" validate:"required"`
}
