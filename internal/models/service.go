package models

import "time"

// Service type values. "domain only" and "hosting only" require the
// matching cost field; "domain + hosting" requires both.
const (
	TypeDomainOnly    = "domain only"
	TypeHostingOnly   = "hosting only"
	TypeDomainHosting = "domain + hosting"
)

// Service is a tracked recurring engagement (domain and/or hosting).
// EndDate is derived from StartDate plus the duration label once at
// creation and is never recomputed afterwards. EmailIDs are weak
// references to EmailAddress records, the only mutable part of a service.
// LastEmailSent is set by the sender after a successful reminder.
type Service struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	ProviderID    string     `json:"provider_id"`
	ServiceName   string     `json:"service_name"`
	ServiceType   string     `json:"service_type"`
	StartDate     time.Time  `json:"start_date"`
	Duration      string     `json:"duration"`
	EndDate       time.Time  `json:"end_date"`
	DomainCost    *float64   `json:"domain_cost,omitempty"`
	HostingCost   *float64   `json:"hosting_cost,omitempty"`
	EmailIDs      []string   `json:"emails"`
	LastEmailSent *time.Time `json:"last_email_sent,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ServiceInfo is a service row joined with client and provider display
// fields. The pointers stay nil when the referenced record no longer
// exists; the composer renders those as "N/A".
type ServiceInfo struct {
	Service
	CompanyName  *string `json:"company_name,omitempty"`
	ClientName   *string `json:"client_name,omitempty"`
	ProviderName *string `json:"provider_name,omitempty"`
}

// DummyService receives service data from a JSON request. The start date
// comes as a string in 2006-01-02 format and is parsed in the service
// layer; the conditional cost rules live in ValidateService.
type DummyService struct {
	ClientID    string   `json:"client_id" validate:"required,uuid"`
	ProviderID  string   `json:"provider_id" validate:"required,uuid"`
	ServiceName string   `json:"service_name" validate:"required"`
	ServiceType string   `json:"service_type" validate:"required"`
	StartDate   string   `json:"start_date" validate:"required"`
	Duration    string   `json:"duration" validate:"required"`
	DomainCost  *float64 `json:"domain_cost,omitempty"`
	HostingCost *float64 `json:"hosting_cost,omitempty"`
	Emails      []string `json:"emails,omitempty" validate:"omitempty,dive,uuid"`
}

// DummyServiceEmails receives the replacement recipient list for a service.
type DummyServiceEmails struct {
	Emails []string `json:"emails" validate:"required,dive,uuid"`
}

// ExpiringService is the queue message published by the scheduler for
// every service that crossed the notification threshold.
type ExpiringService struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	DaysLeft    int    `json:"days_left"`
}
