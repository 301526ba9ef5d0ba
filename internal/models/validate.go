package models

import "fmt"

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Message)
}

// ValidateService applies the rules the struct tags cannot express:
// the service type must be one of the known values, and the cost fields
// must be present or absent consistently with the type. The duration
// label is deliberately not checked here — unknown labels fall back to
// one month in the duration package.
func ValidateService(req DummyService) []FieldError {
	var errs []FieldError

	switch req.ServiceType {
	case TypeDomainOnly, TypeHostingOnly, TypeDomainHosting:
	default:
		errs = append(errs, FieldError{
			Field:   "service_type",
			Message: fmt.Sprintf("must be one of %q, %q, %q", TypeDomainOnly, TypeHostingOnly, TypeDomainHosting),
		})
		return errs
	}

	needsDomain := req.ServiceType == TypeDomainOnly || req.ServiceType == TypeDomainHosting
	needsHosting := req.ServiceType == TypeHostingOnly || req.ServiceType == TypeDomainHosting

	if needsDomain && req.DomainCost == nil {
		errs = append(errs, FieldError{Field: "domain_cost", Message: "is required for this service type"})
	}
	if !needsDomain && req.DomainCost != nil {
		errs = append(errs, FieldError{Field: "domain_cost", Message: "is not allowed for this service type"})
	}
	if needsHosting && req.HostingCost == nil {
		errs = append(errs, FieldError{Field: "hosting_cost", Message: "is required for this service type"})
	}
	if !needsHosting && req.HostingCost != nil {
		errs = append(errs, FieldError{Field: "hosting_cost", Message: "is not allowed for this service type"})
	}

	return errs
}
