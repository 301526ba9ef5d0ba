package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cost(v float64) *float64 { return &v }

func TestValidateService(t *testing.T) {
	base := DummyService{
		ClientID:    "9b2c6a1e-3f4d-4a7b-8c9d-0e1f2a3b4c5d",
		ProviderID:  "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
		ServiceName: "example.com",
		StartDate:   "2025-01-01",
		Duration:    "1 year",
	}

	tests := []struct {
		name       string
		mutate     func(*DummyService)
		wantFields []string
	}{
		{
			name: "domain only with domain cost",
			mutate: func(r *DummyService) {
				r.ServiceType = TypeDomainOnly
				r.DomainCost = cost(15)
			},
			wantFields: nil,
		},
		{
			name: "domain only missing domain cost",
			mutate: func(r *DummyService) {
				r.ServiceType = TypeDomainOnly
			},
			wantFields: []string{"domain_cost"},
		},
		{
			name: "domain only with stray hosting cost",
			mutate: func(r *DummyService) {
				r.ServiceType = TypeDomainOnly
				r.DomainCost = cost(15)
				r.HostingCost = cost(100)
			},
			wantFields: []string{"hosting_cost"},
		},
		{
			name: "hosting only with hosting cost",
			mutate: func(r *DummyService) {
				r.ServiceType = TypeHostingOnly
				r.HostingCost = cost(100)
			},
			wantFields: nil,
		},
		{
			name: "domain + hosting requires both costs",
			mutate: func(r *DummyService) {
				r.ServiceType = TypeDomainHosting
			},
			wantFields: []string{"domain_cost", "hosting_cost"},
		},
		{
			name: "unknown service type",
			mutate: func(r *DummyService) {
				r.ServiceType = "vps"
			},
			wantFields: []string{"service_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			errs := ValidateService(req)

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
