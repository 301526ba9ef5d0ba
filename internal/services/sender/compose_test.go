package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

func TestComposeExpirationMail(t *testing.T) {
	info := testServiceInfo()

	subject, body := composeExpirationMail(info, 30)

	assert.Equal(t, "Service Expiration Reminder: acme.com", subject)
	assert.Contains(t, body, "expire in 30 days")
	assert.Contains(t, body, "Service Name: acme.com")
	assert.Contains(t, body, "Service Provider: GoDaddy")
	assert.Contains(t, body, "Client: Acme")
	assert.Contains(t, body, "Service Type: domain + hosting")
	assert.Contains(t, body, "Expiration Date: 10 May 2025")
	assert.Contains(t, body, "automated message")
}

func TestComposeExpirationMail_MissingReferences(t *testing.T) {
	info := &models.ServiceInfo{}
	info.ID = "svc-2"
	info.ServiceName = "orphan.org"
	info.ServiceType = models.TypeDomainOnly
	info.EndDate = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	_, body := composeExpirationMail(info, 30)

	assert.Contains(t, body, "Service Provider: N/A")
	assert.Contains(t, body, "Client: N/A")
}

func TestComposeExpirationMail_ExpiredService(t *testing.T) {
	info := testServiceInfo()

	_, body := composeExpirationMail(info, -3)

	// The manual trigger can fire after expiry; the template still renders.
	assert.Contains(t, body, "expire in -3 days")
}
