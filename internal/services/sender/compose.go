package services

import (
	"fmt"
	"strings"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

const placeholder = "N/A"

// composeExpirationMail builds the reminder subject and plain-text body
// for one service. Pure: no I/O, deterministic for the same inputs, and
// it never fails — unresolved client or provider names render as "N/A".
func composeExpirationMail(info *models.ServiceInfo, daysLeft int) (subject, body string) {
	clientName := placeholder
	if info.ClientName != nil {
		clientName = *info.ClientName
	}
	providerName := placeholder
	if info.ProviderName != nil {
		providerName = *info.ProviderName
	}

	subject = fmt.Sprintf("Service Expiration Reminder: %s", info.ServiceName)

	body = strings.Join([]string{
		"Service Expiration Reminder",
		"",
		fmt.Sprintf("The following service is about to expire in %d days:", daysLeft),
		"",
		fmt.Sprintf("Service Name: %s", info.ServiceName),
		fmt.Sprintf("Service Provider: %s", providerName),
		fmt.Sprintf("Client: %s", clientName),
		fmt.Sprintf("Service Type: %s", info.ServiceType),
		fmt.Sprintf("Expiration Date: %s", info.EndDate.Format("02 Jan 2006")),
		"",
		"Please take necessary action to renew this service.",
		"",
		"This is an automated message. Please do not reply to this email.",
	}, "\n")

	return subject, body
}
