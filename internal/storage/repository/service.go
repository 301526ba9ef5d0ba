package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// CreateService inserts a service together with its recipient references
// and returns the generated ID.
func (s *Storage) CreateService(ctx context.Context, svc models.Service) (string, error) {
	const op = "storage.CreateService"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO services (client_id, provider_id, service_name, service_type,
			      start_date, duration, end_date, domain_cost, hosting_cost)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var newID string
	err = tx.QueryRowContext(ctx, query,
		svc.ClientID, svc.ProviderID, svc.ServiceName, svc.ServiceType,
		svc.StartDate, svc.Duration, svc.EndDate, svc.DomainCost, svc.HostingCost).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := insertServiceEmails(ctx, tx, newID, svc.EmailIDs); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadServiceInfo returns one service by ID with client and provider
// display fields and the ordered recipient references resolved in.
func (s *Storage) ReadServiceInfo(ctx context.Context, id string) (*models.ServiceInfo, error) {
	const op = "storage.ReadServiceInfo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := serviceInfoSelect + ` WHERE s.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	result, err := scanServiceInfo(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	emailIDs, err := s.listServiceEmailIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.EmailIDs = emailIDs

	return result, nil
}

// ListServiceInfos returns every service with client and provider display
// fields, the read used by the daily expiration scan.
func (s *Storage) ListServiceInfos(ctx context.Context) ([]*models.ServiceInfo, error) {
	const op = "storage.ListServiceInfos"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := serviceInfoSelect + ` ORDER BY s.end_date`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.ServiceInfo
	for rows.Next() {
		item, err := scanServiceInfo(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateServiceEmails replaces the recipient reference list of a service
// and returns the number of services updated (0 when the ID is unknown).
func (s *Storage) UpdateServiceEmails(ctx context.Context, id string, emailIDs []string) (int, error) {
	const op = "storage.UpdateServiceEmails"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)`, id).Scan(&exists); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return 0, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM service_emails WHERE service_id = $1`, id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := insertServiceEmails(ctx, tx, id, emailIDs); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return 1, nil
}

// SetLastEmailSent records a successful reminder dispatch on the service.
func (s *Storage) SetLastEmailSent(ctx context.Context, id string, sentAt time.Time) (int, error) {
	const op = "storage.SetLastEmailSent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE services SET last_email_sent = $1 WHERE id = $2`, sentAt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListServiceRecipients resolves the service's recipient references to
// concrete addresses, in list order. References to removed addresses are
// dropped by the join.
func (s *Storage) ListServiceRecipients(ctx context.Context, id string) ([]models.EmailAddress, error) {
	const op = "storage.ListServiceRecipients"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT e.id, e.email, e.created_at
			  FROM service_emails se
			  JOIN emails e ON e.id = se.email_id
			  WHERE se.service_id = $1
			  ORDER BY se.position`
	rows, err := s.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []models.EmailAddress
	for rows.Next() {
		var item models.EmailAddress
		if err := rows.Scan(&item.ID, &item.Email, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

const serviceInfoSelect = `
	SELECT s.id, s.client_id, s.provider_id, s.service_name, s.service_type,
	       s.start_date, s.duration, s.end_date, s.domain_cost, s.hosting_cost,
	       s.last_email_sent, s.created_at,
	       c.company_name, c.client_name, p.provider_name
	FROM services s
	LEFT JOIN clients c ON c.id = s.client_id
	LEFT JOIN providers p ON p.id = s.provider_id`

func scanServiceInfo(scan func(...any) error) (*models.ServiceInfo, error) {
	var item models.ServiceInfo
	var domainCost, hostingCost sql.NullFloat64
	var lastEmailSent sql.NullTime
	var companyName, clientName, providerName sql.NullString

	if err := scan(&item.ID, &item.ClientID, &item.ProviderID, &item.ServiceName, &item.ServiceType,
		&item.StartDate, &item.Duration, &item.EndDate, &domainCost, &hostingCost,
		&lastEmailSent, &item.CreatedAt,
		&companyName, &clientName, &providerName); err != nil {
		return nil, err
	}

	if domainCost.Valid {
		item.DomainCost = &domainCost.Float64
	}
	if hostingCost.Valid {
		item.HostingCost = &hostingCost.Float64
	}
	if lastEmailSent.Valid {
		item.LastEmailSent = &lastEmailSent.Time
	}
	if companyName.Valid {
		item.CompanyName = &companyName.String
	}
	if clientName.Valid {
		item.ClientName = &clientName.String
	}
	if providerName.Valid {
		item.ProviderName = &providerName.String
	}
	return &item, nil
}

func (s *Storage) listServiceEmailIDs(ctx context.Context, id string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT email_id FROM service_emails WHERE service_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var emailID string
		if err := rows.Scan(&emailID); err != nil {
			return nil, err
		}
		ids = append(ids, emailID)
	}
	return ids, rows.Err()
}

func insertServiceEmails(ctx context.Context, tx *sql.Tx, serviceID string, emailIDs []string) error {
	for i, emailID := range emailIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO service_emails (service_id, email_id, position) VALUES ($1, $2, $3)`,
			serviceID, emailID, i)
		if err != nil {
			return err
		}
	}
	return nil
}
