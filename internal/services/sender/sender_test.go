package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Aaryashkc/Client-domain-management/internal/config"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/smtp"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ReadServiceInfo(ctx context.Context, id string) (*models.ServiceInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceInfo), args.Error(1)
}

func (m *MockRepository) ListServiceRecipients(ctx context.Context, id string) ([]models.EmailAddress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EmailAddress), args.Error(1)
}

func (m *MockRepository) SetLastEmailSent(ctx context.Context, id string, sentAt time.Time) (int, error) {
	args := m.Called(ctx, id, sentAt)
	return args.Int(0), args.Error(1)
}

// fakeClient records the SMTP conversation instead of talking to a server.
type fakeClient struct {
	from    string
	rcpts   []string
	body    bytes.Buffer
	rcptErr error
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (c *fakeClient) Mail(from string) error { c.from = from; return nil }

func (c *fakeClient) Rcpt(to string) error {
	if c.rcptErr != nil {
		return c.rcptErr
	}
	c.rcpts = append(c.rcpts, to)
	return nil
}

func (c *fakeClient) Data() (io.WriteCloser, error) { return nopWriteCloser{&c.body}, nil }

func (c *fakeClient) Quit() error { return nil }

func (c *fakeClient) Close() error { return nil }

// fakeTransport hands out the fake client; connectErr simulates an
// unreachable SMTP server.
type fakeTransport struct {
	client     *fakeClient
	connectErr error
	connects   int
}

func (t *fakeTransport) Connect() (smtp.Client, error) {
	t.connects++
	if t.connectErr != nil {
		return nil, t.connectErr
	}
	return t.client, nil
}

func (t *fakeTransport) From() string { return "noreply@softech.example" }

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func str(s string) *string { return &s }

func testServiceInfo() *models.ServiceInfo {
	info := &models.ServiceInfo{
		CompanyName:  str("Acme Pvt Ltd"),
		ClientName:   str("Acme"),
		ProviderName: str("GoDaddy"),
	}
	info.ID = "svc-1"
	info.ServiceName = "acme.com"
	info.ServiceType = models.TypeDomainHosting
	info.EndDate = time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	return info
}

func newTestSender(repo *MockRepository, transport *fakeTransport, notify config.Notify) *SenderService {
	s := NewSenderService(repo, transport, notify, newNoopLogger())
	s.now = func() time.Time { return time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSendExpirationEmail_Success(t *testing.T) {
	repo := new(MockRepository)
	client := &fakeClient{}
	transport := &fakeTransport{client: client}
	sender := newTestSender(repo, transport, config.Notify{RecipientStrategy: "service"})

	repo.On("ReadServiceInfo", mock.Anything, "svc-1").Return(testServiceInfo(), nil).Once()
	repo.On("ListServiceRecipients", mock.Anything, "svc-1").Return([]models.EmailAddress{
		{ID: "e1", Email: "first@example.com"},
		{ID: "e2", Email: "second@example.com"},
	}, nil).Once()
	repo.On("SetLastEmailSent", mock.Anything, "svc-1",
		mock.MatchedBy(func(ts time.Time) bool { return !ts.IsZero() })).Return(1, nil).Once()

	err := sender.SendExpirationEmail(context.Background(), "svc-1")

	require.NoError(t, err)
	assert.Equal(t, 1, transport.connects)
	assert.Equal(t, []string{"first@example.com", "second@example.com"}, client.rcpts)
	assert.Contains(t, client.body.String(), "Service Expiration Reminder: acme.com")
	assert.Contains(t, client.body.String(), "GoDaddy")
	assert.Contains(t, client.body.String(), "Acme")
	repo.AssertExpectations(t)
}

func TestSendExpirationEmail_NoRecipientsSkips(t *testing.T) {
	repo := new(MockRepository)
	transport := &fakeTransport{client: &fakeClient{}}
	sender := newTestSender(repo, transport, config.Notify{RecipientStrategy: "service"})

	repo.On("ReadServiceInfo", mock.Anything, "svc-1").Return(testServiceInfo(), nil).Once()
	repo.On("ListServiceRecipients", mock.Anything, "svc-1").Return([]models.EmailAddress{}, nil).Once()

	err := sender.SendExpirationEmail(context.Background(), "svc-1")

	require.NoError(t, err)
	assert.Zero(t, transport.connects, "must not open an SMTP connection for zero recipients")
	repo.AssertNotCalled(t, "SetLastEmailSent", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSendExpirationEmail_NotFound(t *testing.T) {
	repo := new(MockRepository)
	transport := &fakeTransport{client: &fakeClient{}}
	sender := newTestSender(repo, transport, config.Notify{RecipientStrategy: "service"})

	repo.On("ReadServiceInfo", mock.Anything, "missing").
		Return(nil, fmt.Errorf("storage.ReadServiceInfo: %w", sql.ErrNoRows)).Once()

	err := sender.SendExpirationEmail(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Zero(t, transport.connects)
	repo.AssertExpectations(t)
}

func TestSendExpirationEmail_SendFailureKeepsServiceEligible(t *testing.T) {
	repo := new(MockRepository)
	transport := &fakeTransport{connectErr: errors.New("smtp unreachable")}
	sender := newTestSender(repo, transport, config.Notify{RecipientStrategy: "service"})

	repo.On("ReadServiceInfo", mock.Anything, "svc-1").Return(testServiceInfo(), nil).Once()
	repo.On("ListServiceRecipients", mock.Anything, "svc-1").Return([]models.EmailAddress{
		{ID: "e1", Email: "first@example.com"},
	}, nil).Once()

	err := sender.SendExpirationEmail(context.Background(), "svc-1")

	require.Error(t, err)
	repo.AssertNotCalled(t, "SetLastEmailSent", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSendExpirationEmail_AdminStrategy(t *testing.T) {
	repo := new(MockRepository)
	client := &fakeClient{}
	transport := &fakeTransport{client: client}
	sender := newTestSender(repo, transport, config.Notify{
		RecipientStrategy: "admin",
		AdminEmails:       "ops@example.com,boss@example.com",
	})

	repo.On("ReadServiceInfo", mock.Anything, "svc-1").Return(testServiceInfo(), nil).Once()
	repo.On("SetLastEmailSent", mock.Anything, "svc-1", mock.Anything).Return(1, nil).Once()

	err := sender.SendExpirationEmail(context.Background(), "svc-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"ops@example.com", "boss@example.com"}, client.rcpts)
	repo.AssertNotCalled(t, "ListServiceRecipients", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestHandleExpiringService(t *testing.T) {
	repo := new(MockRepository)
	transport := &fakeTransport{client: &fakeClient{}}
	sender := newTestSender(repo, transport, config.Notify{RecipientStrategy: "service"})

	t.Run("invalid message body", func(t *testing.T) {
		err := sender.HandleExpiringService([]byte("not json"))
		assert.Error(t, err)
	})

	t.Run("vanished service is not retried", func(t *testing.T) {
		repo.On("ReadServiceInfo", mock.Anything, "gone").
			Return(nil, fmt.Errorf("storage.ReadServiceInfo: %w", sql.ErrNoRows)).Once()

		err := sender.HandleExpiringService([]byte(`{"service_id":"gone"}`))
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
