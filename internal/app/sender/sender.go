// Package sender assembles the mail sender binary: storage, the RabbitMQ
// consumer, the SMTP transport and the sender service.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/Aaryashkc/Client-domain-management/internal/config"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/rabbitmq"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/smtp"
	senderservice "github.com/Aaryashkc/Client-domain-management/internal/services/sender"
	"github.com/Aaryashkc/Client-domain-management/internal/storage/repository"
)

// App is the assembled sender binary.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	db            *repository.Storage
	logger        *slog.Logger
}

// New connects storage and RabbitMQ and wires the sender service.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)
	senderService := senderservice.NewSenderService(db, transport, cfg.Notify, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		db:            db,
		logger:        logger,
	}, nil
}

// Run consumes the expiring-services queue until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.ExpiringQueue, a.senderService.HandleExpiringService)
	if err != nil {
		a.logger.Error("failed to start expiring services consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	_ = a.db.DB.Close()

	return nil
}
