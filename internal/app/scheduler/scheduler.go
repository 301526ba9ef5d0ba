// Package scheduler assembles the daily expiration scan binary: storage,
// the RabbitMQ publisher and the scheduler service.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/Aaryashkc/Client-domain-management/internal/config"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/rabbitmq"
	schedulerservice "github.com/Aaryashkc/Client-domain-management/internal/services/scheduler"
	"github.com/Aaryashkc/Client-domain-management/internal/storage/repository"
)

// App is the assembled scheduler binary.
type App struct {
	schedulerService *schedulerservice.SchedulerService
	sendTime         string
	conn             *amqp.Connection
	ch               *amqp.Channel
	db               *repository.Storage
	logger           *slog.Logger
}

func waitForDB(db *repository.Storage) error {
	for range 10 {
		if err := repository.CheckDatabaseReady(db); err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}

// New connects RabbitMQ and storage and wires the scheduler service.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}

	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		closeResources(ch, conn, logger)
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}
	if err := waitForDB(db); err != nil {
		closeResources(ch, conn, logger)
		return nil, err
	}

	publisher := rabbitmq.NewPublisher(ch)
	schedulerService := schedulerservice.NewSchedulerService(db, publisher, logger, cfg.Notify.ThresholdDays)

	return &App{
		schedulerService: schedulerService,
		sendTime:         cfg.Notify.SendTime,
		conn:             conn,
		ch:               ch,
		db:               db,
		logger:           logger,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", slog.Any("err", err))
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", slog.Any("err", err))
		}
	}
}

// Run blocks on the daily scan loop until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	err := a.schedulerService.RunDaily(ctx, a.sendTime)

	a.logger.Info("shutting down scheduler service")
	closeResources(a.ch, a.conn, a.logger)
	_ = a.db.DB.Close()

	return err
}
