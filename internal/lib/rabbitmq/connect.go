// Package rabbitmq wires the notification queue between the daily
// scheduler and the mail sender.
package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Exchange and routing used by the notification pipeline.
const (
	NotificationsExchange = "notifications"
	ExpiringQueue         = "notifications.expiring"
	ExpiringRoutingKey    = "expiring"
)

// Connect dials RabbitMQ with retries; broker startup is usually slower
// than ours under docker compose.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel opens a channel, declares the notifications exchange and
// the expiring queue, and binds them.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: failed to set QoS: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		NotificationsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = ch.QueueDeclare(
		ExpiringQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, ExpiringQueue, err)
	}

	err = ch.QueueBind(ExpiringQueue, ExpiringRoutingKey, NotificationsExchange, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to bind queue %s: %w", op, ExpiringQueue, err)
	}

	return ch, nil
}
