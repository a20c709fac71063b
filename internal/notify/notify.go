// Package notify delivers organizer emails. Delivery is fire-and-forget:
// failures are logged, never returned.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Email is the message handed to the mail delivery pipeline.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// LogNotifier writes every email to a logger instead of sending it.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs a LogNotifier. A nil logger means slog.Default().
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// SendEmail logs the email at info level.
func (n *LogNotifier) SendEmail(ctx context.Context, to, subject, body string) {
	n.logger.InfoContext(ctx, "sending email",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)
}

// AMQPNotifier publishes emails as persistent JSON messages to a durable
// RabbitMQ queue, where a mail worker picks them up.
type AMQPNotifier struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	ch      *amqp.Channel
	queue   string
	timeout time.Duration
}

// NewAMQPNotifier dials url and declares queue.
func NewAMQPNotifier(url, queue string, timeout time.Duration) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, queue: queue, timeout: timeout}, nil
}

// SendEmail publishes the email. Errors are logged.
func (n *AMQPNotifier) SendEmail(ctx context.Context, to, subject, body string) {
	pub, err := newPublishing(Email{To: to, Subject: subject, Body: body})
	if err != nil {
		slog.Error("rabbitmq: marshal email failed", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.ch.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		slog.Error("rabbitmq: publish failed",
			slog.String("queue", n.queue),
			slog.String("to", to),
			slog.String("error", err.Error()),
		)
		return
	}
	slog.Debug("email queued", slog.String("queue", n.queue), slog.String("to", to))
}

// Close closes the channel and the connection.
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	_ = n.ch.Close()
	return n.conn.Close()
}

func newPublishing(e Email) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}
