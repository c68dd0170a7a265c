package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=amqp.go -destination=mock_amqp.go -package=push

const (
	publishTimeout = 5 * time.Second
	routingPrefix  = "push."
)

// Publisher is the part of *amqp.Channel the dispatcher needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQP hands pushes to a gateway listening on a topic exchange. The routing
// key is "push.<notification type>".
type AMQP struct {
	publisher Publisher
	exchange  string
	conn      *amqp.Connection
	ch        *amqp.Channel
}

func NewAMQP(publisher Publisher, exchange string) *AMQP {
	return &AMQP{publisher: publisher, exchange: exchange}
}

// DialAMQP connects to url and declares exchange as a durable topic exchange.
func DialAMQP(url, exchange string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	a := NewAMQP(ch, exchange)
	a.conn, a.ch = conn, ch
	return a, nil
}

func (a *AMQP) Send(ctx context.Context, token, title, body string, relatedRequestID *int64, notificationType string, data map[string]string) error {
	msg := newMessage(token, title, body, relatedRequestID, notificationType, data)
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode push: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = a.publisher.PublishWithContext(publishCtx, a.exchange, routingPrefix+notificationType, false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         payload,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish push: %w", err)
	}
	return nil
}

func (a *AMQP) Close() error {
	if a.ch != nil {
		_ = a.ch.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
