package messaging

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/greenwheels/console-api/internal/core/ports"
)

var _ ports.SessionEventPublisher = (*RabbitMQBroker)(nil)

// PublishSessionEvent delivers a session lifecycle event to the queue. The
// publish goes through the circuit breaker so a dead broker fails fast
// instead of stalling login.
func (rmq *RabbitMQBroker) PublishSessionEvent(ctx context.Context, evt ports.SessionEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	// Respect context deadline
	if deadline, ok := ctx.Deadline(); ok {
		if time.Until(deadline) <= 0 {
			return ctx.Err()
		}
	}

	_, err = rmq.cb.Execute(func() (interface{}, error) {
		err := rmq.ch.PublishWithContext(
			ctx,
			"",            // exchange (default)
			rmq.queueName, // routing key == queue name
			false,         // mandatory
			false,         // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Body:         body,
			},
		)
		return nil, err
	})
	return err
}

// NopPublisher drops all events. It stands in when no broker is configured.
type NopPublisher struct{}

var _ ports.SessionEventPublisher = NopPublisher{}

func (NopPublisher) PublishSessionEvent(context.Context, ports.SessionEvent) error {
	return nil
}
