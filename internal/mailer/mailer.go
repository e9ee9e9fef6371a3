// Package mailer publishes outbound mail messages to the mail queue. Actual
// SMTP delivery happens in cmd/mail, which consumes the queue.
package mailer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/edutech-dev/board/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const QueueName = "board_mail_queue"

type Publisher interface {
	Publish(ctx context.Context, msg domain.MailMessage) error
}

// AMQPPublisher publishes mail messages over a RabbitMQ channel.
type AMQPPublisher struct {
	channel        *amqp.Channel
	publishTimeout time.Duration
}

func NewAMQPPublisher(ch *amqp.Channel, publishTimeout time.Duration) *AMQPPublisher {
	return &AMQPPublisher{
		channel:        ch,
		publishTimeout: publishTimeout,
	}
}

// DeclareQueue declares the durable mail queue on the given channel. Both the
// web server and the mail consumer call this so either side can start first.
func DeclareQueue(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	return err
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
