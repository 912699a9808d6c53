package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const jobCompletedQueue = "job.completed"

// QueuePublisher publishes job-completion events to RabbitMQ for downstream
// consumers (dashboard refresh, customer SMS). A connection is dialed per
// publish; the event volume here is one per completed job, and the caller
// treats any failure as non-fatal.

type QueuePublisher struct {
	url string
}

var _ interfaces.IEventPublisher = (*QueuePublisher)(nil)

// NewQueuePublisher reads RABBITMQ_URL (or AMQP_URL). Returns nil when neither
// is set, which disables event publishing.
func NewQueuePublisher() *QueuePublisher {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	if url == "" {
		return nil
	}
	return &QueuePublisher{url: url}
}

func (p *QueuePublisher) PublishJobCompleted(ctx context.Context, event entities.JobCompletedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("[events][rabbitmq] dial failed err=%v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("[events][rabbitmq] channel open failed err=%v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(jobCompletedQueue, true, false, false, false, nil); err != nil {
		log.Printf("[events][rabbitmq] queue declare failed err=%v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("[events][rabbitmq] marshal event failed err=%v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", jobCompletedQueue, false, false, pub); err != nil {
		log.Printf("[events][rabbitmq] publish failed err=%v", err)
		return err
	}
	log.Printf("[events][rabbitmq] published job.completed job_id=%s", event.JobID)
	return nil
}
