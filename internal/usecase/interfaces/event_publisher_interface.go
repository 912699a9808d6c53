package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

// IEventPublisher publishes domain events for downstream consumers (messaging,
// dashboards). Publishing is best-effort after a successful dispatch.

type IEventPublisher interface {
	PublishJobCompleted(ctx context.Context, event entities.JobCompletedEvent) error
}
