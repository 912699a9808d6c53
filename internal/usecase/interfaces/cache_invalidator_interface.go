package interfaces

import "context"

// ICacheInvalidator marks the dashboard's cached completion views ("today's
// jobs" and "today's deposits") stale after a successful dispatch so they get
// refetched. Invalidation is best-effort; failures never roll back a dispatch.

type ICacheInvalidator interface {
	InvalidateCompletionViews(ctx context.Context) error
}
