package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

// ISessionStore abstracts the in-memory completion session store.
//
// Sessions are dialog-scoped: entries expire after a TTL of inactivity, which
// is the server-side analogue of the operator abandoning the dialog. A store
// must be safe for concurrent use.

type ISessionStore interface {
	Put(ctx context.Context, s entities.CompletionSession) error
	Get(ctx context.Context, id string) (entities.CompletionSession, bool)
	Delete(ctx context.Context, id string)
}
