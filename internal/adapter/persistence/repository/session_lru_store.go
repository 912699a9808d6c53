package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const (
	defaultSessionTTL      = 2 * time.Hour
	defaultSessionCapacity = 1024
)

// SessionLRUStore keeps completion sessions in an expiring in-memory LRU.
//
// Sessions are dialog-scoped and never shared across instances, so process
// memory is the right home; the TTL reaps sessions whose dialog was abandoned
// without an explicit close. Put refreshes the TTL.

type SessionLRUStore struct {
	cache *expirable.LRU[string, entities.CompletionSession]
}

var _ interfaces.ISessionStore = (*SessionLRUStore)(nil)

// NewSessionLRUStore reads SESSION_TTL (Go duration) and SESSION_CAPACITY.
func NewSessionLRUStore() *SessionLRUStore {
	ttl := defaultSessionTTL
	if v := getenvDefault("SESSION_TTL", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	capacity := defaultSessionCapacity
	if v := getenvDefault("SESSION_CAPACITY", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			capacity = n
		}
	}
	return &SessionLRUStore{
		cache: expirable.NewLRU[string, entities.CompletionSession](capacity, nil, ttl),
	}
}

func (s *SessionLRUStore) Put(_ context.Context, session entities.CompletionSession) error {
	s.cache.Add(session.ID, session)
	return nil
}

func (s *SessionLRUStore) Get(_ context.Context, id string) (entities.CompletionSession, bool) {
	return s.cache.Get(id)
}

func (s *SessionLRUStore) Delete(_ context.Context, id string) {
	s.cache.Remove(id)
}
