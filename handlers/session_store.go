package handlers

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"shadequote/configurator"
)

// SessionEntry is one live wizard session. LineID is set when the session
// edits an existing quote line.
type SessionEntry struct {
	ID      string
	LineID  string
	QuoteID string
	Session *configurator.Session
}

// SessionStore keeps the most recently used sessions in memory. The least
// recently used session is evicted once the store is full.
type SessionStore struct {
	cache *lru.Cache[string, *SessionEntry]
}

func NewSessionStore(size int) (*SessionStore, error) {
	cache, err := lru.New[string, *SessionEntry](size)
	if err != nil {
		return nil, err
	}
	return &SessionStore{cache: cache}, nil
}

// Add stores a session under a new random id.
func (s *SessionStore) Add(session *configurator.Session, quoteID, lineID string) *SessionEntry {
	entry := &SessionEntry{
		ID:      uuid.NewString(),
		LineID:  lineID,
		QuoteID: quoteID,
		Session: session,
	}
	s.cache.Add(entry.ID, entry)
	return entry
}

func (s *SessionStore) Get(id string) (*SessionEntry, bool) {
	return s.cache.Get(id)
}

func (s *SessionStore) Remove(id string) {
	s.cache.Remove(id)
}

func (s *SessionStore) Len() int {
	return s.cache.Len()
}
