package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const SessionKey contextKey = "configuratorSession"

// GetSession extracts the session loaded by SessionMiddleware.
func GetSession(r *http.Request) *SessionEntry {
	if val, ok := r.Context().Value(SessionKey).(*SessionEntry); ok {
		return val
	}
	return nil
}

// SessionMiddleware reads the {id} path value, loads the session from the
// store and stores it in the request context. Unknown or evicted sessions
// get a 404 before any handler runs.
func SessionMiddleware(d *Deps) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		entry, ok := d.Sessions.Get(id)
		if !ok {
			log.Printf("middleware: session %q not found", id)
			return respondError(e, errSessionNotFound)
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, entry)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// requireSession returns the session from the context or writes a 404.
func requireSession(e *core.RequestEvent) (*SessionEntry, bool, error) {
	entry := GetSession(e.Request)
	if entry == nil {
		return nil, false, respondError(e, errSessionNotFound)
	}
	return entry, true, nil
}
