package security

import (
	"sync"

	"github.com/parrotls/parrotls/internal/model"
)

// SessionTracker caches the first-seen ClientHelloConfig skeleton for each
// resumable session (keyed by session id — a PSK identity or session
// ticket), so the orchestrator can reproduce that same skeleton on
// subsequent handshakes within the session, varying only the per-connection
// reseed (spec.md §4.6 "Session-resumption consistency").
type SessionTracker struct {
	mu       sync.Mutex
	sessions map[string]model.ClientHelloConfig
}

// NewSessionTracker returns an empty tracker.
func NewSessionTracker() *SessionTracker {
	return &SessionTracker{sessions: make(map[string]model.ClientHelloConfig)}
}

// FirstSeen returns the skeleton recorded for sessionID, if any, and
// records cfg as that skeleton when none exists yet. The returned bool is
// true when an existing skeleton was found (and cfg was ignored).
func (t *SessionTracker) FirstSeen(sessionID string, cfg model.ClientHelloConfig) (model.ClientHelloConfig, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.sessions[sessionID]; ok {
		return existing.Clone(), true
	}
	t.sessions[sessionID] = cfg.Clone()
	return cfg, false
}

// Invalidate drops the tracked skeleton for sessionID (explicit reset).
func (t *SessionTracker) Invalidate(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, sessionID)
}
