// README: Per-user session registry; one engine per active chat session.
package bot

import "sync"

// Manager hands out the dialogue engine for a user, creating it on first
// contact. Sessions are independent; there is no cross-session state.
type Manager struct {
	mu       sync.Mutex
	collab   Collaborator
	sessions map[string]*Engine
}

func NewManager(collab Collaborator) *Manager {
	return &Manager{
		collab:   collab,
		sessions: make(map[string]*Engine),
	}
}

// Session returns the engine for uid, creating a fresh one (with the opening
// greeting) when none exists. userName is only used at creation; it feeds the
// generated itinerary's personalization and is never asked as a question.
func (m *Manager) Session(uid, userName string) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[uid]; ok {
		return e
	}
	e := NewEngine(m.collab, userName)
	m.sessions[uid] = e
	return e
}

// Peek returns the engine for uid without creating one.
func (m *Manager) Peek(uid string) (*Engine, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[uid]
	return e, ok
}

// Drop discards the user's session so the next message starts over with a
// fresh greeting. Dropping an absent session is a no-op.
func (m *Manager) Drop(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, uid)
}
