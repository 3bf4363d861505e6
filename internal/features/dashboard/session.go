package dashboard

import "sync"

// Session is the in-memory widget state for one signed-in user. It replaces
// the module-level globals the browser client kept: every engine operation
// receives the session explicitly instead of reaching for shared state.
type Session struct {
	UserID string

	mu      sync.Mutex
	widgets []Widget
	loaded  bool // initial remote load completed
}

// snapshot returns a copy of the widget list for callers outside the lock.
func (s *Session) snapshot() []Widget {
	out := make([]Widget, len(s.widgets))
	copy(out, s.widgets)
	return out
}

// Widgets returns a copy of the session's current widget list.
func (s *Session) Widgets() []Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SessionManager hands out one session per user id.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Session returns the user's session, creating it on first use.
func (m *SessionManager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		sess = &Session{UserID: userID}
		m.sessions[userID] = sess
	}
	return sess
}
