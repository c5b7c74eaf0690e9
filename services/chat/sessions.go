package chat

import (
	"sync"

	"github.com/oceanus-labs/argo-backend/models"
)

// defaultSessionID groups requests that carry no session id.
const defaultSessionID = "default"

// SessionStore holds per-session conversation histories for the
// lifetime of the process. Histories are written on every answered
// exchange but are not yet fed back into prompts.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ConversationHistory
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.ConversationHistory),
	}
}

// AppendExchange records one question/answer pair on the session's
// history, creating the session on first use. An empty session id maps
// to the shared default session.
func (s *SessionStore) AppendExchange(sessionID, question, answer string) {
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.sessions[sessionID]
	if !ok {
		h = &models.ConversationHistory{}
		s.sessions[sessionID] = h
	}
	h.AppendExchange(question, answer)
}

// History returns the session's history, or nil if the session has
// never answered an exchange.
func (s *SessionStore) History(sessionID string) *models.ConversationHistory {
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions[sessionID]
}
