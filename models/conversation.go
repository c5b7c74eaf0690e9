package models

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// maxHistoryTurns caps the rolling conversation log. When exceeded, the
// oldest user/model exchange (two turns) is dropped together.
const maxHistoryTurns = 20

// ConversationTurn is a single utterance in the rolling conversation log.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationHistory is an ordered, bounded sequence of turns. It is
// written on every answer-producing path but is not currently read back
// into prompts. Not safe for concurrent use; callers serialize access.
type ConversationHistory struct {
	turns []ConversationTurn
}

// AppendExchange records one user/model exchange, evicting the oldest
// exchange when the cap is exceeded.
func (h *ConversationHistory) AppendExchange(question, answer string) {
	now := time.Now()
	h.turns = append(h.turns,
		ConversationTurn{Role: RoleUser, Text: question, CreatedAt: now},
		ConversationTurn{Role: RoleModel, Text: answer, CreatedAt: now},
	)
	if len(h.turns) > maxHistoryTurns {
		h.turns = h.turns[2:]
	}
}

// Len returns the number of turns currently retained.
func (h *ConversationHistory) Len() int {
	return len(h.turns)
}

// Turns returns a copy of the retained turns, oldest first.
func (h *ConversationHistory) Turns() []ConversationTurn {
	out := make([]ConversationTurn, len(h.turns))
	copy(out, h.turns)
	return out
}
