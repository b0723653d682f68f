package session

import (
	"context"
	"errors"
	"time"

	"github.com/leeway-ai/store-assistant/internal/order"
)

var (
	ErrInvalidConfig = errors.New("invalid session store configuration")
	ErrInvalidDriver = errors.New("invalid session store driver")
)

// Message is one turn of the conversation history.
type Message struct {
	Role      string         `json:"role"` // "user" | "assistant"
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Session is all per-session conversational state. It is owned by exactly
// one conversation; access must be serialized per session key (see Locker).
type Session struct {
	ID           string         `json:"id"`
	State        State          `json:"state"`
	Context      map[string]any `json:"context"`
	History      []Message      `json:"history"`
	PendingOrder *order.Draft   `json:"pending_order,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		State:     StateInitial,
		Context:   map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AppendMessage adds to the history. Append-only: history is never reordered
// or trimmed here.
func (s *Session) AppendMessage(role, content string, metadata map[string]any) {
	s.History = append(s.History, Message{
		Role:      role,
		Content:   content,
		Metadata:  metadata,
		Timestamp: time.Now(),
	})
}

// SetContextValue stashes a scratch value scoped to this session.
func (s *Session) SetContextValue(key string, value any) {
	if s.Context == nil {
		s.Context = map[string]any{}
	}
	s.Context[key] = value
}

// GetContextValue returns the stored value or the default.
func (s *Session) GetContextValue(key string, def any) any {
	if v, ok := s.Context[key]; ok {
		return v
	}
	return def
}

// InOrderingFlow reports whether the session is mid order collection.
func (s *Session) InOrderingFlow() bool {
	return s.State.IsOrdering()
}

// Reset clears context and the pending order and returns to the initial
// state. History stays: it is append-only for the session's lifetime.
func (s *Session) Reset() {
	s.State = StateInitial
	s.Context = map[string]any{}
	s.PendingOrder = nil
}

// Store owns session state. Get creates a session lazily on first
// reference; Save persists the mutated session.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
	Close() error
}
