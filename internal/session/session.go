// Package session holds per-conversation transcripts in memory.
// Nothing is persisted across restarts.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/farmai/assistant/internal/model"
)

var (
	// ErrBusy is returned when a question arrives while the previous
	// one is still being answered. Sessions handle one turn at a time.
	ErrBusy = errors.New("session is busy answering a previous question")

	ErrNotFound = errors.New("session not found")
)

// State of the conversation loop.
type State int

const (
	StateIdle State = iota
	StateAwaitingResponse
)

// Session is one conversation. The transcript is display state; a
// truncated copy of it is fed back into prompts.
type Session struct {
	ID string

	mu         sync.Mutex
	state      State
	transcript []model.Message
}

// Begin moves the session to AWAITING_RESPONSE, rejecting concurrent turns.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return ErrBusy
	}
	s.state = StateAwaitingResponse
	return nil
}

// Finish records a completed turn and returns the session to IDLE.
func (s *Session) Finish(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = appendMessage(s.transcript, model.RoleUser, question)
	s.transcript = appendMessage(s.transcript, model.RoleAssistant, answer)
	s.state = StateIdle
}

// Fail records a failed turn with an apology and returns the session
// to IDLE. Prior turns remain visible.
func (s *Session) Fail(question, apology string) {
	s.Finish(question, apology)
}

// State returns the current loop state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the full transcript.
func (s *Session) Transcript() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Store keeps sessions in memory, keyed by UUID.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxMessages int
	maxTokens   int
}

func NewStore(maxMessages, maxTokens int) *Store {
	if maxMessages <= 0 {
		maxMessages = 12
	}
	if maxTokens <= 0 {
		maxTokens = 2000
	}
	return &Store{
		sessions:    make(map[string]*Session),
		maxMessages: maxMessages,
		maxTokens:   maxTokens,
	}
}

// GetOrCreate returns the session for id, creating a fresh one with a
// new UUID when id is empty or unknown.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return sess
		}
	}
	sess := &Session{ID: uuid.NewString()}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns an existing session or ErrNotFound.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// History returns the session transcript truncated to the store's
// message and token limits, suitable for prompt inclusion.
func (s *Store) History(sess *Session) []model.Message {
	return TruncateHistory(sess.Transcript(), s.maxTokens, s.maxMessages)
}

// TruncateHistory applies the message limit, then drops oldest messages
// until the token estimate fits. The most recent messages survive.
func TruncateHistory(history []model.Message, tokenLimit, messageLimit int) []model.Message {
	if len(history) == 0 {
		return history
	}
	if messageLimit > 0 && len(history) > messageLimit {
		history = history[len(history)-messageLimit:]
	}
	total := 0
	for _, m := range history {
		total += m.TokenCount
	}
	for total > tokenLimit && len(history) > 0 {
		total -= history[0].TokenCount
		history = history[1:]
	}
	return history
}

// EstimateTokens is a rough character-based token estimate.
func EstimateTokens(content string) int {
	return len(content)/4 + 1
}

func appendMessage(history []model.Message, role, content string) []model.Message {
	return append(history, model.Message{
		Role:       role,
		Content:    content,
		TokenCount: EstimateTokens(content),
		Timestamp:  time.Now(),
	})
}
