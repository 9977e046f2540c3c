package model

import "time"

// Document is a knowledge base entry. Immutable once loaded.
type Document struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Source   string `json:"source,omitempty"`
	Category string `json:"category,omitempty"`
	Crop     string `json:"crop,omitempty"`
}

// Chunk is an indexed slice of a document, carrying enough metadata
// for source attribution in answers.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`
	Index      int    `json:"index"`
	Text       string `json:"text"`
	Title      string `json:"title"`
	Source     string `json:"source"`
}

// Message is a single conversation turn kept in the session transcript.
type Message struct {
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	TokenCount int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
}

// SourceRef points at a document that contributed to an answer.
type SourceRef struct {
	Title  string  `json:"title"`
	Source string  `json:"source"`
	Score  float32 `json:"score"`
}

type ChatRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"sessionId,omitempty"`
	TopK      int    `json:"topK,omitempty"`
}

type ChatResponse struct {
	Answer    string      `json:"answer"`
	Sources   []SourceRef `json:"sources"`
	SessionID string      `json:"sessionId"`
}

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
