package models

import "time"

// ChatRole distinguishes the two authors of a conversation.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ReplyMode records which path produced an assistant reply.
type ReplyMode string

const (
	ModeAI           ReplyMode = "ai"
	ModeDemo         ReplyMode = "demo"
	ModeDemoFallback ReplyMode = "demo_fallback"
)

// ChatMessage is one entry of a chat surface's history.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsLoading bool      `json:"isLoading,omitempty"`
	Mode      ReplyMode `json:"mode,omitempty"`
}

// TokenUsage mirrors the usage block of a chat completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
