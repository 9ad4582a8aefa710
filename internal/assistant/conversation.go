package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"ai_manager_backend/internal/models"

	"github.com/google/uuid"
)

// State is the phase of a conversation.
type State string

const (
	StateIdle          State = "idle"
	StateAwaitingReply State = "awaiting-reply"
	StateErrorShown    State = "error-shown"
)

const (
	WelcomeMessage = "Hello! I'm your AI assistant. I can help you with business insights, data analysis, and answering questions about your management system. How can I assist you today?"
	ErrorMessage   = "Sorry, I encountered an error while processing your request. Please try again."

	defaultErrorDisplay = 5 * time.Second
)

var (
	// ErrReplyPending is returned by Send while an earlier message is unanswered.
	ErrReplyPending = errors.New("a reply is still pending")
	// ErrEmptyMessage is returned by Send for blank text.
	ErrEmptyMessage = errors.New("message is empty")
)

// Snapshot is a copy of a conversation at one instant.
type Snapshot struct {
	State    State                `json:"state"`
	Messages []models.ChatMessage `json:"messages"`
}

// Conversation is the message history of one chat surface. At most one
// message awaits a reply at a time.
type Conversation struct {
	mu           sync.Mutex
	responder    Responder
	messages     []models.ChatMessage
	state        State
	errorShownAt time.Time

	now          func() time.Time
	errorDisplay time.Duration
}

// ConversationOption customises a Conversation.
type ConversationOption func(*Conversation)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ConversationOption {
	return func(c *Conversation) { c.now = now }
}

// WithErrorDisplay sets how long the error state lasts before clearing to idle.
func WithErrorDisplay(d time.Duration) ConversationOption {
	return func(c *Conversation) { c.errorDisplay = d }
}

// NewConversation starts a conversation holding only the welcome message.
func NewConversation(responder Responder, opts ...ConversationOption) *Conversation {
	c := &Conversation{
		responder:    responder,
		now:          time.Now,
		errorDisplay: defaultErrorDisplay,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

// Send appends text as a user message and waits for the reply, which
// replaces a loading placeholder. Blank text and sends during
// awaiting-reply change nothing. A responder error removes the placeholder,
// appends an apology and is returned alongside it.
func (c *Conversation) Send(ctx context.Context, text, businessContext string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	c.mu.Lock()
	c.refreshLocked()
	if c.state == StateAwaitingReply {
		c.mu.Unlock()
		return models.ChatMessage{}, ErrReplyPending
	}
	now := c.now()
	c.messages = append(c.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: now,
	})
	placeholderID := uuid.NewString()
	c.messages = append(c.messages, models.ChatMessage{
		ID:        placeholderID,
		Role:      models.RoleAssistant,
		Timestamp: now,
		IsLoading: true,
	})
	c.state = StateAwaitingReply
	c.mu.Unlock()

	reply, err := c.responder.Respond(ctx, text, businessContext)

	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(placeholderID)
	if idx < 0 {
		// Cleared while waiting; the reply has nowhere to go.
		return models.ChatMessage{}, err
	}

	if err != nil {
		c.messages = append(c.messages[:idx], c.messages[idx+1:]...)
		apology := models.ChatMessage{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Content:   ErrorMessage,
			Timestamp: c.now(),
		}
		c.messages = append(c.messages, apology)
		c.state = StateErrorShown
		c.errorShownAt = c.now()
		return apology, err
	}

	answer := models.ChatMessage{
		ID:        placeholderID,
		Role:      models.RoleAssistant,
		Content:   reply.Text,
		Timestamp: c.now(),
		Mode:      reply.Mode,
	}
	c.messages[idx] = answer
	c.state = StateIdle
	return answer, nil
}

// Snapshot returns the current state and a copy of the history.
func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	messages := make([]models.ChatMessage, len(c.messages))
	copy(messages, c.messages)
	return Snapshot{State: c.state, Messages: messages}
}

// State returns the current state.
func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	return c.state
}

// Clear resets the history to the welcome message.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *Conversation) reset() {
	c.messages = []models.ChatMessage{{
		ID:        "welcome",
		Role:      models.RoleAssistant,
		Content:   WelcomeMessage,
		Timestamp: c.now(),
	}}
	c.state = StateIdle
	c.errorShownAt = time.Time{}
}

// refreshLocked lets error-shown lapse into idle once displayed long enough.
func (c *Conversation) refreshLocked() {
	if c.state == StateErrorShown && !c.now().Before(c.errorShownAt.Add(c.errorDisplay)) {
		c.state = StateIdle
	}
}

func (c *Conversation) indexOf(id string) int {
	for i := range c.messages {
		if c.messages[i].ID == id {
			return i
		}
	}
	return -1
}
