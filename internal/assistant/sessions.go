package assistant

import "sync"

// SessionStore keeps one Conversation per chat surface, e.g. "page:finance"
// or "modal". Conversations live in memory only.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Conversation
	newConv  func() *Conversation
}

// NewSessionStore creates conversations answered by responder.
func NewSessionStore(responder Responder, opts ...ConversationOption) *SessionStore {
	return &SessionStore{
		sessions: map[string]*Conversation{},
		newConv:  func() *Conversation { return NewConversation(responder, opts...) },
	}
}

// Get returns the conversation for surface, starting one if needed.
func (s *SessionStore) Get(surface string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.sessions[surface]
	if !ok {
		conv = s.newConv()
		s.sessions[surface] = conv
	}
	return conv
}

// Snapshot returns the conversation for surface as it stands. A surface
// with no conversation yields a fresh welcome snapshot that is not kept.
func (s *SessionStore) Snapshot(surface string) Snapshot {
	s.mu.Lock()
	conv, ok := s.sessions[surface]
	s.mu.Unlock()
	if !ok {
		conv = s.newConv()
	}
	return conv.Snapshot()
}

// Reset discards the conversation for surface; the next Get starts afresh.
func (s *SessionStore) Reset(surface string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, surface)
}

// Len reports how many surfaces hold a conversation.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
