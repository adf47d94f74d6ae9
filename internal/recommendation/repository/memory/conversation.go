package memory

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"project-planner/internal/model"
	"project-planner/internal/recommendation/repository"
)

// ConversationStore is the in-memory ConversationRepository.
// The store mutex only guards user lookup and creation; each user's
// history carries its own lock, so writers for different users never contend
// on history mutation.
type ConversationStore struct {
	mu         sync.Mutex
	users      *expirable.LRU[string, *history]
	maxHistory int
}

var _ repository.ConversationRepository = (*ConversationStore)(nil)

// NewConversationStore creates an empty store.
func NewConversationStore(opt repository.Options) *ConversationStore {
	opt = normalize(opt)
	return &ConversationStore{
		users:      newUserLRU[*history](opt),
		maxHistory: opt.MaxHistory,
	}
}

func (s *ConversationStore) AddMessage(ctx context.Context, userID string, role model.Role, content string) {
	s.AddMessages(ctx, userID, model.Message{Role: role, Content: content})
}

func (s *ConversationStore) AddMessages(ctx context.Context, userID string, msgs ...model.Message) {
	if len(msgs) == 0 {
		return
	}

	h := s.getOrCreate(userID)

	h.mu.Lock()
	h.push(msgs...)
	h.mu.Unlock()
}

func (s *ConversationStore) GetContext(ctx context.Context, userID string) []model.Message {
	h, ok := s.users.Get(userID)
	if !ok {
		return []model.Message{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot()
}

// Len returns the number of users currently tracked.
func (s *ConversationStore) Len() int {
	return s.users.Len()
}

// getOrCreate returns the user's history, creating it on first use. Re-adding
// an existing entry refreshes its TTL.
func (s *ConversationStore) getOrCreate(userID string) *history {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.users.Peek(userID)
	if !ok {
		h = newHistory(s.maxHistory)
	}
	s.users.Add(userID, h)
	return h
}
