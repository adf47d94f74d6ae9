package memory

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"project-planner/internal/recommendation/repository"
)

// ResultStore is the in-memory ResultRepository: one slot per user.
type ResultStore struct {
	latest *expirable.LRU[string, string]
}

var _ repository.ResultRepository = (*ResultStore)(nil)

// NewResultStore creates an empty store. Only MaxUsers and UserTTL are used.
func NewResultStore(opt repository.Options) *ResultStore {
	return &ResultStore{latest: newUserLRU[string](opt)}
}

func (s *ResultStore) SetLatest(ctx context.Context, userID string, artifact string) {
	s.latest.Add(userID, artifact)
}

func (s *ResultStore) GetLatest(ctx context.Context, userID string) (string, error) {
	artifact, ok := s.latest.Get(userID)
	if !ok {
		return "", repository.ErrNotFound
	}
	return artifact, nil
}

// Len returns the number of users with a stored result.
func (s *ResultStore) Len() int {
	return s.latest.Len()
}
