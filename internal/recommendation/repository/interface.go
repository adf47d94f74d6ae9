package repository

import (
	"context"

	"project-planner/internal/model"
)

// ConversationRepository keeps a bounded, ordered history of turns per user.
//
//go:generate mockery --name ConversationRepository
type ConversationRepository interface {
	// AddMessage appends one message, evicting the oldest when the history is full.
	AddMessage(ctx context.Context, userID string, role model.Role, content string)

	// AddMessages appends msgs in order as a single update.
	AddMessages(ctx context.Context, userID string, msgs ...model.Message)

	// GetContext returns a copy of the user's history, oldest first.
	// Unknown users get an empty, non-nil slice.
	GetContext(ctx context.Context, userID string) []model.Message
}

// ResultRepository holds the latest generated recommendation per user.
//
//go:generate mockery --name ResultRepository
type ResultRepository interface {
	// SetLatest overwrites the user's latest result.
	SetLatest(ctx context.Context, userID string, artifact string)

	// GetLatest returns ErrNotFound when the user has no result yet.
	GetLatest(ctx context.Context, userID string) (string, error)
}
