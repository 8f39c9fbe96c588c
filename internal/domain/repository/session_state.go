// Package repository declares persistence ports for the domain layer.
package repository

import (
	"context"

	"github.com/tabwin/tabwin/internal/domain/entity"
)

// SessionStateRepository stores per-session tab snapshots.
type SessionStateRepository interface {
	// SaveSnapshot saves or replaces the snapshot for its session.
	SaveSnapshot(ctx context.Context, state *entity.SessionState) error
	// GetSnapshot returns the latest snapshot for a session, nil if none.
	GetSnapshot(ctx context.Context, sessionID entity.SessionID) (*entity.SessionState, error)
	// ListSnapshots returns snapshots ordered by save time, newest first.
	ListSnapshots(ctx context.Context, limit int) ([]*entity.SessionState, error)
	// DeleteSnapshot removes a session's snapshot.
	DeleteSnapshot(ctx context.Context, sessionID entity.SessionID) error
}
