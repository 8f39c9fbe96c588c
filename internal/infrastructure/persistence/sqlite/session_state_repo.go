package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/domain/repository"
	"github.com/tabwin/tabwin/internal/logging"
)

type sessionStateRepo struct {
	db *sql.DB
}

// NewSessionStateRepository creates a session state repository backed by the
// given database connection.
func NewSessionStateRepository(db *sql.DB) repository.SessionStateRepository {
	return &sessionStateRepo{db: db}
}

// SaveSnapshot saves or replaces the snapshot for its session.
func (r *sessionStateRepo) SaveSnapshot(ctx context.Context, state *entity.SessionState) error {
	log := logging.FromContext(ctx)
	if state == nil {
		return errors.New("session state cannot be nil")
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal session state")
		return err
	}

	log.Debug().
		Str("session_id", string(state.SessionID)).
		Int("tab_count", state.TabCount()).
		Msg("saving session state snapshot")

	const query = `
		INSERT INTO session_states (session_id, state_json, version, tab_count, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			state_json = excluded.state_json,
			version = excluded.version,
			tab_count = excluded.tab_count,
			updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query,
		string(state.SessionID),
		string(stateJSON),
		int64(state.Version),
		int64(state.TabCount()),
		state.SavedAt,
	); err != nil {
		return fmt.Errorf("upsert session state: %w", err)
	}

	return nil
}

// GetSnapshot returns the latest snapshot for a session, nil if none.
func (r *sessionStateRepo) GetSnapshot(ctx context.Context, sessionID entity.SessionID) (*entity.SessionState, error) {
	const query = `SELECT state_json FROM session_states WHERE session_id = ?`

	var stateJSON string
	err := r.db.QueryRowContext(ctx, query, string(sessionID)).Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var state entity.SessionState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("session_id", string(sessionID)).
			Msg("failed to unmarshal session state")
		return nil, err
	}

	return &state, nil
}

// ListSnapshots returns snapshots ordered by save time, newest first.
// A limit of zero or less returns all snapshots.
func (r *sessionStateRepo) ListSnapshots(ctx context.Context, limit int) ([]*entity.SessionState, error) {
	query := `SELECT session_id, state_json FROM session_states ORDER BY updated_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, int64(limit))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var states []*entity.SessionState
	for rows.Next() {
		var sessionID, stateJSON string
		if err := rows.Scan(&sessionID, &stateJSON); err != nil {
			return nil, err
		}

		var state entity.SessionState
		if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
			logging.FromContext(ctx).Warn().Err(err).
				Str("session_id", sessionID).
				Msg("skipping corrupted session state")
			continue
		}
		states = append(states, &state)
	}

	return states, rows.Err()
}

// DeleteSnapshot removes a session's snapshot.
func (r *sessionStateRepo) DeleteSnapshot(ctx context.Context, sessionID entity.SessionID) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("session_id", string(sessionID)).Msg("deleting session state snapshot")

	_, err := r.db.ExecContext(ctx, `DELETE FROM session_states WHERE session_id = ?`, string(sessionID))
	return err
}
