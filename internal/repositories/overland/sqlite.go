package overland

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

type sqliteRepo struct {
	db           *sql.DB
	timeProvider clock.TimeProvider
}

// NewSQLite creates a SQLite-backed overland repository
func NewSQLite(db *sql.DB, timeProvider clock.TimeProvider) Repository {
	if db == nil {
		panic("sqlite db cannot be nil")
	}
	if timeProvider == nil {
		timeProvider = clock.System{}
	}
	return &sqliteRepo{db: db, timeProvider: timeProvider}
}

// Get returns the owner's saved state
func (r *sqliteRepo) Get(ctx context.Context, ownerID string) (*entities.OverlandState, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM overland_states WHERE owner_id = ?`, ownerID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get overland state: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overland state: %w", err)
	}
	return fromData(&data), nil
}

// Save upserts the owner's state
func (r *sqliteRepo) Save(ctx context.Context, ownerID string, state *entities.OverlandState) error {
	if err := validateForWrite(ownerID, state); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	payload, err := json.Marshal(toData(ownerID, state, now))
	if err != nil {
		return fmt.Errorf("failed to marshal overland state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO overland_states (owner_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ownerID, string(payload), now.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to store overland state: %w", err)
	}
	return nil
}
