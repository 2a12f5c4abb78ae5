package characters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/storage/sqlite"
)

// sqliteRepo implements the Repository interface on the shared SQLite handle
type sqliteRepo struct {
	db           *sql.DB
	timeProvider clock.TimeProvider
}

// NewSQLite creates a SQLite-backed character repository
func NewSQLite(db *sql.DB, timeProvider clock.TimeProvider) Repository {
	if db == nil {
		panic("sqlite db cannot be nil")
	}
	if timeProvider == nil {
		timeProvider = clock.System{}
	}
	return &sqliteRepo{db: db, timeProvider: timeProvider}
}

// Create stores a new character
func (r *sqliteRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	if char.CreatedAt == 0 {
		char.CreatedAt = now.UnixMilli()
	}
	payload, err := json.Marshal(toData(char, now))
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO characters (id, owner_id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		char.ID, char.OwnerID, string(payload), char.CreatedAt, now.UnixMilli())
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
				WithMeta("character_id", char.ID)
		}
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

// Get retrieves a character by ID
func (r *sqliteRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM characters WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return decode(payload)
}

// ListByOwner retrieves all characters for a specific owner
func (r *sqliteRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM characters WHERE owner_id = ? ORDER BY created_at DESC, id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	characters := make([]*entities.Character, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		char, err := decode(payload)
		if err != nil {
			return nil, err
		}
		characters = append(characters, char)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

// Update replaces an existing character, keeping its creation time
func (r *sqliteRepo) Update(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	existing, err := r.Get(ctx, char.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != char.OwnerID {
		return notFound(char.ID)
	}

	now := r.timeProvider.Now()
	data := toData(char, now)
	data.CreatedAt = existing.CreatedAt
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE characters SET data = ?, updated_at = ? WHERE id = ?`,
		string(payload), now.UnixMilli(), char.ID)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

// Delete removes a character
func (r *sqliteRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(id)
	}
	return nil
}

func decode(payload string) (*entities.Character, error) {
	var data Data
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return fromData(&data), nil
}
