package campaigns

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

type sqliteRepo struct {
	db           *sql.DB
	timeProvider clock.TimeProvider
}

// NewSQLite creates a SQLite-backed campaign repository
func NewSQLite(db *sql.DB, timeProvider clock.TimeProvider) Repository {
	if db == nil {
		panic("sqlite db cannot be nil")
	}
	if timeProvider == nil {
		timeProvider = clock.System{}
	}
	return &sqliteRepo{db: db, timeProvider: timeProvider}
}

// NextNumber reserves the owner's next campaign number
func (r *sqliteRepo) NextNumber(ctx context.Context, ownerID string) (int, error) {
	if ownerID == "" {
		return 0, dnderr.InvalidArgument("owner ID is required")
	}

	var n int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO campaign_sequences (owner_id, last_number) VALUES (?, 1)
		ON CONFLICT(owner_id) DO UPDATE SET last_number = last_number + 1
		RETURNING last_number`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve campaign number: %w", err)
	}
	return n, nil
}

// Create stores a new campaign
func (r *sqliteRepo) Create(ctx context.Context, campaign *entities.Campaign) error {
	if err := validateForWrite(campaign); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	if campaign.CreatedAt == 0 {
		campaign.CreatedAt = now.UnixMilli()
	}
	payload, err := json.Marshal(toData(campaign, now))
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO campaigns (id, owner_id, number, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		campaign.ID, campaign.OwnerID, campaign.Number, string(payload), campaign.CreatedAt, now.UnixMilli())
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return dnderr.AlreadyExistsf("campaign '%s' already exists", campaign.ID).
				WithMeta("campaign_id", campaign.ID).
				WithMeta("campaign_number", campaign.Number)
		}
		return fmt.Errorf("failed to insert campaign: %w", err)
	}
	return nil
}

// Get retrieves a campaign by ID
func (r *sqliteRepo) Get(ctx context.Context, id string) (*entities.Campaign, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("campaign ID is required")
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM campaigns WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return decode(payload)
}

// ListByOwner retrieves all campaigns for an owner
func (r *sqliteRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Campaign, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM campaigns WHERE owner_id = ? ORDER BY number DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*entities.Campaign, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		c, err := decode(payload)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// Update replaces an existing campaign, keeping its number and creation time
func (r *sqliteRepo) Update(ctx context.Context, campaign *entities.Campaign) error {
	if err := validateForWrite(campaign); err != nil {
		return err
	}

	existing, err := r.Get(ctx, campaign.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != campaign.OwnerID {
		return notFound(campaign.ID)
	}

	now := r.timeProvider.Now()
	data := toData(campaign, now)
	data.Number = existing.Number
	data.CreatedAt = existing.CreatedAt
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE campaigns SET data = ?, updated_at = ? WHERE id = ?`,
		string(payload), now.UnixMilli(), campaign.ID)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return nil
}

// Delete removes a campaign
func (r *sqliteRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("campaign ID is required")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(id)
	}
	return nil
}

func decode(payload string) (*entities.Campaign, error) {
	var data Data
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}
	return fromData(&data), nil
}
