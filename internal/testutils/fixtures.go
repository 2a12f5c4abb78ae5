package testutils

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leohylee/tes-companion/internal/entities"
	"github.com/leohylee/tes-companion/internal/storage/sqlite"
)

// CreateTestCharacter creates a novice Nord warrior-type character
func CreateTestCharacter(id, ownerID, name string) *entities.Character {
	return &entities.Character{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Race:        entities.RaceNord,
		RaceVariant: 1,
		ClassID:     entities.ClassDragonknight,
		Skills: []entities.Skill{
			entities.NewSkill(entities.SkillHeavyArmor),
			entities.NewSkill(entities.SkillTwoHanded),
		},
	}
}

// CreateTestCampaign creates a fresh campaign for the given party
func CreateTestCampaign(id, ownerID string, number int, characterIDs ...string) *entities.Campaign {
	return entities.NewCampaign(id, ownerID, number, characterIDs)
}

// CreateTestSQLite opens a migrated database in a temporary directory
func CreateTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "companion.db"))
	require.NoError(t, err, "Failed to open test SQLite database")
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
