package overland_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/geometry"
	"github.com/leohylee/tes-companion/internal/repositories/overland"
	"github.com/leohylee/tes-companion/internal/testutils"
)

func runRepositoryContract(t *testing.T, repo overland.Repository) {
	ctx := context.Background()

	t.Run("missing state", func(t *testing.T) {
		_, err := repo.Get(ctx, "owner-a")
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("save and get", func(t *testing.T) {
		st := entities.NewOverlandState()
		st.CurrentMapID = entities.MapHighRock
		st.CurrentDay = 5
		st.Markers = []entities.Marker{{ID: "marker-1", Type: entities.MarkerQuest, Position: geometry.Position{X: 40, Y: 60}}}
		require.NoError(t, repo.Save(ctx, "owner-a", st))

		got, err := repo.Get(ctx, "owner-a")
		require.NoError(t, err)
		assert.Equal(t, st, got)
	})

	t.Run("save replaces", func(t *testing.T) {
		st := entities.NewOverlandState()
		st.Tokens = []entities.Token{{ID: "token-1", Icon: "⚔", Position: geometry.Position{X: 150, Y: -4}}}
		require.NoError(t, repo.Save(ctx, "owner-a", st))

		got, err := repo.Get(ctx, "owner-a")
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultMapID, got.CurrentMapID)
		assert.Empty(t, got.Markers)
		require.Len(t, got.Tokens, 1)
		assert.Equal(t, geometry.Position{X: 100, Y: 0}, got.Tokens[0].Position)
	})

	t.Run("owners are isolated", func(t *testing.T) {
		_, err := repo.Get(ctx, "owner-b")
		assert.True(t, dnderr.IsNotFound(err))
	})
}

func TestInMemoryRepository(t *testing.T) {
	runRepositoryContract(t, overland.NewInMemoryRepository())
}

func TestSQLiteRepository(t *testing.T) {
	runRepositoryContract(t, overland.NewSQLite(testutils.CreateTestSQLite(t), clock.System{}))
}
