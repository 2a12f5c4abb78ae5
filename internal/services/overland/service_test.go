package overland_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/geometry"
	mockoverland "github.com/leohylee/tes-companion/internal/repositories/overland/mock"
	"github.com/leohylee/tes-companion/internal/services/overland"
)

func TestGetState_FreshForNewUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockoverland.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "user-1").Return(nil, dnderr.NotFound("overland state not found"))

	svc := overland.NewService(&overland.ServiceConfig{Repository: repo})
	state, err := svc.GetState(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, entities.NewOverlandState(), state)
}

func TestGetState_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockoverland.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "user-1").Return(nil, errors.New("connection refused"))

	svc := overland.NewService(&overland.ServiceConfig{Repository: repo})
	_, err := svc.GetState(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestSaveState_Normalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockoverland.NewMockRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	svc := overland.NewService(&overland.ServiceConfig{Repository: repo})
	saved, err := svc.SaveState(context.Background(), "user-1", &entities.OverlandState{
		CurrentDay: 0,
		Tokens:     []entities.Token{{ID: "t", Icon: "⚔", Position: geometry.Position{X: -5, Y: 120}}},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultMapID, saved.CurrentMapID)
	assert.Equal(t, 1, saved.CurrentDay)
	assert.Equal(t, geometry.Position{X: 0, Y: 100}, saved.Tokens[0].Position)
	assert.NotNil(t, saved.Markers)
}

func TestSaveState_RejectsUnknownMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockoverland.NewMockRepository(ctrl)

	svc := overland.NewService(&overland.ServiceConfig{Repository: repo})
	_, err := svc.SaveState(context.Background(), "user-1", &entities.OverlandState{
		Markers: []entities.Marker{{ID: "m", Type: "treasure"}},
	})
	assert.True(t, dnderr.IsValidation(err))
}
