package optimistic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
	"github.com/leohylee/tes-companion/internal/optimistic"
)

// counterStore is the smallest store the engine can drive
type counterStore struct {
	engine *optimistic.Engine
	value  int
}

func (s *counterStore) set(ctx context.Context, next int, send func(context.Context) (int, error)) (int, error) {
	return optimistic.Do(ctx, s.engine, optimistic.Op[int, int]{
		Name:      "set",
		EntityID:  "counter",
		Capture:   func() int { return s.value },
		Apply:     func() error { s.value = next; return nil },
		Send:      send,
		Reconcile: func(v int) { s.value = v },
		Restore:   func(v int) { s.value = v },
	})
}

func recordEvents(bus *events.Bus) *[]events.EventType {
	var seen []events.EventType
	bus.SubscribeAll(events.NewListener("recorder", 0, func(e events.Event) error {
		seen = append(seen, e.GetType())
		return nil
	}))
	return &seen
}

func TestDo_ReconcilesWithServerValue(t *testing.T) {
	bus := events.NewBus()
	seen := recordEvents(bus)
	store := &counterStore{engine: optimistic.NewEngine("counter", bus), value: 1}

	var duringSend int
	got, err := store.set(context.Background(), 5, func(context.Context) (int, error) {
		duringSend = store.value
		return 7, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 5, duringSend, "optimistic value visible while the call is in flight")
	assert.Equal(t, 7, got)
	assert.Equal(t, 7, store.value, "server response wins over the local value")
	assert.NoError(t, store.engine.Err())
	assert.Equal(t, []events.EventType{events.EventTypeStateChanged, events.EventTypeSyncConfirmed}, *seen)
}

func TestDo_RollsBackOnFailure(t *testing.T) {
	bus := events.NewBus()
	seen := recordEvents(bus)
	store := &counterStore{engine: optimistic.NewEngine("counter", bus), value: 3}

	_, err := store.set(context.Background(), 9, func(context.Context) (int, error) {
		return 0, errors.New("connection refused")
	})
	require.Error(t, err)

	assert.True(t, dnderr.IsSyncFailed(err))
	assert.Equal(t, 3, store.value)
	assert.Equal(t, err, store.engine.Err())
	assert.Equal(t, []events.EventType{events.EventTypeStateChanged, events.EventTypeSyncFailed}, *seen)

	store.engine.ClearError()
	assert.NoError(t, store.engine.Err())
}

func TestDo_ApplyErrorSkipsRemote(t *testing.T) {
	engine := optimistic.NewEngine("counter", nil)
	value := 2
	sent := false

	_, err := optimistic.Do(context.Background(), engine, optimistic.Op[int, struct{}]{
		Name:    "broken",
		Capture: func() int { return value },
		Apply: func() error {
			value = 100
			return dnderr.NotFound("gone")
		},
		Send: func(context.Context) (struct{}, error) {
			sent = true
			return struct{}{}, nil
		},
		Restore: func(v int) { value = v },
	})

	assert.True(t, dnderr.IsNotFound(err))
	assert.False(t, sent)
	assert.Equal(t, 2, value)
	assert.NoError(t, engine.Err(), "local errors are not sync failures")
}

func TestLoad_TracksLoadingAndCommits(t *testing.T) {
	engine := optimistic.NewEngine("counter", nil)
	var committed []string

	var loadingDuringSend bool
	_, err := optimistic.Load(context.Background(), engine, "fetch", func(context.Context) ([]string, error) {
		loadingDuringSend = engine.Loading()
		return []string{"a", "b"}, nil
	}, func(v []string) { committed = v })
	require.NoError(t, err)

	assert.True(t, loadingDuringSend)
	assert.False(t, engine.Loading())
	assert.Equal(t, []string{"a", "b"}, committed)
}

func TestRemote_FailureLeavesStateAndSetsError(t *testing.T) {
	engine := optimistic.NewEngine("counter", nil)
	committed := false

	_, err := optimistic.Remote(context.Background(), engine, "create", func(context.Context) (int, error) {
		return 0, errors.New("500")
	}, func(int) { committed = true })

	assert.True(t, dnderr.IsSyncFailed(err))
	assert.False(t, committed)
	assert.Error(t, engine.Err())
}

func TestWrite(t *testing.T) {
	engine := optimistic.NewEngine("counter", nil)
	n := 0
	require.NoError(t, engine.Write("inc", func() error { n++; return nil }))
	assert.Equal(t, 1, n)

	err := engine.Write("fail", func() error { return dnderr.Validation("no") })
	assert.True(t, dnderr.IsValidation(err))
}
