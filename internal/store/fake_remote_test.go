package store_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// fakeRemote is a tiny in-process system of record for scenario tests
type fakeRemote struct {
	mu         sync.Mutex
	seq        int
	campaignNo int
	characters map[string]*entities.Character
	campaigns  map[string]*entities.Campaign
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		characters: map[string]*entities.Character{},
		campaigns:  map[string]*entities.Campaign{},
	}
}

func (f *fakeRemote) nextID(kind string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", kind, f.seq)
}

func (f *fakeRemote) ListCharacters(context.Context) ([]*entities.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entities.Character, 0, len(f.characters))
	for _, c := range f.characters {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (f *fakeRemote) CreateCharacter(_ context.Context, input *entities.CharacterInput) (*entities.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := input.ToCharacter(f.nextID("char"), "user")
	f.characters[c.ID] = c
	return c.Clone(), nil
}

func (f *fakeRemote) UpdateCharacter(_ context.Context, id string, patch *entities.CharacterPatch) (*entities.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.characters[id]
	if !ok {
		return nil, dnderr.NotFoundf("character '%s' not found", id)
	}
	c.Apply(patch)
	return c.Clone(), nil
}

func (f *fakeRemote) DeleteCharacter(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.characters, id)
	return nil
}

func (f *fakeRemote) ListCampaigns(context.Context) ([]*entities.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entities.Campaign, 0, len(f.campaigns))
	for _, c := range f.campaigns {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (f *fakeRemote) CreateCampaign(_ context.Context, ids []string) (*entities.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.campaignNo++
	c := entities.NewCampaign(f.nextID("camp"), "user", f.campaignNo, ids)
	f.campaigns[c.ID] = c
	return c.Clone(), nil
}

func (f *fakeRemote) UpdateCampaign(_ context.Context, id string, patch *entities.CampaignPatch) (*entities.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, dnderr.NotFoundf("campaign '%s' not found", id)
	}
	c.Apply(patch)
	return c.Clone(), nil
}

func (f *fakeRemote) DeleteCampaign(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.campaigns, id)
	return nil
}
