package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
	"github.com/leohylee/tes-companion/internal/store"
	mockstore "github.com/leohylee/tes-companion/internal/store/mock"
)

type CharacterStoreTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	remote *mockstore.MockCharacterRemote
	bus    *events.Bus
	store  *store.CharacterStore
	ctx    context.Context
}

func (s *CharacterStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.remote = mockstore.NewMockCharacterRemote(s.ctrl)
	s.bus = events.NewBus()
	s.ctx = context.Background()
	s.store = store.NewCharacterStore(&store.CharacterStoreConfig{
		Remote: s.remote,
		Bus:    s.bus,
	})
}

func (s *CharacterStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCharacterStoreSuite(t *testing.T) {
	suite.Run(t, new(CharacterStoreTestSuite))
}

func (s *CharacterStoreTestSuite) seed(chars ...*entities.Character) {
	s.remote.EXPECT().ListCharacters(gomock.Any()).Return(chars, nil)
	s.Require().NoError(s.store.Fetch(s.ctx))
}

func testCharacter(id, name string) *entities.Character {
	return &entities.Character{
		ID:          id,
		Name:        name,
		Race:        entities.RaceNord,
		RaceVariant: 1,
		ClassID:     entities.ClassWarden,
		Skills:      []entities.Skill{},
	}
}

func (s *CharacterStoreTestSuite) TestFetch() {
	s.seed(testCharacter("a", "Ulfric"), testCharacter("b", "Lydia"))

	list := s.store.List()
	s.Len(list, 2)
	s.Equal("Ulfric", list[0].Name)
	s.False(s.store.Loading())
}

func (s *CharacterStoreTestSuite) TestFetch_FailureSetsError() {
	s.remote.EXPECT().ListCharacters(gomock.Any()).Return(nil, errors.New("offline"))

	err := s.store.Fetch(s.ctx)
	s.True(dnderr.IsSyncFailed(err))
	s.Equal(err, s.store.Err())
	s.Empty(s.store.List())
}

func (s *CharacterStoreTestSuite) TestAdd_AppendsAndSelects() {
	s.seed(testCharacter("a", "Ulfric"))
	input := &entities.CharacterInput{Name: "Serana", Race: entities.RaceImperial, ClassID: entities.ClassNecromancer}

	s.remote.EXPECT().CreateCharacter(gomock.Any(), input).Return(testCharacter("b", "Serana"), nil)

	created, err := s.store.Add(s.ctx, input)
	s.Require().NoError(err)
	s.Equal("b", created.ID)

	list := s.store.List()
	s.Require().Len(list, 2)
	s.Equal("b", list[1].ID)
	s.Equal("b", s.store.SelectedID())
	s.Equal("Serana", s.store.Selected().Name)
}

func (s *CharacterStoreTestSuite) TestAdd_InvalidInputNeverReachesRemote() {
	_, err := s.store.Add(s.ctx, &entities.CharacterInput{Name: "Nameless"})
	s.True(dnderr.IsValidation(err))
	s.Empty(s.store.List())
	s.NoError(s.store.Err())
}

func (s *CharacterStoreTestSuite) TestAdd_RemoteFailureAddsNothing() {
	s.remote.EXPECT().CreateCharacter(gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

	_, err := s.store.Add(s.ctx, &entities.CharacterInput{Name: "A", Race: entities.RaceOrc, ClassID: entities.ClassKnight})
	s.True(dnderr.IsSyncFailed(err))
	s.Empty(s.store.List())
	s.Empty(s.store.SelectedID())
}

func (s *CharacterStoreTestSuite) TestUpdate_RollbackRestoresSnapshot() {
	s.seed(testCharacter("a", "Ulfric"), testCharacter("b", "Lydia"))
	s.store.Select("b")
	before := s.store.List()

	var failed []*events.StoreEvent
	s.bus.Subscribe(events.EventTypeSyncFailed, events.NewListener("test", 0, func(e events.Event) error {
		failed = append(failed, e.(*events.StoreEvent))
		return nil
	}))

	name := "Jarl Ulfric"
	s.remote.EXPECT().UpdateCharacter(gomock.Any(), "a", gomock.Any()).
		DoAndReturn(func(context.Context, string, *entities.CharacterPatch) (*entities.Character, error) {
			// The optimistic value is visible while the call is in flight
			current, err := s.store.Get("a")
			s.Require().NoError(err)
			s.Equal("Jarl Ulfric", current.Name)
			return nil, errors.New("connection reset")
		})

	_, err := s.store.Update(s.ctx, "a", &entities.CharacterPatch{Name: &name})
	s.True(dnderr.IsSyncFailed(err))

	s.Equal(before, s.store.List())
	s.Equal("b", s.store.SelectedID())
	s.Equal(err, s.store.Err())
	s.Require().Len(failed, 1)
	s.Equal("a", failed[0].EntityID)

	s.store.ClearError()
	s.NoError(s.store.Err())
}

func (s *CharacterStoreTestSuite) TestUpdate_AdoptsServerEntity() {
	s.seed(testCharacter("a", "Ulfric"))

	name := "  Ulfric  "
	server := testCharacter("a", "Ulfric Stormcloak")
	server.RaceVariant = 3
	s.remote.EXPECT().UpdateCharacter(gomock.Any(), "a", gomock.Any()).Return(server, nil)

	updated, err := s.store.Update(s.ctx, "a", &entities.CharacterPatch{Name: &name})
	s.Require().NoError(err)
	s.Equal("Ulfric Stormcloak", updated.Name)

	got, err := s.store.Get("a")
	s.Require().NoError(err)
	s.Equal(server, got)
}

func (s *CharacterStoreTestSuite) TestUpdate_NotFound() {
	name := "x"
	_, err := s.store.Update(s.ctx, "ghost", &entities.CharacterPatch{Name: &name})
	s.True(dnderr.IsNotFound(err))
	s.NoError(s.store.Err())
}

func (s *CharacterStoreTestSuite) TestAddSkill_DuplicateRejected() {
	c := testCharacter("a", "Ulfric")
	c.Skills = []entities.Skill{entities.NewSkill(entities.SkillBow)}
	s.seed(c)

	_, err := s.store.AddSkill(s.ctx, "a", entities.SkillBow)
	s.True(dnderr.IsValidation(err))

	got, _ := s.store.Get("a")
	s.Len(got.Skills, 1)
}

func (s *CharacterStoreTestSuite) TestAddSkill_UnknownSkill() {
	s.seed(testCharacter("a", "Ulfric"))
	_, err := s.store.AddSkill(s.ctx, "a", "juggling")
	s.True(dnderr.IsValidation(err))
}

func (s *CharacterStoreTestSuite) TestRemoveSkill_MissingEntry() {
	s.seed(testCharacter("a", "Ulfric"))
	_, err := s.store.RemoveSkill(s.ctx, "a", "bow")
	s.True(dnderr.IsNotFound(err))
}

func (s *CharacterStoreTestSuite) TestToggleMaster() {
	s.seed(testCharacter("a", "Ulfric"))

	s.remote.EXPECT().UpdateCharacter(gomock.Any(), "a", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p *entities.CharacterPatch) (*entities.Character, error) {
			s.Require().NotNil(p.IsMaster)
			s.True(*p.IsMaster)
			c := testCharacter("a", "Ulfric")
			c.IsMaster = true
			return c, nil
		})

	updated, err := s.store.ToggleMaster(s.ctx, "a")
	s.Require().NoError(err)
	s.True(updated.IsMaster)
}

func (s *CharacterStoreTestSuite) TestRemove_ClearsSelection() {
	s.seed(testCharacter("a", "Ulfric"), testCharacter("b", "Lydia"))
	s.store.Select("a")

	s.remote.EXPECT().DeleteCharacter(gomock.Any(), "a").Return(nil)

	s.Require().NoError(s.store.Remove(s.ctx, "a"))
	s.Len(s.store.List(), 1)
	s.Empty(s.store.SelectedID())
	s.Nil(s.store.Selected())
}

func (s *CharacterStoreTestSuite) TestRemove_RollbackRestoresPositionAndSelection() {
	s.seed(testCharacter("a", "Ulfric"), testCharacter("b", "Lydia"), testCharacter("c", "Delphine"))
	s.store.Select("b")
	before := s.store.List()

	s.remote.EXPECT().DeleteCharacter(gomock.Any(), "b").Return(errors.New("500"))

	err := s.store.Remove(s.ctx, "b")
	s.True(dnderr.IsSyncFailed(err))
	s.Equal(before, s.store.List())
	s.Equal("b", s.store.SelectedID())
}

func (s *CharacterStoreTestSuite) TestRemove_NotFound() {
	err := s.store.Remove(s.ctx, "ghost")
	s.True(dnderr.IsNotFound(err))
}

func (s *CharacterStoreTestSuite) TestSelect_UnknownID() {
	s.store.Select("not-loaded-yet")
	s.Equal("not-loaded-yet", s.store.SelectedID())
	s.Nil(s.store.Selected())
}

func (s *CharacterStoreTestSuite) TestReset() {
	s.seed(testCharacter("a", "Ulfric"))
	s.store.Select("a")

	s.store.Reset()
	s.Empty(s.store.List())
	s.Empty(s.store.SelectedID())
}

func (s *CharacterStoreTestSuite) TestList_ReturnsCopies() {
	s.seed(testCharacter("a", "Ulfric"))

	list := s.store.List()
	list[0].Name = "mutated"

	got, _ := s.store.Get("a")
	s.Equal("Ulfric", got.Name)
}

func TestCharacterSkillScenario(t *testing.T) {
	ctx := context.Background()
	characters := store.NewCharacterStore(&store.CharacterStoreConfig{Remote: newFakeRemote()})

	a, err := characters.Add(ctx, &entities.CharacterInput{Name: "A", Race: entities.RaceNord, ClassID: entities.ClassWarden})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	withBow, err := characters.AddSkill(ctx, a.ID, entities.SkillBow)
	if err != nil {
		t.Fatalf("add skill: %v", err)
	}
	if len(withBow.Skills) != 1 || withBow.Skills[0].SkillID != entities.SkillBow {
		t.Fatalf("expected exactly one bow skill, got %+v", withBow.Skills)
	}

	emptied, err := characters.RemoveSkill(ctx, a.ID, withBow.Skills[0].ID)
	if err != nil {
		t.Fatalf("remove skill: %v", err)
	}
	if len(emptied.Skills) != 0 {
		t.Fatalf("expected no skills, got %+v", emptied.Skills)
	}
}

func (s *CharacterStoreTestSuite) TestUpdate_EmptyResponseIsAnError() {
	s.seed(testCharacter("a", "Ulfric"))
	s.remote.EXPECT().UpdateCharacter(gomock.Any(), "a", gomock.Any()).Return(nil, nil)

	name := "Jarl Ulfric"
	updated, err := s.store.Update(s.ctx, "a", &entities.CharacterPatch{Name: &name})
	s.Nil(updated)
	s.Equal(dnderr.CodeInternal, dnderr.GetCode(err))
}
