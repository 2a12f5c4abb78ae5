package character_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	mockcharacters "github.com/leohylee/tes-companion/internal/repositories/characters/mock"
	"github.com/leohylee/tes-companion/internal/services/character"
	mockuuid "github.com/leohylee/tes-companion/internal/uuid/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mockcharacters.MockRepository
	uuidGen *mockuuid.MockGenerator
	svc     character.Service
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockcharacters.NewMockRepository(s.ctrl)
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.svc = character.NewService(&character.ServiceConfig{
		Repository:    s.repo,
		UUIDGenerator: s.uuidGen,
	})
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) stored() *entities.Character {
	return &entities.Character{
		ID:          "char-1",
		OwnerID:     "user-1",
		Name:        "Serana",
		Race:        entities.RaceImperial,
		RaceVariant: 1,
		ClassID:     entities.ClassNecromancer,
		Skills:      []entities.Skill{},
	}
}

func (s *ServiceTestSuite) TestCreateCharacter() {
	input := &entities.CharacterInput{
		Name:    "  Serana ",
		Race:    entities.RaceImperial,
		ClassID: entities.ClassNecromancer,
		Skills:  []entities.Skill{{SkillID: entities.SkillDaedricSummoning}},
	}

	s.uuidGen.EXPECT().New().Return("char-1")
	s.repo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *entities.Character) error {
			s.Equal("char-1", c.ID)
			s.Equal("user-1", c.OwnerID)
			s.Equal("Serana", c.Name)
			s.Equal(entities.MinRaceVariant, c.RaceVariant)
			s.Equal([]entities.Skill{entities.NewSkill(entities.SkillDaedricSummoning)}, c.Skills)
			return nil
		})

	char, err := s.svc.CreateCharacter(s.ctx, "user-1", input)
	s.Require().NoError(err)
	s.Equal("char-1", char.ID)
}

func (s *ServiceTestSuite) TestCreateCharacter_MissingFields() {
	_, err := s.svc.CreateCharacter(s.ctx, "user-1", &entities.CharacterInput{Name: "Nameless"})
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceTestSuite) TestCreateCharacter_Unauthenticated() {
	_, err := s.svc.CreateCharacter(s.ctx, "", &entities.CharacterInput{})
	s.True(dnderr.IsUnauthenticated(err))
}

func (s *ServiceTestSuite) TestGetCharacter_OtherOwner() {
	s.repo.EXPECT().Get(s.ctx, "char-1").Return(s.stored(), nil)

	_, err := s.svc.GetCharacter(s.ctx, "user-2", "char-1")
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestGetCharacter_KeepsRepositoryCode() {
	s.repo.EXPECT().Get(s.ctx, "missing").Return(nil, dnderr.NotFound("gone"))

	_, err := s.svc.GetCharacter(s.ctx, "user-1", "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestUpdateCharacter_MergesPatch() {
	master := true
	skills := []entities.Skill{entities.NewSkill(entities.SkillShadow)}

	s.repo.EXPECT().Get(s.ctx, "char-1").Return(s.stored(), nil)
	s.repo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	char, err := s.svc.UpdateCharacter(s.ctx, "user-1", "char-1", &entities.CharacterPatch{
		IsMaster: &master,
		Skills:   &skills,
	})
	s.Require().NoError(err)
	s.True(char.IsMaster)
	s.Equal("Serana", char.Name)
	s.Equal(skills, char.Skills)
}

func (s *ServiceTestSuite) TestUpdateCharacter_RejectsDuplicateSkills() {
	skills := []entities.Skill{
		entities.NewSkill(entities.SkillShadow),
		entities.NewSkill(entities.SkillShadow),
	}

	_, err := s.svc.UpdateCharacter(s.ctx, "user-1", "char-1", &entities.CharacterPatch{Skills: &skills})
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceTestSuite) TestDeleteCharacter() {
	s.repo.EXPECT().Get(s.ctx, "char-1").Return(s.stored(), nil)
	s.repo.EXPECT().Delete(s.ctx, "char-1").Return(nil)

	s.NoError(s.svc.DeleteCharacter(s.ctx, "user-1", "char-1"))
}

func (s *ServiceTestSuite) TestDeleteCharacter_RepositoryError() {
	s.repo.EXPECT().Get(s.ctx, "char-1").Return(s.stored(), nil)
	s.repo.EXPECT().Delete(s.ctx, "char-1").Return(errors.New("disk full"))

	err := s.svc.DeleteCharacter(s.ctx, "user-1", "char-1")
	s.Error(err)
	s.Equal(dnderr.CodeUnknown, dnderr.GetCode(err))
}

func (s *ServiceTestSuite) TestListCharacters() {
	list := []*entities.Character{s.stored()}
	s.repo.EXPECT().ListByOwner(s.ctx, "user-1").Return(list, nil)

	got, err := s.svc.ListCharacters(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(list, got)
}
