package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/leohylee/tes-companion/internal/clock/mocks"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.timeProvider.EXPECT().Now().Return(s.now).AnyTimes()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) character() *entities.Character {
	return &entities.Character{
		ID:          "char-1",
		OwnerID:     "user-1",
		Name:        "Lydia",
		Race:        entities.RaceNord,
		RaceVariant: 2,
		ClassID:     entities.ClassKnight,
		Skills:      []entities.Skill{entities.NewSkill(entities.SkillHeavyArmor)},
	}
}

func (s *RedisRepoTestSuite) encode(data Data) string {
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	char := s.character()

	expected := toData(char, s.now)
	expected.CreatedAt = s.now.UnixMilli()

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", s.encode(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:characters", "char-1").SetVal(1)

	err := s.repo.Create(ctx, char)
	s.NoError(err)
	s.Equal(s.now.UnixMilli(), char.CreatedAt)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(context.Background(), s.character())
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_RequiresOwner() {
	char := s.character()
	char.OwnerID = ""

	err := s.repo.Create(context.Background(), char)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestCreate_StoreError() {
	char := s.character()
	expected := toData(char, s.now)
	expected.CreatedAt = s.now.UnixMilli()

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", s.encode(expected), 0).SetErr(errors.New("redis error"))

	err := s.repo.Create(context.Background(), char)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestGet() {
	char := s.character()
	char.CreatedAt = 1000
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(toData(char, s.now)))

	got, err := s.repo.Get(context.Background(), "char-1")
	s.Require().NoError(err)
	s.Equal(char, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	char := s.character()
	char.CreatedAt = 1000

	s.mock.ExpectSMembers("owner:user-1:characters").SetVal([]string{"char-1"})
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(toData(char, s.now)))

	list, err := s.repo.ListByOwner(context.Background(), "user-1")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Lydia", list[0].Name)
}

func (s *RedisRepoTestSuite) TestListByOwner_SkipsDanglingIndex() {
	s.mock.ExpectSMembers("owner:user-1:characters").SetVal([]string{"gone"})
	s.mock.ExpectGet("character:gone").RedisNil()

	list, err := s.repo.ListByOwner(context.Background(), "user-1")
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *RedisRepoTestSuite) TestUpdate_KeepsCreatedAt() {
	stored := s.character()
	stored.CreatedAt = 1000

	updated := s.character()
	updated.Name = "Lydia the Bold"
	updated.IsMaster = true

	expected := toData(updated, s.now)
	expected.CreatedAt = 1000

	s.mock.ExpectGet("character:char-1").SetVal(s.encode(toData(stored, s.now.Add(-time.Hour))))
	s.mock.ExpectSet("character:char-1", s.encode(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:characters", "char-1").SetVal(0)

	err := s.repo.Update(context.Background(), updated)
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestUpdate_OtherOwner() {
	stored := s.character()
	stored.OwnerID = "user-2"
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(toData(stored, s.now)))

	err := s.repo.Update(context.Background(), s.character())
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	stored := s.character()
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(toData(stored, s.now)))
	s.mock.ExpectDel("character:char-1").SetVal(1)
	s.mock.ExpectSRem("owner:user-1:characters", "char-1").SetVal(1)

	err := s.repo.Delete(context.Background(), "char-1")
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestDelete_NotFound() {
	s.mock.ExpectGet("character:char-1").RedisNil()

	err := s.repo.Delete(context.Background(), "char-1")
	s.True(dnderr.IsNotFound(err))
}
