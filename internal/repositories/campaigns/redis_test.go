package campaigns

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

func (s *RedisRepoTestSuite) campaign() *entities.Campaign {
	return entities.NewCampaign("camp-1", "user-1", 3, []string{"char-1", "char-2"})
}

func (s *RedisRepoTestSuite) encode(data Data) string {
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisRepoTestSuite) TestNextNumber() {
	s.mock.ExpectIncr("owner:user-1:campaign_seq").SetVal(4)

	n, err := s.repo.NextNumber(context.Background(), "user-1")
	s.NoError(err)
	s.Equal(4, n)
}

func (s *RedisRepoTestSuite) TestNextNumber_Error() {
	s.mock.ExpectIncr("owner:user-1:campaign_seq").SetErr(errors.New("redis error"))

	_, err := s.repo.NextNumber(context.Background(), "user-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestCreate() {
	c := s.campaign()
	expected := toData(c, s.now)
	expected.CreatedAt = s.now.UnixMilli()

	s.mock.ExpectExists("campaign:camp-1").SetVal(0)
	s.mock.ExpectSet("campaign:camp-1", s.encode(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:campaigns", "camp-1").SetVal(1)

	s.NoError(s.repo.Create(context.Background(), c))
	s.Equal(s.now.UnixMilli(), c.CreatedAt)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("campaign:camp-1").SetVal(1)

	err := s.repo.Create(context.Background(), s.campaign())
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestGet_RoundTripsBoard() {
	c := s.campaign()
	c.CreatedAt = 1000
	overland := entities.MapMorrowind
	c.Overland = &overland
	c.MapMarkers = []entities.Marker{{ID: "m1", Type: entities.MarkerCamp}}
	c.CharacterHP = map[string]int{"char-1": 5}

	s.mock.ExpectGet("campaign:camp-1").SetVal(s.encode(toData(c, s.now)))

	got, err := s.repo.Get(context.Background(), "camp-1")
	s.Require().NoError(err)
	s.Equal(c, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("campaign:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	c := s.campaign()
	s.mock.ExpectSMembers("owner:user-1:campaigns").SetVal([]string{"camp-1"})
	s.mock.ExpectGet("campaign:camp-1").SetVal(s.encode(toData(c, s.now)))

	list, err := s.repo.ListByOwner(context.Background(), "user-1")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Campaign 3", list[0].Name)
}

func (s *RedisRepoTestSuite) TestUpdate_KeepsNumber() {
	stored := s.campaign()
	stored.CreatedAt = 1000

	updated := s.campaign()
	updated.Number = 99
	updated.Day = 4

	expected := toData(updated, s.now)
	expected.Number = 3
	expected.CreatedAt = 1000

	s.mock.ExpectGet("campaign:camp-1").SetVal(s.encode(toData(stored, s.now)))
	s.mock.ExpectSet("campaign:camp-1", s.encode(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:campaigns", "camp-1").SetVal(0)

	s.NoError(s.repo.Update(context.Background(), updated))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectGet("campaign:camp-1").SetVal(s.encode(toData(s.campaign(), s.now)))
	s.mock.ExpectDel("campaign:camp-1").SetVal(1)
	s.mock.ExpectSRem("owner:user-1:campaigns", "camp-1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "camp-1"))
}
