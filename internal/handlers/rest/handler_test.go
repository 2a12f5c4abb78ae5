package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/leohylee/tes-companion/internal/entities"
	"github.com/leohylee/tes-companion/internal/handlers/rest"
	"github.com/leohylee/tes-companion/internal/services"
)

type HandlerTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func (s *HandlerTestSuite) SetupTest() {
	provider := services.NewProvider(&services.ProviderConfig{})
	handler := rest.NewHandler(&rest.HandlerConfig{ServiceProvider: provider})
	s.server = httptest.NewServer(handler.Routes())
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// do sends a request as user and decodes a JSON response into out when given
func (s *HandlerTestSuite) do(method, path, user string, body any, out any) int {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if user != "" {
		req.Header.Set(rest.UserHeader, user)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *HandlerTestSuite) createCharacter(user, name string) *entities.Character {
	var char entities.Character
	status := s.do(http.MethodPost, "/api/characters", user, entities.CharacterInput{
		Name:    name,
		Race:    entities.RaceKhajiit,
		ClassID: entities.ClassRogue,
	}, &char)
	s.Require().Equal(http.StatusCreated, status)
	return &char
}

func (s *HandlerTestSuite) TestMissingUser() {
	var body map[string]string
	status := s.do(http.MethodGet, "/api/characters", "", nil, &body)
	s.Equal(http.StatusUnauthorized, status)
	s.Equal("Unauthorized", body["error"])
}

func (s *HandlerTestSuite) TestHealthAndMapsArePublic() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/healthz", "", nil, nil))

	var maps rest.MapsResponse
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/maps", "", nil, &maps))
	s.Len(maps.Maps, 7)
	s.Len(maps.DayColors, 10)
	s.Len(maps.MarkerTypes, 5)
}

func (s *HandlerTestSuite) TestCharacterLifecycle() {
	char := s.createCharacter("user-1", "M'aiq")
	s.NotEmpty(char.ID)
	s.Equal(1, char.RaceVariant)
	s.NotNil(char.Skills)

	var list []*entities.Character
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/characters", "user-1", nil, &list))
	s.Len(list, 1)

	skills := []entities.Skill{entities.NewSkill(entities.SkillSpeech)}
	var updated entities.Character
	status := s.do(http.MethodPut, "/api/characters/"+char.ID, "user-1", entities.CharacterPatch{Skills: &skills}, &updated)
	s.Equal(http.StatusOK, status)
	s.Equal(skills, updated.Skills)
	s.Equal("M'aiq", updated.Name)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/characters/"+char.ID, "user-2", nil, nil))
	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/characters/"+char.ID, "user-1", nil, nil))
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/characters/"+char.ID, "user-1", nil, nil))
}

func (s *HandlerTestSuite) TestCreateCharacter_Validation() {
	var body map[string]string
	status := s.do(http.MethodPost, "/api/characters", "user-1", entities.CharacterInput{Name: "Nobody"}, &body)
	s.Equal(http.StatusBadRequest, status)
	s.Contains(body["error"], "required")
}

func (s *HandlerTestSuite) TestMalformedBody() {
	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/characters", bytes.NewBufferString("{"))
	s.Require().NoError(err)
	req.Header.Set(rest.UserHeader, "user-1")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestCampaignLifecycle() {
	a := s.createCharacter("user-1", "Inigo")
	b := s.createCharacter("user-1", "Lucien")

	var first entities.Campaign
	status := s.do(http.MethodPost, "/api/campaigns", "user-1", rest.CreateCampaignRequest{CharacterIDs: []string{a.ID, b.ID}}, &first)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(1, first.Number)
	s.Equal("Campaign 1", first.Name)

	var second entities.Campaign
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/campaigns", "user-1", rest.CreateCampaignRequest{CharacterIDs: []string{a.ID}}, &second))
	s.Equal(2, second.Number)

	var list []*entities.Campaign
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/campaigns", "user-1", nil, &list))
	s.Require().Len(list, 2)
	s.Equal(2, list[0].Number)

	var full entities.Campaign
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/campaigns/"+first.ID, "user-1", nil, &full))
	s.Len(full.Characters, 2)

	day := 4
	morrowind := entities.MapMorrowind
	var updated entities.Campaign
	status = s.do(http.MethodPut, "/api/campaigns/"+first.ID, "user-1", entities.CampaignPatch{Day: &day, Overland: &morrowind}, &updated)
	s.Equal(http.StatusOK, status)
	s.Equal(4, updated.Day)
	s.Require().NotNil(updated.Overland)
	s.Equal(entities.MapMorrowind, *updated.Overland)

	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/campaigns/"+second.ID, "user-1", nil, nil))
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/campaigns/"+second.ID, "user-1", nil, nil))
}

func (s *HandlerTestSuite) TestCreateCampaign_PartySize() {
	var body map[string]string
	status := s.do(http.MethodPost, "/api/campaigns", "user-1", rest.CreateCampaignRequest{}, &body)
	s.Equal(http.StatusBadRequest, status)
	s.Contains(body["error"], "between 1 and 4")

	status = s.do(http.MethodPost, "/api/campaigns", "user-1",
		rest.CreateCampaignRequest{CharacterIDs: []string{"a", "b", "c", "d", "e"}}, nil)
	s.Equal(http.StatusBadRequest, status)
}

func (s *HandlerTestSuite) TestOverland() {
	var fresh entities.OverlandState
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/overland", "user-1", nil, &fresh))
	s.Equal(entities.DefaultMapID, fresh.CurrentMapID)
	s.Equal(1, fresh.CurrentDay)

	fresh.CurrentDay = 6
	fresh.CurrentMapID = entities.MapBlackMarsh
	var saved entities.OverlandState
	s.Equal(http.StatusOK, s.do(http.MethodPut, "/api/overland", "user-1", fresh, &saved))
	s.Equal(6, saved.CurrentDay)

	var reloaded entities.OverlandState
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/overland", "user-1", nil, &reloaded))
	s.Equal(entities.MapBlackMarsh, reloaded.CurrentMapID)

	var other entities.OverlandState
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/overland", "user-2", nil, &other))
	s.Equal(1, other.CurrentDay)
}
