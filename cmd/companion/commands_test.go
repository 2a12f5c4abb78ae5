package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/leohylee/tes-companion/internal/clients/companion"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
	"github.com/leohylee/tes-companion/internal/handlers/rest"
	"github.com/leohylee/tes-companion/internal/services"
)

type CommandsTestSuite struct {
	suite.Suite
	server   *httptest.Server
	client   companion.Client
	app      *app
	out      *bytes.Buffer
	ctx      context.Context
	campaign string
}

func (s *CommandsTestSuite) SetupTest() {
	provider := services.NewProvider(&services.ProviderConfig{})
	s.server = httptest.NewServer(rest.NewHandler(&rest.HandlerConfig{ServiceProvider: provider}).Routes())
	s.ctx = context.Background()

	client, err := companion.New(&companion.Config{
		BaseURL:    s.server.URL,
		User:       "user-1",
		HTTPClient: s.server.Client(),
	})
	s.Require().NoError(err)
	s.client = client
	s.out = &bytes.Buffer{}
	s.app = &app{client: client, bus: events.NewBus(), out: s.out}

	char, err := client.CreateCharacter(s.ctx, &entities.CharacterInput{
		Name:    "Brynja",
		Race:    entities.RaceNord,
		ClassID: entities.ClassWarden,
	})
	s.Require().NoError(err)
	c, err := client.CreateCampaign(s.ctx, []string{char.ID})
	s.Require().NoError(err)
	s.campaign = c.ID
}

func (s *CommandsTestSuite) TearDownTest() {
	s.server.Close()
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) saved() *entities.Campaign {
	c, err := s.client.GetCampaign(s.ctx, s.campaign)
	s.Require().NoError(err)
	return c
}

func (s *CommandsTestSuite) TestCampaignBoardCommands() {
	s.Require().NoError(s.app.run(s.ctx, []string{"campaigns", "token", s.campaign, "🛡️", "Guard"}))
	c := s.saved()
	s.Require().Len(c.MapTokens, 1)
	token := c.MapTokens[0]
	s.Equal("Guard", token.Label)
	s.Equal(50.0, token.Position.X)
	s.Contains(s.out.String(), "Guard")

	// 250px right and 100px up on a 1000px surface
	s.Require().NoError(s.app.run(s.ctx, []string{"campaigns", "drag", s.campaign, token.ID, "250", "-100"}))
	c = s.saved()
	s.Require().Len(c.MapTokens, 1)
	s.InDelta(75.0, c.MapTokens[0].Position.X, 1e-9)
	s.InDelta(40.0, c.MapTokens[0].Position.Y, 1e-9)

	s.Require().NoError(s.app.run(s.ctx, []string{"campaigns", "marker", s.campaign, "quest", "20", "30", "Bandits"}))
	c = s.saved()
	s.Require().Len(c.MapMarkers, 1)
	marker := c.MapMarkers[0]
	s.Equal(entities.MarkerQuest, marker.Type)
	s.InDelta(20.0, marker.Position.X, 1e-9)
	s.InDelta(30.0, marker.Position.Y, 1e-9)

	s.Require().NoError(s.app.run(s.ctx, []string{"campaigns", "unmark", s.campaign, marker.ID}))
	s.Empty(s.saved().MapMarkers)
}

func (s *CommandsTestSuite) TestCampaignBoardCommandErrors() {
	err := s.app.run(s.ctx, []string{"campaigns", "drag", s.campaign, "ghost", "1", "1"})
	s.True(dnderr.IsNotFound(err))

	err = s.app.run(s.ctx, []string{"campaigns", "marker", s.campaign, "treasure", "1", "1"})
	s.True(dnderr.IsValidation(err))

	err = s.app.run(s.ctx, []string{"campaigns", "token", "missing", "🛡️"})
	s.True(dnderr.IsNotFound(err))

	s.Empty(s.saved().MapTokens)
}

func (s *CommandsTestSuite) TestOverlandDrag() {
	s.Require().NoError(s.app.run(s.ctx, []string{"overland", "token", "🐺"}))
	state, err := s.client.GetOverland(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(state.Tokens, 1)

	s.Require().NoError(s.app.run(s.ctx, []string{"overland", "drag", state.Tokens[0].ID, "250", "0"}))
	state, err = s.client.GetOverland(s.ctx)
	s.Require().NoError(err)
	s.InDelta(75.0, state.Tokens[0].Position.X, 1e-9)
}
