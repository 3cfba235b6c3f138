package player

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/playerdna/internal/dependencies/mocks"
	"github.com/mcoot/playerdna/internal/model"
	"github.com/mcoot/playerdna/internal/services/fixture"
	"github.com/mcoot/playerdna/internal/storage/memory"
	"github.com/mcoot/playerdna/internal/testutil"
)

const (
	statsFixture        = `{"player_name": "Fixture Player", "steam_level": 12}`
	achievementsFixture = `[{"appid": 440, "name": "Team Fortress 2", "achievements": []}]`
	profileFixture      = `{"type": "CSTH", "axes": {}}`
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	upstream *mocks.MockUpstream
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	_ = s.storage.SaveFixture(s.ctx, model.PlayerStatsFixture, []byte(statsFixture))
	_ = s.storage.SaveFixture(s.ctx, model.AchievementsFixture, []byte(achievementsFixture))
	_ = s.storage.SaveFixture(s.ctx, model.PcsrProfileFixture, []byte(profileFixture))

	s.upstream = mocks.NewMockUpstream()
	logger := testutil.NopLogger()
	s.service = New(s.upstream, fixture.New(s.storage, logger), logger)
}

func (s *ServiceSuite) TestAllOperationsRequireSteamID() {
	ops := map[string]func(context.Context, model.SteamID) (Payload, error){
		"stats":        s.service.PlayerStats,
		"achievements": s.service.Achievements,
		"profile":      s.service.PcsrProfile,
	}

	for name, op := range ops {
		_, err := op(s.ctx, "")
		s.ErrorIs(err, model.ErrSteamIDRequired, name)
	}
	s.Empty(s.upstream.Calls())
}

func (s *ServiceSuite) TestPlayerStatsWithoutKeyServesFixture() {
	payload, err := s.service.PlayerStats(s.ctx, "123")
	s.Require().NoError(err)

	s.Equal(model.SourceFixture, payload.Source)
	s.JSONEq(statsFixture, string(payload.Data))
}

func (s *ServiceSuite) TestPlayerStatsForwardsUpstream() {
	s.upstream.WithResponse(model.Document(`{"response":{"players":[{"steamid":"123"}]}}`))

	payload, err := s.service.PlayerStats(s.ctx, "123")
	s.Require().NoError(err)

	s.Equal(model.SourceUpstream, payload.Source)
	s.JSONEq(`{"response":{"players":[{"steamid":"123"}]}}`, string(payload.Data))
	s.Equal([]model.SteamID{"123"}, s.upstream.Calls())
}

func (s *ServiceSuite) TestPlayerStatsUpstreamFailureServesFixture() {
	s.upstream.WithError(model.ErrUpstreamUnavailable)

	payload, err := s.service.PlayerStats(s.ctx, "123")
	s.Require().NoError(err)

	s.Equal(model.SourceFixture, payload.Source)
	s.JSONEq(statsFixture, string(payload.Data))
}

func (s *ServiceSuite) TestPlayerStatsUpstreamAndFixtureFailure() {
	s.upstream.WithError(model.ErrUpstreamUnavailable)
	s.storage.DeleteFixture(model.PlayerStatsFixture)

	payload, err := s.service.PlayerStats(s.ctx, "123")
	s.Require().NoError(err)

	s.Equal(model.SourceEmpty, payload.Source)
	s.Equal(`{}`, string(payload.Data))
}

func (s *ServiceSuite) TestPlayerStatsLogsUpstreamFailure() {
	logger, buf := testutil.BufferLogger()
	s.upstream.WithError(errors.New("connection refused"))
	svc := New(s.upstream, fixture.New(s.storage, logger), logger)

	_, err := svc.PlayerStats(s.ctx, "123")
	s.Require().NoError(err)
	s.Contains(buf.String(), "steam api request failed")
	s.Contains(buf.String(), "connection refused")
}

func (s *ServiceSuite) TestAchievementsIgnoresUpstream() {
	s.upstream.WithResponse(model.Document(`{"live": true}`))

	payload, err := s.service.Achievements(s.ctx, "123")
	s.Require().NoError(err)

	s.Equal(model.SourceFixture, payload.Source)
	s.JSONEq(achievementsFixture, string(payload.Data))
	s.Empty(s.upstream.Calls())
}

func (s *ServiceSuite) TestAchievementsMissingFixture() {
	s.storage.DeleteFixture(model.AchievementsFixture)

	payload, err := s.service.Achievements(s.ctx, "123")
	s.Require().NoError(err)
	s.Equal(`{}`, string(payload.Data))
}

func (s *ServiceSuite) TestPcsrProfileServesFixture() {
	s.upstream.WithResponse(model.Document(`{"live": true}`))

	payload, err := s.service.PcsrProfile(s.ctx, "123")
	s.Require().NoError(err)

	s.Equal(model.SourceFixture, payload.Source)
	s.JSONEq(profileFixture, string(payload.Data))
	s.Empty(s.upstream.Calls())
}

func (s *ServiceSuite) TestPcsrProfileInvalidFixture() {
	_ = s.storage.SaveFixture(s.ctx, model.PcsrProfileFixture, []byte(`{not json`))

	payload, err := s.service.PcsrProfile(s.ctx, "123")
	s.Require().NoError(err)
	s.Equal(model.SourceEmpty, payload.Source)
	s.Equal(`{}`, string(payload.Data))
}

func (s *ServiceSuite) TestResultOrFixture() {
	load := func(ctx context.Context, name string) (model.Document, model.Source) {
		return model.Document(`{"fixture":"` + name + `"}`), model.SourceFixture
	}

	ok := Result{Data: model.Document(`{"live":1}`)}.OrFixture(s.ctx, load, "x.json")
	s.Equal(model.SourceUpstream, ok.Source)
	s.Equal(`{"live":1}`, string(ok.Data))

	failed := Result{Err: model.ErrUpstreamUnavailable}.OrFixture(s.ctx, load, "x.json")
	s.Equal(model.SourceFixture, failed.Source)
	s.Equal(`{"fixture":"x.json"}`, string(failed.Data))
}
