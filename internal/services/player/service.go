package player

import (
	"context"
	"log/slog"

	"github.com/mcoot/playerdna/internal/model"
	"github.com/mcoot/playerdna/internal/services/fixture"
)

// Upstream is the live data source for player summaries
type Upstream interface {
	HasAPIKey() bool
	PlayerSummaries(ctx context.Context, steamID model.SteamID) (model.Document, error)
}

// Service serves player documents, preferring live upstream data and
// degrading to fixture documents whenever that is not possible
type Service struct {
	upstream Upstream
	fixtures *fixture.Service
	logger   *slog.Logger
}

// New creates a new player Service
func New(upstream Upstream, fixtures *fixture.Service, logger *slog.Logger) *Service {
	return &Service{
		upstream: upstream,
		fixtures: fixtures,
		logger:   logger,
	}
}

// PlayerStats returns the player's Steam summary, or the stats fixture when
// no API key is configured or the upstream call fails
func (s *Service) PlayerStats(ctx context.Context, steamID model.SteamID) (Payload, error) {
	if steamID.IsZero() {
		return Payload{}, model.ErrSteamIDRequired
	}

	result := s.fetchSummaries(ctx, steamID)
	return result.OrFixture(ctx, s.fixtures.Load, model.PlayerStatsFixture), nil
}

// Achievements returns the achievements fixture. No upstream call is made
// even with an API key: per-game achievement aggregation is not implemented.
func (s *Service) Achievements(ctx context.Context, steamID model.SteamID) (Payload, error) {
	if steamID.IsZero() {
		return Payload{}, model.ErrSteamIDRequired
	}

	return s.fromFixture(ctx, model.AchievementsFixture), nil
}

// PcsrProfile returns the PCSR profile fixture
func (s *Service) PcsrProfile(ctx context.Context, steamID model.SteamID) (Payload, error) {
	if steamID.IsZero() {
		return Payload{}, model.ErrSteamIDRequired
	}

	return s.fromFixture(ctx, model.PcsrProfileFixture), nil
}

func (s *Service) fetchSummaries(ctx context.Context, steamID model.SteamID) Result {
	data, err := s.upstream.PlayerSummaries(ctx, steamID)
	if err != nil && s.upstream.HasAPIKey() {
		s.logger.Warn("steam api request failed, serving fixture",
			slog.String("steam_id", string(steamID)),
			slog.String("error", err.Error()),
		)
	}
	return Result{Data: data, Err: err}
}

func (s *Service) fromFixture(ctx context.Context, name string) Payload {
	data, source := s.fixtures.Load(ctx, name)
	return Payload{Data: data, Source: source}
}
