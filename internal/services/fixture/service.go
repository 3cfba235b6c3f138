package fixture

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mcoot/playerdna/internal/model"
	"github.com/mcoot/playerdna/internal/storage"
)

// Service loads pre-recorded documents from a fixture store
type Service struct {
	store  storage.FixtureStore
	logger *slog.Logger
}

// New creates a new fixture Service
func New(store storage.FixtureStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Load returns the named fixture document. Any failure is logged and
// downgraded to the empty object so callers always have something to serve.
func (s *Service) Load(ctx context.Context, name string) (model.Document, model.Source) {
	doc, err := s.Get(ctx, name)
	if err != nil {
		s.logger.Warn("could not load fixture",
			slog.String("fixture", name),
			slog.String("error", err.Error()),
		)
		return model.EmptyDocument(), model.SourceEmpty
	}
	return doc, model.SourceFixture
}

// Get returns the named fixture document or the error that prevented loading it
func (s *Service) Get(ctx context.Context, name string) (model.Document, error) {
	data, err := s.store.GetFixture(ctx, name)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, model.ErrInvalidFixture
	}
	return model.Document(data), nil
}
