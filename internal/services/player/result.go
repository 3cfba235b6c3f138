package player

import (
	"context"

	"github.com/mcoot/playerdna/internal/model"
)

// Payload is a document ready to be served along with where it came from
type Payload struct {
	Data   model.Document
	Source model.Source
}

// Result is the outcome of a live upstream attempt
type Result struct {
	Data model.Document
	Err  error
}

// FixtureLoader resolves a fixture name to a document, never failing
type FixtureLoader func(ctx context.Context, name string) (model.Document, model.Source)

// OrFixture resolves the result: live data when the attempt succeeded,
// otherwise the named fixture
func (r Result) OrFixture(ctx context.Context, load FixtureLoader, name string) Payload {
	if r.Err == nil {
		return Payload{Data: r.Data, Source: model.SourceUpstream}
	}
	data, source := load(ctx, name)
	return Payload{Data: data, Source: source}
}
