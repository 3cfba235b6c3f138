package mocks

import (
	"context"
	"sync"

	"github.com/mcoot/playerdna/internal/model"
	"github.com/mcoot/playerdna/internal/services/steam"
)

// MockUpstream is a scripted stand-in for the Steam client
type MockUpstream struct {
	mu sync.Mutex

	APIKey   bool
	Response model.Document
	Err      error

	calls []model.SteamID
}

// NewMockUpstream creates a MockUpstream with no API key configured
func NewMockUpstream() *MockUpstream {
	return &MockUpstream{}
}

// WithResponse configures an API key and a successful response
func (m *MockUpstream) WithResponse(doc model.Document) *MockUpstream {
	m.APIKey = true
	m.Response = doc
	m.Err = nil
	return m
}

// WithError configures an API key and a failing response
func (m *MockUpstream) WithError(err error) *MockUpstream {
	m.APIKey = true
	m.Response = nil
	m.Err = err
	return m
}

// HasAPIKey reports the configured key state
func (m *MockUpstream) HasAPIKey() bool {
	return m.APIKey
}

// PlayerSummaries records the call and returns the scripted outcome
func (m *MockUpstream) PlayerSummaries(ctx context.Context, steamID model.SteamID) (model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, steamID)
	if !m.APIKey {
		return nil, steam.ErrNoAPIKey
	}
	return m.Response, m.Err
}

// Calls returns the steam ids PlayerSummaries was called with
func (m *MockUpstream) Calls() []model.SteamID {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.SteamID, len(m.calls))
	copy(out, m.calls)
	return out
}
