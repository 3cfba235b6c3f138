package model

import "errors"

// Common errors used across the application
var (
	// Request errors
	ErrSteamIDRequired = errors.New("steam id is required")

	// Upstream errors. Never surfaced to API callers; they trigger fixture fallback.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// Fixture errors
	ErrInvalidFixture = errors.New("fixture is not valid JSON")
)
