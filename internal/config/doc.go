// Package config loads and validates runtime configuration for the playerdna
// server.
//
// Configuration is read from an optional `config.yaml` (in `.` or `config/`)
// and can be overridden via environment variables such as STEAM_API_KEY,
// PORT and ASSETS_DIR (see config.go for the full list).
package config
