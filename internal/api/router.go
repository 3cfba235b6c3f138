package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/playerdna/internal/api/apierr"
	"github.com/mcoot/playerdna/internal/api/handler"
	apimiddleware "github.com/mcoot/playerdna/internal/api/middleware"
	"github.com/mcoot/playerdna/internal/api/response"
	"github.com/mcoot/playerdna/internal/middleware"
	"github.com/mcoot/playerdna/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	// Create middleware
	requestIDMiddleware := middleware.RequestID()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)
	corsMiddleware := middleware.CORS(middleware.DefaultCORSConfig())

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(requestIDMiddleware)
	api.Use(loggingMiddleware)
	api.Use(recoveryMiddleware)
	api.Use(corsMiddleware)

	// Player data routes
	api.Handle("/player-stats", allowGet(playerHandler.PlayerStats))
	api.Handle("/achievements", allowGet(playerHandler.Achievements))
	api.Handle("/pcsr-profile", allowGet(playerHandler.PcsrProfile))

	// Health check endpoint
	api.Handle("/health", allowGet(healthHandler))

	r.NotFoundHandler = corsMiddleware(http.HandlerFunc(notFoundHandler))

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

// allowGet rejects every method but GET. Preflight OPTIONS requests are
// answered by the CORS middleware before reaching here.
func allowGet(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodOptions)
			apierr.WriteError(w, apierr.NewMethodNotAllowedError())
			return
		}
		next(w, r)
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
