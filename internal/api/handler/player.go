package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/playerdna/internal/api/response"
	"github.com/mcoot/playerdna/internal/model"
	"github.com/mcoot/playerdna/internal/services/player"
)

// steamIDParam is the query parameter carrying the player identifier
const steamIDParam = "steamId"

// PlayerHandler handles the player data endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// PlayerStats handles GET /api/player-stats
func (h *PlayerHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.playerService.PlayerStats)
}

// Achievements handles GET /api/achievements
func (h *PlayerHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.playerService.Achievements)
}

// PcsrProfile handles GET /api/pcsr-profile
func (h *PlayerHandler) PcsrProfile(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.playerService.PcsrProfile)
}

type playerOp func(ctx context.Context, steamID model.SteamID) (player.Payload, error)

func (h *PlayerHandler) serve(w http.ResponseWriter, r *http.Request, op playerOp) {
	steamID := model.SteamID(r.URL.Query().Get(steamIDParam))

	payload, err := op(r.Context(), steamID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Document(w, payload.Data, payload.Source)
}
