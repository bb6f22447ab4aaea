package handlers

import (
	"errors"
	"net/http"

	"github.com/courtside/rating-api/internal/logic"
	"github.com/courtside/rating-api/internal/models"
)

// GetPlayers returns the leaderboard: every player sorted by rating descending.
// @Summary Get Leaderboard
// @Tags Players
// @Produce json
// @Success 200 {array} models.Player "Players by rating"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.roster.Leaderboard(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to list players", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if players == nil {
		players = []models.Player{}
	}
	h.jsonResponse(w, http.StatusOK, players)
}

// CreatePlayer registers a new player.
// @Summary Register Player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body models.PlayerInput true "Player Name"
// @Success 201 {object} models.Player "Created Player"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input models.PlayerInput
	if !h.decodeJSON(w, r, &input) {
		return
	}
	if err := models.ValidateStruct(input); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Name must be between 1 and 50 characters")
		return
	}

	player, err := h.roster.CreatePlayer(r.Context(), input.Name)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidRoster) {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("Failed to create player", "error", err, "name", input.Name)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.jsonResponse(w, http.StatusCreated, player)
}
