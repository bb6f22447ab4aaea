package handlers

import (
	"errors"
	"net/http"

	"github.com/courtside/rating-api/internal/logic"
	"github.com/courtside/rating-api/internal/models"
)

// BalanceTeams splits the selected players into two teams by the snake
// heuristic. Fewer than two selected players returns two empty rosters.
// @Summary Balance Teams
// @Tags Teams
// @Accept json
// @Produce json
// @Param selection body models.BalanceRequest true "Selected Player IDs"
// @Success 200 {object} models.BalanceResult "Balanced Teams"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /teams/balance [post]
func (h *Handler) BalanceTeams(w http.ResponseWriter, r *http.Request) {
	var input models.BalanceRequest
	if !h.decodeJSON(w, r, &input) {
		return
	}
	if err := models.ValidateStruct(input); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "player_ids must be a list of player IDs")
		return
	}

	result, err := h.roster.Balance(r.Context(), input.PlayerIDs)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidRoster) {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("Failed to balance teams", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}
