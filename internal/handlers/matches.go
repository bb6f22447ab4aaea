package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/courtside/rating-api/internal/logic"
	"github.com/courtside/rating-api/internal/models"
)

// SubmitMatch runs the full submission workflow: validate, persist, rate,
// update players, append history.
// @Summary Submit Match Result
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body models.MatchInput true "Match Result"
// @Success 201 {object} models.SubmissionResult "Submission Outcome"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 500 {object} map[string]interface{} "Internal or Partial-Write Error"
// @Router /matches [post]
func (h *Handler) SubmitMatch(w http.ResponseWriter, r *http.Request) {
	var input models.MatchInput
	if !h.decodeJSON(w, r, &input) {
		return
	}
	if err := models.ValidateStruct(input); err != nil {
		matchesRejected.Inc()
		h.errorResponse(w, http.StatusBadRequest, "Each team needs 1 or 2 player IDs and scores must be non-negative")
		return
	}

	result, err := h.submission.SubmitMatch(r.Context(), input)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	matchesSubmitted.Inc()
	ratingPointsMoved.Add(math.Abs(float64(result.Team1Delta)) + math.Abs(float64(result.Team2Delta)))
	h.jsonResponse(w, http.StatusCreated, result)
}

// writeSubmitError maps workflow errors onto the HTTP surface. A partial
// write is a 500 that carries the match ID so the caller can tell it apart
// from a clean total failure.
func (h *Handler) writeSubmitError(w http.ResponseWriter, err error) {
	var partial *logic.PartialWriteError
	switch {
	case errors.Is(err, logic.ErrInvalidMatch), errors.Is(err, logic.ErrInvalidRoster):
		matchesRejected.Inc()
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &partial):
		submissionsFailed.Inc()
		h.logger.Errorw("Match submission left partial state",
			"match_id", partial.MatchID, "completed", partial.Completed, "error", err)
		h.jsonResponse(w, http.StatusInternalServerError, map[string]interface{}{
			"error":    "Submission failed and could not be fully rolled back",
			"match_id": partial.MatchID,
			"writes":   partial.Completed,
		})
	default:
		submissionsFailed.Inc()
		h.logger.Errorw("Match submission failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetMatches returns the latest matches, newest first. ?limit=N caps the
// page size (default 20).
// @Summary Get Recent Matches
// @Tags Matches
// @Produce json
// @Param limit query int false "Max matches to return"
// @Success 200 {array} models.Match "Matches newest first"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /matches [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	matches, err := h.stats.RecentMatches(r.Context(), limit)
	if err != nil {
		h.logger.Errorw("Failed to list matches", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}
	h.jsonResponse(w, http.StatusOK, matches)
}
