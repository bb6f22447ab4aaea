package handlers

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/courtside/rating-api/internal/models"
)

// GetRivalries returns the top singles rivalries. An unchanged corpus yields
// a byte-identical response; a sub-threshold corpus yields an empty list.
// @Summary Get Fiercest Rivalries
// @Tags Statistics
// @Produce json
// @Success 200 {array} models.Rivalry "Top Rivalries"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/rivalries [get]
func (h *Handler) GetRivalries(w http.ResponseWriter, r *http.Request) {
	rivalries, err := h.stats.Rivalries(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to compute rivalries", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	statsRecomputes.Inc()
	if rivalries == nil {
		rivalries = []models.Rivalry{}
	}
	h.jsonResponse(w, http.StatusOK, rivalries)
}

// GetSynergies returns the top doubles partnerships.
// @Summary Get Best Team Synergies
// @Tags Statistics
// @Produce json
// @Success 200 {array} models.Synergy "Top Partnerships"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/synergies [get]
func (h *Handler) GetSynergies(w http.ResponseWriter, r *http.Request) {
	synergies, err := h.stats.Synergies(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to compute synergies", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	statsRecomputes.Inc()
	if synergies == nil {
		synergies = []models.Synergy{}
	}
	h.jsonResponse(w, http.StatusOK, synergies)
}

// GetTrend returns the rating time series for the current top players.
// ?top=N picks how many leaderboard players to track (default 2).
// @Summary Get Rating Trend
// @Tags Statistics
// @Produce json
// @Param top query int false "How many top players to track"
// @Success 200 {object} models.TrendResult "Per-Date Rating Rows"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/trend [get]
func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	topN := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		if n, err := strconv.Atoi(topStr); err == nil {
			topN = n
		}
	}

	trend, err := h.stats.Trend(r.Context(), topN)
	if err != nil {
		h.logger.Errorw("Failed to build rating trend", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	statsRecomputes.Inc()
	h.jsonResponse(w, http.StatusOK, trend)
}

// GetSummary returns the dashboard payload: the stat cards plus the latest
// matches. The two collections are independent, so they are fetched
// concurrently.
// @Summary Get Club Summary
// @Tags Statistics
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary Cards + Recent Matches"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var (
		summary *models.ClubSummary
		recent  []models.Match
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		summary, err = h.stats.Summary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = h.stats.RecentMatches(ctx, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger.Errorw("Failed to build summary", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if recent == nil {
		recent = []models.Match{}
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"summary":        summary,
		"recent_matches": recent,
	})
}
