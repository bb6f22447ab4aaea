package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/courtside/rating-api/internal/models"
)

func TestGetPlayers(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name           string
		mockFunc       func(ctx context.Context) ([]models.Player, error)
		expectedStatus int
	}{
		{
			name: "Success",
			mockFunc: func(ctx context.Context) ([]models.Player, error) {
				return []models.Player{{ID: "p1", Name: "Alice", Rating: 1016}}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Empty Club",
			mockFunc: func(ctx context.Context) ([]models.Player, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Store Error",
			mockFunc: func(ctx context.Context) ([]models.Player, error) {
				return nil, context.DeadlineExceeded
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{
				roster: &MockRosterService{LeaderboardFunc: tt.mockFunc},
				logger: logger,
			}

			req := httptest.NewRequest("GET", "/api/v1/players", nil)
			w := httptest.NewRecorder()

			h.GetPlayers(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestCreatePlayer(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"name":"Alice"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Name",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Name Too Long",
			body:           `{"name":"` + strings.Repeat("x", 51) + `"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{
				roster: &MockRosterService{},
				logger: logger,
			}

			req := httptest.NewRequest("POST", "/api/v1/players", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.CreatePlayer(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}
