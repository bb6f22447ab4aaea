package logic

import (
	"errors"
	"math"
	"testing"

	"github.com/courtside/rating-api/internal/models"
)

func TestExpectedScore(t *testing.T) {
	e := NewEngine(DefaultKFactor)

	tests := []struct {
		name string
		r    float64
		opp  float64
		want float64
	}{
		{"Equal ratings", 1000, 1000, 0.5},
		{"400 points ahead", 1400, 1000, 10.0 / 11.0},
		{"400 points behind", 1000, 1400, 1.0 / 11.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExpectedScore(tt.r, tt.opp)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ExpectedScore(%v, %v) = %v, want %v", tt.r, tt.opp, got, tt.want)
			}
		})
	}
}

func TestComputeMatchRatings(t *testing.T) {
	e := NewEngine(DefaultKFactor)

	tests := []struct {
		name       string
		team1      float64
		team2      float64
		winner     models.Winner
		wantDelta1 int
		wantDelta2 int
	}{
		{
			// 1000 vs 1000, expected 0.5 each: winner 1000+32*0.5=1016.
			name:       "Even singles match",
			team1:      1000,
			team2:      1000,
			winner:     models.WinnerTeam1,
			wantDelta1: 16,
			wantDelta2: -16,
		},
		{
			name:       "Even match, team2 wins",
			team1:      1000,
			team2:      1000,
			winner:     models.WinnerTeam2,
			wantDelta1: -16,
			wantDelta2: 16,
		},
		{
			// Doubles mean (1100+900)/2 = 1000 vs 1000.
			name:       "Doubles mean vs equal opponent",
			team1:      1000,
			team2:      1000,
			winner:     models.WinnerTeam1,
			wantDelta1: 16,
			wantDelta2: -16,
		},
		{
			// Heavy favorite wins: small gain.
			name:       "Favorite wins",
			team1:      1400,
			team2:      1000,
			winner:     models.WinnerTeam1,
			wantDelta1: 3,
			wantDelta2: -3,
		},
		{
			// Underdog wins: large swing.
			name:       "Underdog wins",
			team1:      1000,
			team2:      1400,
			winner:     models.WinnerTeam1,
			wantDelta1: 29,
			wantDelta2: -29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d1, d2 := e.ComputeMatchRatings(tt.team1, tt.team2, tt.winner)
			if d1 != tt.wantDelta1 || d2 != tt.wantDelta2 {
				t.Errorf("ComputeMatchRatings(%v, %v, %s) = (%d, %d), want (%d, %d)",
					tt.team1, tt.team2, tt.winner, d1, d2, tt.wantDelta1, tt.wantDelta2)
			}
		})
	}
}

func TestComputeMatchRatingsDeltaSigns(t *testing.T) {
	e := NewEngine(DefaultKFactor)

	// Independent rounding means the deltas need not cancel exactly, but
	// they should stay close and the signs must follow the outcome.
	cases := [][2]float64{{1000, 1000}, {1234.5, 987.25}, {800, 1600}, {1500.5, 1500.5}}
	for _, c := range cases {
		d1, d2 := e.ComputeMatchRatings(c[0], c[1], models.WinnerTeam1)
		if d1 < 0 {
			t.Errorf("winner delta negative for ratings %v: %d", c, d1)
		}
		if d2 > 0 {
			t.Errorf("loser delta positive for ratings %v: %d", c, d2)
		}
		if sum := d1 + d2; sum < -2 || sum > 2 {
			t.Errorf("delta sum %d out of rounding tolerance for ratings %v", sum, c)
		}
	}
}

func TestComputeMatchRatingsNoFloor(t *testing.T) {
	e := NewEngine(DefaultKFactor)

	// Ratings are never clamped; a low-rated loser can go negative.
	rating := 5.0
	_, d2 := e.ComputeMatchRatings(5, rating, models.WinnerTeam1)
	rating += float64(d2)
	if rating >= 0 {
		t.Errorf("expected unclamped rating to go negative, got %v", rating)
	}
}

func TestTeamRating(t *testing.T) {
	tests := []struct {
		name    string
		players []models.Player
		want    float64
	}{
		{"Singles", []models.Player{{Rating: 1200}}, 1200},
		{"Doubles", []models.Player{{Rating: 1100}, {Rating: 900}}, 1000},
		{"Empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TeamRating(tt.players); got != tt.want {
				t.Errorf("TeamRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateMatch(t *testing.T) {
	tests := []struct {
		name    string
		team1   []string
		team2   []string
		score1  int
		score2  int
		wantErr error
	}{
		{"Valid singles", []string{"a"}, []string{"b"}, 21, 15, nil},
		{"Valid doubles", []string{"a", "b"}, []string{"c", "d"}, 21, 19, nil},
		{"Valid mixed sizes", []string{"a", "b"}, []string{"c"}, 21, 10, nil},
		{"Tie score", []string{"a"}, []string{"b"}, 21, 21, ErrInvalidMatch},
		{"Score above bound", []string{"a"}, []string{"b"}, 31, 15, ErrInvalidMatch},
		{"Negative score", []string{"a"}, []string{"b"}, -1, 15, ErrInvalidMatch},
		{"Empty team", []string{}, []string{"b"}, 21, 15, ErrInvalidRoster},
		{"Oversized team", []string{"a", "b", "c"}, []string{"d"}, 21, 15, ErrInvalidRoster},
		{"Player on both teams", []string{"a"}, []string{"a"}, 21, 15, ErrInvalidRoster},
		{"Duplicate within team", []string{"a", "a"}, []string{"b"}, 21, 15, ErrInvalidRoster},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMatch(tt.team1, tt.team2, tt.score1, tt.score2, DefaultMaxScore)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateMatch() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMatch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
