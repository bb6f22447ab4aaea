package models

// Rivalry ranks a singles player pair by how close their head-to-head
// matches have been. Lower AvgScoreDiff means a fiercer rivalry.
type Rivalry struct {
	Player1      PlayerRef `json:"player1"`
	Player2      PlayerRef `json:"player2"`
	MatchCount   int       `json:"match_count"`
	AvgScoreDiff float64   `json:"avg_score_diff"`
	Player1Wins  int       `json:"player1_wins"`
	Player2Wins  int       `json:"player2_wins"`
}

// Synergy ranks a doubles teammate pair by partnership effectiveness.
type Synergy struct {
	Player1       PlayerRef `json:"player1"`
	Player2       PlayerRef `json:"player2"`
	MatchesPlayed int       `json:"matches_played"`
	MatchesWon    int       `json:"matches_won"`
	WinRate       float64   `json:"win_rate"`
	AvgScoreDiff  float64   `json:"avg_score_diff"`
	SynergyScore  float64   `json:"synergy_score"`
}

// TrendRow is one calendar date of the reconstructed rating time series.
// Ratings is keyed by player ID; a missing key means the player had no
// recorded rating yet on that date.
type TrendRow struct {
	Date    string         `json:"date"` // YYYY-MM-DD
	Ratings map[string]int `json:"ratings"`
}

// TrendResult is the chart payload: the tracked players and their rows.
type TrendResult struct {
	Players []PlayerRef `json:"players"`
	Rows    []TrendRow  `json:"rows"`
}

// BalancedTeam is one side of a balancer partition. WinProbability is the
// linear display estimate, not the rating engine's logistic curve.
type BalancedTeam struct {
	Players        []Player `json:"players"`
	TotalRating    float64  `json:"total_rating"`
	WinProbability float64  `json:"win_probability"`
}

// BalanceResult holds both rosters of a balancing attempt.
type BalanceResult struct {
	TeamA BalancedTeam `json:"team_a"`
	TeamB BalancedTeam `json:"team_b"`
}

// ClubSummary backs the dashboard stat cards.
type ClubSummary struct {
	TotalPlayers  int     `json:"total_players"`
	TotalMatches  int     `json:"total_matches"`
	AverageRating int     `json:"average_rating"`
	TopPlayer     *Player `json:"top_player,omitempty"`
}
