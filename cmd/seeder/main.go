package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/courtside/rating-api/internal/models"
)

// Seeds a demo club through the public API: registers a roster, then
// submits a mix of singles and doubles matches so the stats endpoints
// have something to show.

var demoRoster = []string{
	"Alice Tan",
	"Bruno Costa",
	"Carmen Diaz",
	"Dmitri Volkov",
	"Elena Rossi",
	"Felix Odum",
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080/api/v1", "API base URL")
	matches := flag.Int("matches", 30, "number of matches to submit")
	seed := flag.Int64("seed", 1, "random seed, for reproducible demo data")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}
	rng := rand.New(rand.NewSource(*seed))

	playerIDs := make([]string, 0, len(demoRoster))
	for _, name := range demoRoster {
		var created models.Player
		if err := post(client, *apiURL+"/players", models.PlayerInput{Name: name}, &created); err != nil {
			log.Fatalf("Failed to register %s: %v", name, err)
		}
		fmt.Printf("Registered %s (%s)\n", created.Name, created.ID)
		playerIDs = append(playerIDs, created.ID)
	}

	// Backdate the matches so the trend chart has a real time axis.
	day := time.Now().UTC().AddDate(0, 0, -*matches)

	for i := 0; i < *matches; i++ {
		input := randomMatch(rng, playerIDs)
		playedAt := day.Add(time.Duration(i) * 24 * time.Hour)
		input.PlayedAt = &playedAt

		var result models.SubmissionResult
		if err := post(client, *apiURL+"/matches", input, &result); err != nil {
			log.Fatalf("Failed to submit match %d: %v", i+1, err)
		}
		fmt.Printf("Match %d: %d-%d (team1 %+d, team2 %+d)\n",
			i+1, input.Team1Score, input.Team2Score, result.Team1Delta, result.Team2Delta)
	}

	fmt.Println("Seeding complete.")
}

// randomMatch picks either a singles pairing or a doubles pairing from the
// roster, with a plausible racquet-sport score.
func randomMatch(rng *rand.Rand, playerIDs []string) models.MatchInput {
	picks := rng.Perm(len(playerIDs))

	var input models.MatchInput
	if rng.Intn(2) == 0 {
		input.Team1PlayerIDs = []string{playerIDs[picks[0]]}
		input.Team2PlayerIDs = []string{playerIDs[picks[1]]}
	} else {
		input.Team1PlayerIDs = []string{playerIDs[picks[0]], playerIDs[picks[1]]}
		input.Team2PlayerIDs = []string{playerIDs[picks[2]], playerIDs[picks[3]]}
	}

	// Winner reaches 21; loser gets anything below.
	loserScore := rng.Intn(21)
	if rng.Intn(2) == 0 {
		input.Team1Score, input.Team2Score = 21, loserScore
	} else {
		input.Team1Score, input.Team2Score = loserScore, 21
	}
	return input
}

func post(client *http.Client, url string, payload, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %s: %s", resp.Status, raw)
	}
	return json.Unmarshal(raw, dest)
}
