package stats

import (
	"testing"
	"time"

	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// scorerMatch puts 5 players with fixed goal tallies into one match.
func scorerMatch(goals map[string]int) model.Match {
	m := mkMatch(1, "A", "2024-01-10", 0, 0)
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		if g, ok := goals[id]; ok {
			m.Players = append(m.Players, mkPlayer(id, "Player "+id, mkStats(model.ShotDistance, g, g)))
		}
	}
	return m
}

func TestTopPlayersTruncationAndTies(t *testing.T) {
	m := scorerMatch(map[string]int{"p1": 10, "p2": 8, "p3": 8, "p4": 5, "p5": 2})

	got := TopPlayers([]model.Match{m}, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	wantIDs := []model.PlayerID{"p1", "p2", "p3"} // tied 8s keep insertion order
	for i, want := range wantIDs {
		if got[i].PlayerID != want {
			t.Fatalf("rank %d = %s, want %s", i, got[i].PlayerID, want)
		}
	}
	if got[0].Goals != 10 || got[1].Goals != 8 || got[2].Goals != 8 {
		t.Fatalf("unexpected goal column: %d %d %d", got[0].Goals, got[1].Goals, got[2].Goals)
	}
}

func TestTopPlayersEmpty(t *testing.T) {
	if got := TopPlayers(nil, 5); len(got) != 0 {
		t.Fatalf("no matches must rank nobody, got %d", len(got))
	}
}

func TestOpponentStatsOrdering(t *testing.T) {
	matches := []model.Match{
		mkMatch(1, "Weak", "2024-01-10", 10, 2),
		mkMatch(2, "Strong", "2024-01-17", 2, 10),
		mkMatch(3, "Even", "2024-01-24", 5, 5),
		mkMatch(4, "Weak", "2024-01-31", 9, 3),
	}
	got := OpponentStats(matches)
	wantOrder := []string{"Weak", "Even", "Strong"} // 100%, 0%, 0%; ties stay in first-seen order
	if len(got) != 3 {
		t.Fatalf("expected 3 opponents, got %d", len(got))
	}
	if got[0].Opponent != "Weak" || got[0].WinPercentage != 100 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	for i, want := range wantOrder {
		if got[i].Opponent != want {
			t.Fatalf("position %d = %s, want %s", i, got[i].Opponent, want)
		}
	}
}

func TestPlayerOfMonthWindow(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-30 * 24 * time.Hour)

	inside := mkMatch(1, "A", cutoff.Add(time.Second).Format(time.RFC3339), 3, 0,
		mkPlayer("p1", "Anna", mkStats(model.ShotDistance, 3, 5)),
	)
	outside := mkMatch(2, "B", cutoff.Add(-time.Second).Format(time.RFC3339), 9, 0,
		mkPlayer("p2", "Bas", mkStats(model.ShotDistance, 9, 9)),
	)

	got := PlayerOfMonth([]model.Match{outside, inside}, now)
	if got == nil {
		t.Fatal("expected a player of the month")
	}
	if got.PlayerID != "p1" || got.Goals != 3 {
		t.Fatalf("window leak: got %+v, the 9-goal match is older than 30 days", got)
	}
}

func TestPlayerOfMonthExcludesScoreless(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	m := mkMatch(1, "A", "2024-06-20", 0, 4,
		mkPlayer("p1", "Anna", mkStats(model.ShotDistance, 0, 12)),
	)
	if got := PlayerOfMonth([]model.Match{m}, now); got != nil {
		t.Fatalf("scoreless players are no candidates, got %+v", got)
	}
	if got := PlayerOfMonth(nil, now); got != nil {
		t.Fatalf("no matches must yield nil, got %+v", got)
	}
}

func TestPlayerOfMonthTieKeepsFirstSeen(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	m := mkMatch(1, "A", "2024-06-20", 8, 0,
		mkPlayer("p1", "Anna", mkStats(model.ShotDistance, 4, 6)),
		mkPlayer("p2", "Bas", mkStats(model.ShotClose, 4, 4)),
	)
	got := PlayerOfMonth([]model.Match{m}, now)
	if got == nil || got.PlayerID != "p1" {
		t.Fatalf("tie must resolve to first encountered, got %+v", got)
	}
}

func TestSuggestMergeTarget(t *testing.T) {
	early := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		candidates []MergeCandidate
		wantID     int64
	}{
		{
			"most matches wins",
			[]MergeCandidate{
				{Team: model.Team{ID: 1, CreatedAt: early}, MatchCount: 2, RosterSize: 9},
				{Team: model.Team{ID: 2, CreatedAt: late}, MatchCount: 7, RosterSize: 3},
			},
			2,
		},
		{
			"match tie falls to roster size",
			[]MergeCandidate{
				{Team: model.Team{ID: 1, CreatedAt: early}, MatchCount: 4, RosterSize: 5},
				{Team: model.Team{ID: 2, CreatedAt: late}, MatchCount: 4, RosterSize: 11},
			},
			2,
		},
		{
			"full tie falls to earliest creation",
			[]MergeCandidate{
				{Team: model.Team{ID: 1, CreatedAt: late}, MatchCount: 4, RosterSize: 5},
				{Team: model.Team{ID: 2, CreatedAt: early}, MatchCount: 4, RosterSize: 5},
			},
			2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SuggestMergeTarget(tc.candidates)
			if !ok {
				t.Fatal("expected a target")
			}
			if got.ID != tc.wantID {
				t.Fatalf("target = %d, want %d", got.ID, tc.wantID)
			}
		})
	}

	if _, ok := SuggestMergeTarget(nil); ok {
		t.Fatal("no candidates must yield ok=false")
	}
}
