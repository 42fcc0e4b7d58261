package stats

import (
	"testing"

	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// A chronological match and its legacy-shaped equivalent must produce
// timelines of the same length with the same final running score.
func TestTimelineLegacyChronologicalEquivalence(t *testing.T) {
	chronological := model.Match{
		ID:       1,
		TeamName: "KV Meervogels",
		Opponent: "KV Noord",
		Finished: true,
		Goals: []model.Goal{
			{PlayerID: "p1", PlayerName: "Anna", ShotType: model.ShotDistance, Timestamp: "2024-03-01T19:05:00Z", IsOwn: true},
			{PlayerName: "KV Noord", ShotType: model.ShotClose, Timestamp: "2024-03-01T19:08:00Z", IsOwn: false},
		},
	}
	legacy := model.Match{
		ID:       2,
		TeamName: "KV Meervogels",
		Opponent: "KV Noord",
		Finished: true,
		Players: []model.MatchPlayer{
			mkPlayer("p1", "Anna", mkStats(model.ShotDistance, 1, 1)),
		},
		OpponentGoals: []model.OpponentGoal{
			{Type: model.ShotClose, Time: "2024-03-01T19:08:00Z", ConcededBy: "Anna"},
		},
	}

	for _, m := range []model.Match{chronological, legacy} {
		events := Timeline(m)
		if len(events) != 2 {
			t.Fatalf("match %d: expected 2 events, got %d", m.ID, len(events))
		}
		last := events[len(events)-1]
		if last.Score != 1 || last.OpponentScore != 1 {
			t.Fatalf("match %d: final running score = (%d,%d), want (1,1)", m.ID, last.Score, last.OpponentScore)
		}
		if events[0].Team != "KV Meervogels" || events[1].Team != "KV Noord" {
			t.Fatalf("match %d: team attribution = (%q,%q)", m.ID, events[0].Team, events[1].Team)
		}
	}
}

func TestTimelineChronologicalPreservesOrder(t *testing.T) {
	m := model.Match{
		Goals: []model.Goal{
			{PlayerName: "Anna", ShotType: model.ShotPenalty, IsOwn: true},
			{PlayerName: "Bas", ShotType: model.ShotRunthrough, IsOwn: true},
			{PlayerName: "KV Zuid", ShotType: model.ShotOther, IsOwn: false},
			{PlayerName: "Anna", ShotType: model.ShotDistance, IsOwn: true},
		},
	}
	events := Timeline(m)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	wantScores := [][2]int{{1, 0}, {2, 0}, {2, 1}, {3, 1}}
	for i, want := range wantScores {
		if events[i].Score != want[0] || events[i].OpponentScore != want[1] {
			t.Fatalf("event %d score = (%d,%d), want (%d,%d)", i, events[i].Score, events[i].OpponentScore, want[0], want[1])
		}
	}
	if events[0].ShotTypeLabel != model.ShotPenalty.Label() {
		t.Fatalf("label = %q, want %q", events[0].ShotTypeLabel, model.ShotPenalty.Label())
	}
}

// The legacy path replays own goals per player in canonical shot type
// order, then appends opponent goals. The interleaving is an accepted
// approximation; the prefix-scanned score still has to add up.
func TestTimelineLegacyReplay(t *testing.T) {
	m := model.Match{
		Opponent: "KV Zuid",
		Players: []model.MatchPlayer{
			mkPlayer("p1", "Anna", mkStats(model.ShotClose, 2, 3, model.ShotDistance, 1, 4)),
			mkPlayer("p2", "Bas", mkStats(model.ShotPenalty, 1, 1)),
		},
		OpponentGoals: []model.OpponentGoal{
			{Type: model.ShotDistance, Time: "t1", ConcededBy: "Anna"},
			{Type: model.ShotClose, Time: "t2", ConcededBy: "Bas"},
		},
	}
	events := Timeline(m)
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	// Anna's distance goal precedes her close goals (canonical order),
	// all own goals precede the opponent's.
	wantPlayers := []string{"Anna", "Anna", "Anna", "Bas", "KV Zuid", "KV Zuid"}
	for i, want := range wantPlayers {
		if events[i].Player != want {
			t.Fatalf("event %d player = %q, want %q", i, events[i].Player, want)
		}
	}
	if events[0].ShotTypeLabel != model.ShotDistance.Label() {
		t.Fatalf("first own event = %q, canonical order puts distance first", events[0].ShotTypeLabel)
	}
	last := events[len(events)-1]
	if last.Score != 4 || last.OpponentScore != 2 {
		t.Fatalf("final score = (%d,%d), want (4,2)", last.Score, last.OpponentScore)
	}
	// Opponent events keep who conceded them; own goals have nobody to name.
	if events[4].ConcededBy != "Anna" || events[5].ConcededBy != "Bas" {
		t.Fatalf("conceded-by = (%q,%q), want (Anna,Bas)", events[4].ConcededBy, events[5].ConcededBy)
	}
	if events[0].ConcededBy != "" {
		t.Fatalf("own goal carries conceded-by %q", events[0].ConcededBy)
	}
}

// Stored legacy documents never went through write validation; a corrupt
// negative score must degrade to a best-effort timeline, not crash.
func TestTimelineNegativeStoredScore(t *testing.T) {
	m := model.Match{
		TeamName:      "KV Meervogels",
		Opponent:      "KV Noord",
		Score:         -3,
		OpponentScore: 0,
		Players: []model.MatchPlayer{
			mkPlayer("p1", "Anna", mkStats(model.ShotClose, 1, 2)),
		},
	}
	events := Timeline(m)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Score != 1 || events[0].OpponentScore != 0 {
		t.Fatalf("running score = (%d,%d), want (1,0)", events[0].Score, events[0].OpponentScore)
	}
}

func TestTimelineEmptyMatch(t *testing.T) {
	if events := Timeline(model.Match{}); len(events) != 0 {
		t.Fatalf("empty match must yield an empty timeline, got %d events", len(events))
	}
}
