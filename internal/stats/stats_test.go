package stats

import (
	"testing"

	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// mkStats builds a stat map from (type, goals, attempts) triples.
func mkStats(triples ...any) map[model.ShotType]model.ShotStat {
	out := make(map[model.ShotType]model.ShotStat)
	for i := 0; i+2 < len(triples); i += 3 {
		t := triples[i].(model.ShotType)
		out[t] = model.ShotStat{Goals: triples[i+1].(int), Attempts: triples[i+2].(int)}
	}
	return out
}

// mkPlayer builds a match player line.
func mkPlayer(id, name string, stats map[model.ShotType]model.ShotStat) model.MatchPlayer {
	return model.MatchPlayer{ID: model.PlayerID(id), Name: name, Stats: stats}
}

// mkMatch builds a finished match with the given score line.
func mkMatch(id int64, opponent, date string, score, oppScore int, players ...model.MatchPlayer) model.Match {
	return model.Match{
		ID:            id,
		TeamID:        1,
		Opponent:      opponent,
		Date:          date,
		Players:       players,
		Score:         score,
		OpponentScore: oppScore,
		Finished:      true,
	}
}

func TestAccumulate(t *testing.T) {
	got := Accumulate(model.ShotStat{Goals: 2, Attempts: 5}, model.ShotStat{Goals: 1, Attempts: 3})
	want := model.ShotStat{Goals: 3, Attempts: 8}
	if got != want {
		t.Fatalf("Accumulate = %+v, want %+v", got, want)
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		name string
		stat model.ShotStat
		want int
	}{
		{"zero attempts is defined zero", model.ShotStat{Goals: 3, Attempts: 0}, 0},
		{"all zero", model.ShotStat{}, 0},
		{"exact half rounds up", model.ShotStat{Goals: 1, Attempts: 8}, 13}, // 12.5
		{"plain", model.ShotStat{Goals: 1, Attempts: 3}, 33},
		{"full", model.ShotStat{Goals: 7, Attempts: 7}, 100},
		{"goals above attempts does not panic", model.ShotStat{Goals: 5, Attempts: 2}, 250},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percentage(tc.stat); got != tc.want {
				t.Fatalf("Percentage(%+v) = %d, want %d", tc.stat, got, tc.want)
			}
		})
	}
}

func TestPercentageBounds(t *testing.T) {
	// goals <= attempts keeps the result in 0..100 for any inputs.
	for goals := 0; goals <= 20; goals++ {
		for attempts := goals; attempts <= 20; attempts++ {
			got := pct(goals, attempts)
			if got < 0 || got > 100 {
				t.Fatalf("pct(%d,%d) = %d out of bounds", goals, attempts, got)
			}
		}
	}
}

func TestStatForMissingKey(t *testing.T) {
	p := mkPlayer("p1", "Anna", mkStats(model.ShotDistance, 2, 4))
	if got := StatFor(p, model.ShotOutstart); got != (model.ShotStat{}) {
		t.Fatalf("missing outstart should read as zero, got %+v", got)
	}
	if got := StatFor(model.MatchPlayer{}, model.ShotDistance); got != (model.ShotStat{}) {
		t.Fatalf("nil stats map should read as zero, got %+v", got)
	}
}

func TestByDateDescStable(t *testing.T) {
	matches := []model.Match{
		mkMatch(1, "A", "2024-03-01", 10, 5),
		mkMatch(2, "B", "not-a-date", 8, 8),
		mkMatch(3, "C", "2024-05-01", 7, 9),
		mkMatch(4, "D", "not-a-date-either", 1, 1),
	}
	sorted := byDateDesc(matches)
	wantIDs := []int64{3, 1, 2, 4} // invalid dates collapse to zero time, keep relative order, sort last
	for i, want := range wantIDs {
		if sorted[i].ID != want {
			t.Fatalf("position %d: got match %d, want %d", i, sorted[i].ID, want)
		}
	}
}
