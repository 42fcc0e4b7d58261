package stats

import (
	"sort"
	"time"

	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// TopPlayers ranks players by season goals, descending, truncated to limit.
// Equal scorers keep their first-appearance order (stable sort).
func TopPlayers(matches []model.Match, limit int) []model.PlayerSeasonStat {
	ranked := PlayerSeasonStats(matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Goals > ranked[j].Goals
	})
	if limit >= 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// OpponentStats ranks opponent records by win percentage, descending, with
// ties kept in first-seen grouping order.
func OpponentStats(matches []model.Match) []model.OpponentRecord {
	ranked := OpponentRecords(matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WinPercentage > ranked[j].WinPercentage
	})
	return ranked
}

// playerOfMonthWindow is a rolling 30x24h window, not a calendar month.
const playerOfMonthWindow = 30 * 24 * time.Hour

// PlayerOfMonth returns the top scorer over finished matches dated within
// the rolling window ending at now. Players without a goal in the window
// are not candidates; nil when nobody scored. Ties resolve to the player
// first encountered in iteration.
func PlayerOfMonth(matches []model.Match, now time.Time) *model.PlayerOfMonth {
	cutoff := now.Add(-playerOfMonthWindow)

	type tally struct {
		id      model.PlayerID
		name    string
		goals   int
		matches int
	}
	groups := newGrouping[model.PlayerID, tally]()
	for _, m := range finishedOnly(matches) {
		if m.ParseDate().Before(cutoff) {
			continue
		}
		for _, p := range m.Players {
			t := groups.at(p.ID)
			if t.name == "" {
				t.id = p.ID
				t.name = p.Name
			}
			t.matches++
			for _, typ := range model.ShotTypes() {
				t.goals += StatFor(p, typ).Goals
			}
		}
	}

	var best *model.PlayerOfMonth
	for _, t := range groups.values() {
		if t.goals == 0 {
			continue
		}
		if best == nil || t.goals > best.Goals {
			best = &model.PlayerOfMonth{PlayerID: t.id, Name: t.name, Goals: t.goals, Matches: t.matches}
		}
	}
	return best
}

// MergeCandidate pairs a duplicate team with the evidence used to pick a
// merge survivor.
type MergeCandidate struct {
	Team       model.Team
	MatchCount int
	RosterSize int
}

// SuggestMergeTarget picks which of several duplicate teams should survive
// a merge: most matches, then largest roster, then earliest creation, then
// lowest id. The order is total, so the answer is never ambiguous. The
// second return is false when no candidates were given.
func SuggestMergeTarget(candidates []MergeCandidate) (model.Team, bool) {
	if len(candidates) == 0 {
		return model.Team{}, false
	}
	ranked := make([]MergeCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchCount != b.MatchCount {
			return a.MatchCount > b.MatchCount
		}
		if a.RosterSize != b.RosterSize {
			return a.RosterSize > b.RosterSize
		}
		if !a.Team.CreatedAt.Equal(b.Team.CreatedAt) {
			return a.Team.CreatedAt.Before(b.Team.CreatedAt)
		}
		return a.Team.ID < b.Team.ID
	})
	return ranked[0].Team, true
}
