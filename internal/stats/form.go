package stats

import (
	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// FormLastN returns the results of the n most recent finished matches, most
// recent first. Fewer than n matches returns what exists.
func FormLastN(matches []model.Match, n int) []model.FormEntry {
	if n < 0 {
		n = 0
	}
	recent := byDateDesc(finishedOnly(matches))
	if n < len(recent) {
		recent = recent[:n]
	}
	out := make([]model.FormEntry, 0, len(recent))
	for _, m := range recent {
		out = append(out, model.FormEntry{
			MatchID:       m.ID,
			Opponent:      m.Opponent,
			Score:         m.Score,
			OpponentScore: m.OpponentScore,
			Date:          m.Date,
			Result:        resultOf(m),
		})
	}
	return out
}

// trendDeadZone is the band of percentage-point movement treated as noise.
// A diff of exactly ±3 still reads as stable.
const trendDeadZone = 3

// TypeTrend compares each shot type's success rate over the n most recent
// finished matches against the full season.
func TypeTrend(matches []model.Match, n int) model.ShotTypeTrend {
	if n < 0 {
		n = 0
	}
	finished := finishedOnly(matches)
	recent := byDateDesc(finished)
	if n < len(recent) {
		recent = recent[:n]
	}

	season := typeTotals(finished)
	window := typeTotals(recent)

	out := model.ShotTypeTrend{
		UsedMatches: len(recent),
		Types:       make([]model.ShotTypeTrendEntry, 0, 7),
	}
	for _, t := range model.ShotTypes() {
		s, w := season[t], window[t]
		entry := model.ShotTypeTrendEntry{
			Type:           t,
			Label:          t.Label(),
			SeasonGoals:    s.Goals,
			SeasonAttempts: s.Attempts,
			SeasonPct:      Percentage(s),
			RecentGoals:    w.Goals,
			RecentAttempts: w.Attempts,
			RecentPct:      Percentage(w),
		}
		entry.Diff = entry.RecentPct - entry.SeasonPct
		switch {
		case entry.Diff > trendDeadZone:
			entry.Trend = "up"
		case entry.Diff < -trendDeadZone:
			entry.Trend = "down"
		default:
			entry.Trend = "stable"
		}
		out.Types = append(out.Types, entry)
	}
	return out
}

// typeTotals sums every player's stats per shot type across the given
// matches.
func typeTotals(matches []model.Match) map[model.ShotType]model.ShotStat {
	totals := make(map[model.ShotType]model.ShotStat, 7)
	for _, m := range matches {
		for _, p := range m.Players {
			for _, t := range model.ShotTypes() {
				totals[t] = Accumulate(totals[t], StatFor(p, t))
			}
		}
	}
	return totals
}
