// Package stats is the aggregation core of the service: pure, deterministic
// folds from match document snapshots to derived views (season summaries,
// form, trends, rankings, timelines).
//
// Every function here takes already-fetched slices and returns freshly
// constructed values. No I/O, no context, no mutation of inputs; calling a
// function twice on the same snapshot yields identical output. Malformed or
// missing statistical sub-fields never fail a fold, they read as zero.
package stats

import (
	"math"
	"sort"

	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// Result strings as shown in form views. "V" follows the Dutch convention
// for a loss (verloren).
const (
	ResultWin  = "W"
	ResultDraw = "D"
	ResultLoss = "V"
)

// Accumulate adds a delta onto a running shot-type total. Goals and
// attempts accumulate independently.
func Accumulate(total, delta model.ShotStat) model.ShotStat {
	return model.ShotStat{
		Goals:    total.Goals + delta.Goals,
		Attempts: total.Attempts + delta.Attempts,
	}
}

// Percentage returns the success rate of a shot stat as a whole number in
// 0..100, rounding half up. Zero attempts is a defined zero, not an error.
func Percentage(s model.ShotStat) int {
	return pct(s.Goals, s.Attempts)
}

func pct(goals, attempts int) int {
	if attempts <= 0 {
		return 0
	}
	return int(math.Round(float64(goals) / float64(attempts) * 100))
}

// round1 rounds to one decimal, half up. Used for goals per match.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// StatFor is the total lookup over a match player's stat mapping: missing
// keys (legacy documents without outstart) read as a zero stat, never nil.
func StatFor(p model.MatchPlayer, t model.ShotType) model.ShotStat {
	if p.Stats == nil {
		return model.ShotStat{}
	}
	return p.Stats[t]
}

// resultOf classifies a match outcome. Exactly one of W/D/V applies.
func resultOf(m model.Match) string {
	switch {
	case m.Score > m.OpponentScore:
		return ResultWin
	case m.Score == m.OpponentScore:
		return ResultDraw
	default:
		return ResultLoss
	}
}

// finishedOnly filters to matches that entered the books. Unfinished
// matches are live work-in-progress and never aggregate.
func finishedOnly(matches []model.Match) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Finished {
			out = append(out, m)
		}
	}
	return out
}

// byDateDesc returns a copy sorted most recent first. The sort is stable so
// equal (or unparseable, zero-time) dates keep their original order.
func byDateDesc(matches []model.Match) []model.Match {
	out := make([]model.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ParseDate().After(out[j].ParseDate())
	})
	return out
}
