package stats

import (
	"fmt"
	"sort"

	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// SeasonSummary folds all finished matches into the team-wide season view.
// An empty snapshot returns the zero summary, never an error.
func SeasonSummary(matches []model.Match) model.TeamSeasonSummary {
	var out model.TeamSeasonSummary
	for _, m := range finishedOnly(matches) {
		out.Matches++
		out.GoalsFor += m.Score
		out.GoalsAgainst += m.OpponentScore
		switch resultOf(m) {
		case ResultWin:
			out.Wins++
		case ResultDraw:
			out.Draws++
		default:
			out.Losses++
		}
		for _, p := range m.Players {
			for _, t := range model.ShotTypes() {
				out.TotalAttempts += StatFor(p, t).Attempts
			}
		}
	}
	out.GoalDifference = out.GoalsFor - out.GoalsAgainst
	out.ShotPercentage = pct(out.GoalsFor, out.TotalAttempts)
	return out
}

// OpponentRecords groups finished matches by the exact opponent string and
// accumulates the head-to-head record per group, in first-seen order.
func OpponentRecords(matches []model.Match) []model.OpponentRecord {
	groups := newGrouping[string, model.OpponentRecord]()
	for _, m := range finishedOnly(matches) {
		rec := groups.at(m.Opponent)
		rec.Opponent = m.Opponent
		rec.Played++
		rec.GoalsFor += m.Score
		rec.GoalsAgainst += m.OpponentScore
		switch resultOf(m) {
		case ResultWin:
			rec.Wins++
		case ResultDraw:
			rec.Draws++
		default:
			rec.Losses++
		}
	}
	out := groups.values()
	for i := range out {
		out[i].WinPercentage = pct(out[i].Wins, out[i].Played)
	}
	return out
}

// dutchMonths are the short month names used in trend labels.
var dutchMonths = [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}

type yearMonth struct {
	year  int
	month int
}

// unknownMonthLabel marks the bucket collecting matches whose date never
// parsed. It must not look like a real month.
const unknownMonthLabel = "onbekend"

// MonthlyTrends buckets finished matches by the UTC calendar month of their
// date and emits the buckets in ascending year-month order. Matches with an
// unparseable date land in the zero-time bucket (January year 1), sort
// first and are labeled "onbekend" rather than as a real month.
func MonthlyTrends(matches []model.Match) []model.MonthlyTrendBucket {
	groups := newGrouping[yearMonth, model.MonthlyTrendBucket]()
	for _, m := range finishedOnly(matches) {
		d := m.ParseDate()
		key := yearMonth{year: d.Year(), month: int(d.Month())}
		b := groups.at(key)
		b.Year = key.year
		b.Month = key.month
		b.Matches++
		b.GoalsFor += m.Score
		b.GoalsAgainst += m.OpponentScore
		if resultOf(m) == ResultWin {
			b.Wins++
		}
	}
	out := groups.values()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	for i := range out {
		if out[i].Year == 1 && out[i].Month == 1 {
			out[i].Label = unknownMonthLabel
			continue
		}
		out[i].Label = fmt.Sprintf("%s '%02d", dutchMonths[out[i].Month-1], out[i].Year%100)
	}
	return out
}

// playerTotals is the shared accumulator behind season and career stats.
type playerTotals struct {
	id       model.PlayerID
	name     string
	goals    int
	attempts int
	matches  int
	byType   map[model.ShotType]model.ShotStat
}

// foldPlayers accumulates per-player totals over finished matches, grouped
// by normalized player id in order of first appearance.
func foldPlayers(matches []model.Match) []playerTotals {
	groups := newGrouping[model.PlayerID, playerTotals]()
	for _, m := range finishedOnly(matches) {
		for _, p := range m.Players {
			tot := groups.at(p.ID)
			if tot.byType == nil {
				tot.id = p.ID
				tot.name = p.Name
				tot.byType = make(map[model.ShotType]model.ShotStat, 7)
				for _, t := range model.ShotTypes() {
					tot.byType[t] = model.ShotStat{}
				}
			}
			tot.matches++
			for _, t := range model.ShotTypes() {
				s := StatFor(p, t)
				tot.goals += s.Goals
				tot.attempts += s.Attempts
				tot.byType[t] = Accumulate(tot.byType[t], s)
			}
		}
	}
	return groups.values()
}

func (t playerTotals) seasonStat() model.PlayerSeasonStat {
	out := model.PlayerSeasonStat{
		PlayerID:   t.id,
		Name:       t.name,
		Goals:      t.goals,
		Attempts:   t.attempts,
		Matches:    t.matches,
		Percentage: pct(t.goals, t.attempts),
	}
	if t.matches > 0 {
		out.GoalsPerMatch = round1(float64(t.goals) / float64(t.matches))
	}
	return out
}

// PlayerSeasonStats returns per-player totals over the finished matches, in
// order of first appearance.
func PlayerSeasonStats(matches []model.Match) []model.PlayerSeasonStat {
	totals := foldPlayers(matches)
	out := make([]model.PlayerSeasonStat, 0, len(totals))
	for _, t := range totals {
		out = append(out, t.seasonStat())
	}
	return out
}

// PlayerCareerStats extends the season totals with the per-shot-type
// breakdown and the player's best shot type. The roster resolves renamed
// players to their current name; players only present in old match
// documents keep the name recorded there.
func PlayerCareerStats(matches []model.Match, roster []model.Player) []model.PlayerCareerStat {
	names := make(map[model.PlayerID]string, len(roster))
	for _, p := range roster {
		names[model.PlayerID(p.ID)] = p.Name
	}

	totals := foldPlayers(matches)
	out := make([]model.PlayerCareerStat, 0, len(totals))
	for _, t := range totals {
		stat := model.PlayerCareerStat{
			PlayerSeasonStat: t.seasonStat(),
			ByType:           make(map[model.ShotType]model.ShotTypeStat, 7),
		}
		if name, ok := names[t.id]; ok {
			stat.Name = name
		}
		for _, typ := range model.ShotTypes() {
			s := t.byType[typ]
			stat.ByType[typ] = model.ShotTypeStat{
				Goals:      s.Goals,
				Attempts:   s.Attempts,
				Percentage: Percentage(s),
			}
		}
		stat.BestShotType = bestShotType(t.byType)
		out = append(out, stat)
	}
	return out
}

// bestShotType picks the type with the most cumulative goals among types
// with at least one goal. Ties resolve to the earlier type in canonical
// order; nil when the player never scored.
func bestShotType(byType map[model.ShotType]model.ShotStat) *model.ShotType {
	var best *model.ShotType
	bestGoals := 0
	for _, t := range model.ShotTypes() {
		if g := byType[t].Goals; g > bestGoals {
			typ := t
			best = &typ
			bestGoals = g
		}
	}
	return best
}
