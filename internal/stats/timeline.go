package stats

import (
	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// timelineSource tags which of the two match document shapes drives the
// timeline reconstruction. The variant is resolved exactly once per match.
type timelineSource int

const (
	// chronologicalLog: the match carries an ordered goal log.
	chronologicalLog timelineSource = iota
	// legacyAggregates: pre-goal-log match, only per-player counters and a
	// separate opponent goal list survive.
	legacyAggregates
)

func sourceOf(m model.Match) timelineSource {
	if len(m.Goals) > 0 {
		return chronologicalLog
	}
	return legacyAggregates
}

// Timeline reconstructs the goal-by-goal progression of one match with a
// running score per event.
//
// Matches with a chronological goal log replay it as stored. Legacy matches
// are approximated: each player's counters are replayed as that many
// indistinguishable goals (players in document order, shot types in
// canonical order), then the opponent goals are appended. That path cannot
// recover the true interleaving of own and opponent goals; the running
// score is still a prefix count over the emitted order, which is the best
// the source data supports.
func Timeline(m model.Match) []model.TimelineEvent {
	var events []model.TimelineEvent
	switch sourceOf(m) {
	case chronologicalLog:
		events = make([]model.TimelineEvent, 0, len(m.Goals))
		for _, g := range m.Goals {
			team := m.TeamName
			if !g.IsOwn {
				team = m.Opponent
			}
			events = append(events, model.TimelineEvent{
				Team:          team,
				Player:        g.PlayerName,
				ShotTypeLabel: g.ShotType.Label(),
				IsOwn:         g.IsOwn,
				Timestamp:     g.Timestamp,
			})
		}
	case legacyAggregates:
		// Capacity is only a hint; legacy documents bypass write validation
		// and may carry negative scores.
		hint := m.Score + m.OpponentScore
		if hint < 0 {
			hint = 0
		}
		events = make([]model.TimelineEvent, 0, hint)
		for _, p := range m.Players {
			for _, t := range model.ShotTypes() {
				for i := 0; i < StatFor(p, t).Goals; i++ {
					events = append(events, model.TimelineEvent{
						Team:          m.TeamName,
						Player:        p.Name,
						ShotTypeLabel: t.Label(),
						IsOwn:         true,
					})
				}
			}
		}
		for _, og := range m.OpponentGoals {
			events = append(events, model.TimelineEvent{
				Team:          m.Opponent,
				Player:        m.Opponent,
				ShotTypeLabel: og.Type.Label(),
				IsOwn:         false,
				Timestamp:     og.Time,
				ConcededBy:    og.ConcededBy,
			})
		}
	}

	own, opp := 0, 0
	for i := range events {
		if events[i].IsOwn {
			own++
		} else {
			opp++
		}
		events[i].Score = own
		events[i].OpponentScore = opp
	}
	return events
}
