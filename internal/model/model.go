// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"encoding/json"
	"time"
)

// Team represents a korfball team tracked by the service.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Player is a roster entry. Identity is the ID; names are mutable and may
// repeat within a roster, so they are never used as a grouping key.
type Player struct {
	ID        string    `json:"id"`
	TeamID    int64     `json:"team_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerID is a normalized player identifier. Legacy match documents carry
// numeric ids; they are stringified once on unmarshal so every downstream
// consumer groups on a single key type.
type PlayerID string

func (p *PlayerID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PlayerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PlayerID(n.String())
	return nil
}

// ShotStat counts goals and attempts for one shot type. Both fields are
// accumulated independently; goals > attempts on untrusted legacy input is
// tolerated, never rejected.
type ShotStat struct {
	Goals    int `json:"goals"`
	Attempts int `json:"attempts"`
}

// MatchPlayer is a player's line within one match document. Stats is keyed
// by shot type id; legacy documents may miss the outstart key entirely.
type MatchPlayer struct {
	ID        PlayerID              `json:"id"`
	Name      string                `json:"name"`
	IsStarter bool                  `json:"isStarter"`
	Stats     map[ShotType]ShotStat `json:"stats"`
}

// Goal is one entry in the chronological goal log. Only matches recorded
// after chronological tracking shipped carry these.
type Goal struct {
	PlayerID   PlayerID `json:"playerId"`
	PlayerName string   `json:"playerName"`
	ShotType   ShotType `json:"shotType"`
	Timestamp  string   `json:"timestamp"`
	IsOwn      bool     `json:"isOwn"`
}

// OpponentGoal is the legacy opponent-goal entry, used only when the
// chronological log is absent.
type OpponentGoal struct {
	Type       ShotType `json:"type"`
	Time       string   `json:"time"`
	ConcededBy string   `json:"concededBy"`
}

// Match is a persisted match document. Date stays a raw ISO-8601 string:
// legacy documents contain values the original writer never validated, and
// the aggregation core owns the tolerant parse.
type Match struct {
	ID            int64          `json:"id"`
	TeamID        int64          `json:"team_id"`
	TeamName      string         `json:"teamName"`
	Opponent      string         `json:"opponent"`
	Date          string         `json:"date"`
	Players       []MatchPlayer  `json:"players"`
	Score         int            `json:"score"`
	OpponentScore int            `json:"opponentScore"`
	OpponentGoals []OpponentGoal `json:"opponentGoals,omitempty"`
	Goals         []Goal         `json:"goals,omitempty"`
	Finished      bool           `json:"finished"`
	Shareable     bool           `json:"shareable"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ParseDate parses the document's ISO-8601 date. Legacy writers stored both
// full timestamps and bare dates. Unparseable input yields the zero time,
// which sorts deterministically oldest.
func (m Match) ParseDate() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, m.Date); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// TeamSeasonSummary is the team-wide fold over all finished matches.
// Read-only query result, never persisted.
type TeamSeasonSummary struct {
	Matches        int `json:"matches"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
	TotalAttempts  int `json:"total_attempts"`
	ShotPercentage int `json:"shot_percentage"`
}

// FormEntry is one recent result in the form sequence, most recent first.
// Result is "W", "D" or "V" (verloren).
type FormEntry struct {
	MatchID       int64  `json:"match_id"`
	Opponent      string `json:"opponent"`
	Score         int    `json:"score"`
	OpponentScore int    `json:"opponent_score"`
	Date          string `json:"date"`
	Result        string `json:"result"`
}

// MonthlyTrendBucket aggregates one calendar month of matches (UTC).
type MonthlyTrendBucket struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Label        string `json:"label"`
	Matches      int    `json:"matches"`
	Wins         int    `json:"wins"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
}

// OpponentRecord is the head-to-head record against one opponent name.
// Grouping is by the exact stored string, no normalization.
type OpponentRecord struct {
	Opponent      string `json:"opponent"`
	Played        int    `json:"played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goals_for"`
	GoalsAgainst  int    `json:"goals_against"`
	WinPercentage int    `json:"win_percentage"`
}

// PlayerSeasonStat holds one player's totals over the finished matches they
// appeared in.
type PlayerSeasonStat struct {
	PlayerID      PlayerID `json:"player_id"`
	Name          string   `json:"name"`
	Goals         int      `json:"goals"`
	Attempts      int      `json:"attempts"`
	Matches       int      `json:"matches"`
	Percentage    int      `json:"percentage"`
	GoalsPerMatch float64  `json:"goals_per_match"`
}

// ShotTypeStat is a per-shot-type slice of a career breakdown.
type ShotTypeStat struct {
	Goals      int `json:"goals"`
	Attempts   int `json:"attempts"`
	Percentage int `json:"percentage"`
}

// PlayerCareerStat extends the season totals with a per-shot-type
// breakdown. BestShotType is nil when the player never scored.
type PlayerCareerStat struct {
	PlayerSeasonStat
	ByType       map[ShotType]ShotTypeStat `json:"by_type"`
	BestShotType *ShotType                 `json:"best_shot_type"`
}

// PlayerOfMonth is the top scorer over the rolling 30-day window.
type PlayerOfMonth struct {
	PlayerID PlayerID `json:"player_id"`
	Name     string   `json:"name"`
	Goals    int      `json:"goals"`
	Matches  int      `json:"matches"`
}

// ShotTypeTrendEntry compares one shot type's recent success rate against
// the full season. Trend is "up", "down" or "stable".
type ShotTypeTrendEntry struct {
	Type           ShotType `json:"type"`
	Label          string   `json:"label"`
	SeasonGoals    int      `json:"season_goals"`
	SeasonAttempts int      `json:"season_attempts"`
	SeasonPct      int      `json:"season_pct"`
	RecentGoals    int      `json:"recent_goals"`
	RecentAttempts int      `json:"recent_attempts"`
	RecentPct      int      `json:"recent_pct"`
	Diff           int      `json:"diff"`
	Trend          string   `json:"trend"`
}

// ShotTypeTrend is the full trend report: one entry per shot type plus the
// actual size of the recent window that was available.
type ShotTypeTrend struct {
	UsedMatches int                  `json:"used_matches"`
	Types       []ShotTypeTrendEntry `json:"types"`
}

// TimelineEvent is one goal in a reconstructed match timeline, carrying the
// running score after the event. ConcededBy is only known for opponent goals
// from legacy documents; the chronological log never recorded it.
type TimelineEvent struct {
	Team          string `json:"team"`
	Player        string `json:"player"`
	ShotTypeLabel string `json:"shot_type_label"`
	IsOwn         bool   `json:"is_own"`
	Timestamp     string `json:"timestamp,omitempty"`
	ConcededBy    string `json:"conceded_by,omitempty"`
	Score         int    `json:"score"`
	OpponentScore int    `json:"opponent_score"`
}
