package service

import (
	"context"
	"time"

	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
	"github.com/maxviazov/korfball-stats-service/internal/stats"
	"github.com/rs/zerolog"
)

// statsService is glue between storage and the pure aggregation core: it
// validates the query, materializes the team's snapshot and hands it over.
// Each call recomputes from scratch; a season's worth of matches is small
// enough that caching would only buy staleness.
type statsService struct {
	matches repository.MatchRepository
	players repository.PlayerRepository
	teams   repository.TeamRepository
	log     zerolog.Logger
}

func NewStatsService(matches repository.MatchRepository, players repository.PlayerRepository, teams repository.TeamRepository, logger zerolog.Logger) StatsService {
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	return &statsService{matches: matches, players: players, teams: teams, log: l}
}

// snapshot fetches the finished matches the aggregation core operates on.
func (s *statsService) snapshot(ctx context.Context, teamID int64) ([]model.Match, error) {
	if teamID <= 0 {
		return nil, NewInvalidInputError([]FieldError{{Field: "team_id", Message: "must be > 0"}})
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.matches.ListFinishedByTeam(ctx, teamID)
}

func (s *statsService) SeasonSummary(ctx context.Context, teamID int64) (model.TeamSeasonSummary, error) {
	start := time.Now()
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return model.TeamSeasonSummary{}, err
	}
	out := stats.SeasonSummary(snap)
	s.log.Debug().Dur("took", time.Since(start)).Int64("team_id", teamID).Int("matches", out.Matches).Msg("season summary computed")
	return out, nil
}

func (s *statsService) Form(ctx context.Context, teamID int64, n int) ([]model.FormEntry, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return stats.FormLastN(snap, normalizeWindow(n)), nil
}

func (s *statsService) MonthlyTrends(ctx context.Context, teamID int64) ([]model.MonthlyTrendBucket, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return stats.MonthlyTrends(snap), nil
}

func (s *statsService) OpponentStats(ctx context.Context, teamID int64) ([]model.OpponentRecord, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return stats.OpponentStats(snap), nil
}

func (s *statsService) TopPlayers(ctx context.Context, teamID int64, limit int) ([]model.PlayerSeasonStat, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return stats.TopPlayers(snap, normalizeLimit(limit)), nil
}

func (s *statsService) PlayerSeasonStats(ctx context.Context, teamID int64) ([]model.PlayerSeasonStat, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return stats.PlayerSeasonStats(snap), nil
}

func (s *statsService) PlayerCareerStats(ctx context.Context, teamID int64) ([]model.PlayerCareerStat, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	roster, err := s.players.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return stats.PlayerCareerStats(snap, roster), nil
}

func (s *statsService) PlayerOfMonth(ctx context.Context, teamID int64, now time.Time) (*model.PlayerOfMonth, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return stats.PlayerOfMonth(snap, now), nil
}

func (s *statsService) ShotTypeTrend(ctx context.Context, teamID int64, n int) (model.ShotTypeTrend, error) {
	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return model.ShotTypeTrend{}, err
	}
	return stats.TypeTrend(snap, normalizeWindow(n)), nil
}
