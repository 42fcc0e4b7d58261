package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
	"github.com/maxviazov/korfball-stats-service/internal/stats"
	"github.com/rs/zerolog"
)

type matchService struct {
	matches repository.MatchRepository
	teams   repository.TeamRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, teams repository.TeamRepository, tx repository.TxManager, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, teams: teams, tx: tx, log: l}
}

// SaveMatch persists a completed match document. A match is written once at
// the end of live tracking; after that only the shareable flag changes.
func (s *matchService) SaveMatch(ctx context.Context, m model.Match) (model.Match, error) {
	start := time.Now()

	var ferrs []FieldError
	if m.TeamID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "team_id", Message: "must be > 0"})
	}
	if m.Opponent == "" {
		ferrs = append(ferrs, FieldError{Field: "opponent", Message: "must not be empty"})
	}
	if !isValidISODate(m.Date) {
		ferrs = append(ferrs, FieldError{Field: "date", Message: "must be an ISO-8601 date"})
	}
	if m.Score < 0 {
		ferrs = append(ferrs, FieldError{Field: "score", Message: "must be >= 0"})
	}
	if m.OpponentScore < 0 {
		ferrs = append(ferrs, FieldError{Field: "opponentScore", Message: "must be >= 0"})
	}
	for i, p := range m.Players {
		if p.ID == "" {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("players[%d].id", i), Message: "must not be empty"})
		}
		for typ, stat := range p.Stats {
			if stat.Goals < 0 || stat.Attempts < 0 {
				ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("players[%d].stats.%s", i, typ), Message: "goals and attempts must be >= 0"})
			}
		}
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed")
		return model.Match{}, err
	}

	var out model.Match
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, m.TeamID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NewInvalidInputError([]FieldError{{Field: "team_id", Message: "team does not exist"}})
			}
			return err
		}
		var err error
		out, err = s.matches.Create(ctx, m)
		return err
	}); err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			s.log.Error().Err(err).Int64("team_id", m.TeamID).Msg("save match failed")
		}
		return model.Match{}, err
	}

	s.log.Info().
		Dur("took", time.Since(start)).
		Int64("match_id", out.ID).
		Int64("team_id", out.TeamID).
		Str("opponent", out.Opponent).
		Bool("finished", out.Finished).
		Msg("match saved")
	return out, nil
}

func (s *matchService) GetMatch(ctx context.Context, id int64) (model.Match, error) {
	if id <= 0 {
		return model.Match{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatchesByTeam(ctx context.Context, teamID int64, page repository.Page) (repository.PageResult[model.Match], error) {
	if teamID <= 0 {
		return repository.PageResult[model.Match]{}, NewInvalidInputError([]FieldError{{Field: "team_id", Message: "must be > 0"}})
	}
	p := normalizePage(page)
	res, err := s.matches.ListByTeam(ctx, teamID, p)
	if err != nil {
		s.log.Error().Err(err).Int64("team_id", teamID).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list matches failed")
		return repository.PageResult[model.Match]{}, err
	}
	return res, nil
}

func (s *matchService) SetShareable(ctx context.Context, id int64, shareable bool) (model.Match, error) {
	if id <= 0 {
		return model.Match{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	out, err := s.matches.SetShareable(ctx, id, shareable)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("match_id", id).Msg("set shareable failed")
		}
		return model.Match{}, err
	}
	s.log.Info().Int64("match_id", id).Bool("shareable", shareable).Msg("shareable toggled")
	return out, nil
}

// GetTimeline reconstructs the goal-by-goal progression for one match,
// whichever document shape it was stored with.
func (s *matchService) GetTimeline(ctx context.Context, matchID int64) ([]model.TimelineEvent, error) {
	if matchID <= 0 {
		return nil, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	m, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return stats.Timeline(m), nil
}
