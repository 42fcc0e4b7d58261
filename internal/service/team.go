package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
	"github.com/maxviazov/korfball-stats-service/internal/stats"
	"github.com/rs/zerolog"
)

// teamService holds team and roster use-case logic: validation + orchestration,
// no transport / SQL details.
type teamService struct {
	teams   repository.TeamRepository
	players repository.PlayerRepository
	matches repository.MatchRepository
	log     zerolog.Logger
}

func NewTeamService(teams repository.TeamRepository, players repository.PlayerRepository, matches repository.MatchRepository, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{teams: teams, players: players, matches: matches, log: l}
}

func (s *teamService) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	start := time.Now()
	original := name
	name = strings.TrimSpace(name)

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln < 2 || ln > 50 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be between 2 and 50"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Str("name_raw", original).Interface("field_errors", ferrs).Msg("team validation failed")
		return model.Team{}, err
	}

	out, err := s.teams.Create(ctx, model.Team{Name: name})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("name", name).Msg("create team failed")
		return model.Team{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("team_id", out.ID).Msg("team created")
	return out, nil
}

func (s *teamService) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	if id <= 0 {
		return model.Team{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context, page repository.Page) (repository.PageResult[model.Team], error) {
	p := normalizePage(page)
	res, err := s.teams.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list teams failed")
		return repository.PageResult[model.Team]{}, err
	}
	return res, nil
}

func (s *teamService) AddPlayer(ctx context.Context, teamID int64, name string) (model.Player, error) {
	name = strings.TrimSpace(name)

	var ferrs []FieldError
	if teamID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "team_id", Message: "must be > 0"})
	}
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln > 50 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be <= 50"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.Player{}, err
	}

	// Existence check improves client UX vs deferring to FK violation.
	// Duplicate names are allowed: identity is the id, merging by name is a
	// separate explicit admin operation.
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Player{}, NewInvalidInputError([]FieldError{{Field: "team_id", Message: "team does not exist"}})
		}
		return model.Player{}, err
	}

	out, err := s.players.Create(ctx, model.Player{TeamID: teamID, Name: name})
	if err != nil {
		s.log.Error().Err(err).Int64("team_id", teamID).Str("name", name).Msg("add player failed")
		return model.Player{}, err
	}
	s.log.Info().Int64("team_id", teamID).Str("player_id", out.ID).Msg("player added")
	return out, nil
}

func (s *teamService) ListRoster(ctx context.Context, teamID int64) ([]model.Player, error) {
	if teamID <= 0 {
		return nil, NewInvalidInputError([]FieldError{{Field: "team_id", Message: "must be > 0"}})
	}
	return s.players.ListByTeam(ctx, teamID)
}

// SuggestMergeTarget collects every team matching the name, gathers the
// evidence (match count, roster size) and lets the ranking core pick the
// deterministic survivor.
func (s *teamService) SuggestMergeTarget(ctx context.Context, name string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, NewInvalidInputError([]FieldError{{Field: "name", Message: "must not be empty"}})
	}

	teams, err := s.teams.ListByName(ctx, name)
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("list teams by name failed")
		return model.Team{}, err
	}
	if len(teams) == 0 {
		return model.Team{}, repository.ErrNotFound
	}

	candidates := make([]stats.MergeCandidate, 0, len(teams))
	for _, t := range teams {
		matchCount, err := s.matches.CountByTeam(ctx, t.ID)
		if err != nil {
			return model.Team{}, err
		}
		rosterSize, err := s.players.CountByTeam(ctx, t.ID)
		if err != nil {
			return model.Team{}, err
		}
		candidates = append(candidates, stats.MergeCandidate{Team: t, MatchCount: matchCount, RosterSize: rosterSize})
	}

	target, ok := stats.SuggestMergeTarget(candidates)
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	s.log.Info().Str("name", name).Int64("target_id", target.ID).Int("duplicates", len(teams)).Msg("merge target suggested")
	return target, nil
}
