// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: snapshot fetching, validation, domain error shaping; the
// statistical heavy lifting lives in internal/stats and stays pure.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TeamService defines team and roster use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	GetTeam(ctx context.Context, id int64) (model.Team, error)
	ListTeams(ctx context.Context, page repository.Page) (repository.PageResult[model.Team], error)
	AddPlayer(ctx context.Context, teamID int64, name string) (model.Player, error)
	ListRoster(ctx context.Context, teamID int64) ([]model.Player, error)
	// SuggestMergeTarget picks the survivor among teams sharing a name
	// (case-insensitive): most matches, then largest roster, then oldest.
	SuggestMergeTarget(ctx context.Context, name string) (model.Team, error)
}

// MatchService defines match document use cases.
type MatchService interface {
	SaveMatch(ctx context.Context, m model.Match) (model.Match, error)
	GetMatch(ctx context.Context, id int64) (model.Match, error)
	ListMatchesByTeam(ctx context.Context, teamID int64, page repository.Page) (repository.PageResult[model.Match], error)
	SetShareable(ctx context.Context, id int64, shareable bool) (model.Match, error)
	GetTimeline(ctx context.Context, matchID int64) ([]model.TimelineEvent, error)
}

// StatsService exposes the derived statistical views. Every method fetches
// the team's finished-match snapshot and delegates to the aggregation core.
type StatsService interface {
	SeasonSummary(ctx context.Context, teamID int64) (model.TeamSeasonSummary, error)
	Form(ctx context.Context, teamID int64, n int) ([]model.FormEntry, error)
	MonthlyTrends(ctx context.Context, teamID int64) ([]model.MonthlyTrendBucket, error)
	OpponentStats(ctx context.Context, teamID int64) ([]model.OpponentRecord, error)
	TopPlayers(ctx context.Context, teamID int64, limit int) ([]model.PlayerSeasonStat, error)
	PlayerSeasonStats(ctx context.Context, teamID int64) ([]model.PlayerSeasonStat, error)
	PlayerCareerStats(ctx context.Context, teamID int64) ([]model.PlayerCareerStat, error)
	PlayerOfMonth(ctx context.Context, teamID int64, now time.Time) (*model.PlayerOfMonth, error)
	ShotTypeTrend(ctx context.Context, teamID int64, n int) (model.ShotTypeTrend, error)
}
