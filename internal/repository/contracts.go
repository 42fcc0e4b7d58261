package repository

import (
	"context"

	"github.com/maxviazov/korfball-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// TeamRepository declares persistence operations for teams.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type TeamRepository interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	GetByID(ctx context.Context, id int64) (model.Team, error)
	List(ctx context.Context, p Page) (PageResult[model.Team], error)
	Exists(ctx context.Context, id int64) (bool, error)
	// ListByName returns every team whose name matches case-insensitively,
	// oldest first. Feeds the duplicate-team merge suggestion.
	ListByName(ctx context.Context, name string) ([]model.Team, error)
}

// PlayerRepository declares persistence operations for roster entries.
// Rosters are small (one team's squad), so listing is unpaged.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error)
	CountByTeam(ctx context.Context, teamID int64) (int, error)
}

// MatchRepository declares persistence operations for match documents.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id int64) (model.Match, error)
	ListByTeam(ctx context.Context, teamID int64, p Page) (PageResult[model.Match], error)
	// ListFinishedByTeam returns the full finished-match snapshot in
	// insertion order. The aggregation core depends on that order for its
	// first-seen tie-breaks, so no other ordering is acceptable here.
	ListFinishedByTeam(ctx context.Context, teamID int64) ([]model.Match, error)
	CountByTeam(ctx context.Context, teamID int64) (int, error)
	// SetShareable toggles the share-link flag; the only mutable bit of a
	// persisted match.
	SetShareable(ctx context.Context, id int64, shareable bool) (model.Match, error)
}
