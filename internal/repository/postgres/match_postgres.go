package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
)

// matchRepository stores matches as JSONB documents next to a few promoted
// columns (team_id, finished, shareable) used for indexing and filtering.
// The document keeps the nested per-player stat maps and goal logs intact,
// legacy shape differences included, which is exactly what the aggregation
// core is built to tolerate.
type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

// matchDoc is the JSONB payload: the match minus the promoted columns.
type matchDoc struct {
	TeamName      string               `json:"teamName"`
	Opponent      string               `json:"opponent"`
	Date          string               `json:"date"`
	Players       []model.MatchPlayer  `json:"players"`
	Score         int                  `json:"score"`
	OpponentScore int                  `json:"opponentScore"`
	OpponentGoals []model.OpponentGoal `json:"opponentGoals,omitempty"`
	Goals         []model.Goal         `json:"goals,omitempty"`
}

func docOf(m model.Match) matchDoc {
	return matchDoc{
		TeamName:      m.TeamName,
		Opponent:      m.Opponent,
		Date:          m.Date,
		Players:       m.Players,
		Score:         m.Score,
		OpponentScore: m.OpponentScore,
		OpponentGoals: m.OpponentGoals,
		Goals:         m.Goals,
	}
}

func scanMatch(row pgx.Row) (model.Match, error) {
	var (
		out model.Match
		raw []byte
	)
	if err := row.Scan(&out.ID, &out.TeamID, &raw, &out.Finished, &out.Shareable, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Match{}, err
	}
	var doc matchDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Match{}, fmt.Errorf("decode match document %d: %w", out.ID, err)
	}
	out.TeamName = doc.TeamName
	out.Opponent = doc.Opponent
	out.Date = doc.Date
	out.Players = doc.Players
	out.Score = doc.Score
	out.OpponentScore = doc.OpponentScore
	out.OpponentGoals = doc.OpponentGoals
	out.Goals = doc.Goals
	return out, nil
}

const matchColumns = `id, team_id, doc, finished, shareable, created_at, updated_at`

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	raw, err := json.Marshal(docOf(m))
	if err != nil {
		return model.Match{}, fmt.Errorf("encode match document: %w", err)
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO matches (team_id, doc, finished, shareable)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+matchColumns,
		m.TeamID, raw, m.Finished, m.Shareable,
	)
	out, err := scanMatch(row)
	if err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	out, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) ListByTeam(ctx context.Context, teamID int64, p repository.Page) (repository.PageResult[model.Match], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Match]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)

	var total int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM matches WHERE team_id = $1`, teamID).Scan(&total); err != nil {
		return repository.PageResult[model.Match]{}, repository.MapPgError(err)
	}

	// Newest first for listings; the raw date string is ISO-8601 so text
	// ordering matches chronological ordering for well-formed documents.
	rows, err := exec.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE team_id = $1
		 ORDER BY doc->>'date' DESC, id DESC
		 LIMIT $2 OFFSET $3`, teamID, limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Match]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Match]{Items: make([]model.Match, 0, limit), Total: total}
	for rows.Next() {
		it, err := scanMatch(rows)
		if err != nil {
			return repository.PageResult[model.Match]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, it)
	}
	return res, rows.Err()
}

func (r *matchRepository) ListFinishedByTeam(ctx context.Context, teamID int64) ([]model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	// Insertion order (id ascending): the aggregation core's first-seen
	// tie-breaks are defined against it.
	rows, err := exec.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE team_id = $1 AND finished
		 ORDER BY id`, teamID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Match, 0, 32)
	for rows.Next() {
		it, err := scanMatch(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *matchRepository) CountByTeam(ctx context.Context, teamID int64) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	exec := getQ(ctx, r.pool)
	var n int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM matches WHERE team_id = $1`, teamID).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

func (r *matchRepository) SetShareable(ctx context.Context, id int64, shareable bool) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE matches SET shareable = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+matchColumns,
		id, shareable,
	)
	out, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.MatchRepository = (*matchRepository)(nil)
