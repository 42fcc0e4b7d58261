package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
)

type playerRepository struct{ pool *pgxpool.Pool }

func NewPlayerRepository(pool *pgxpool.Pool) repository.PlayerRepository {
	return &playerRepository{pool: pool}
}

func (r *playerRepository) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO players (team_id, name) VALUES ($1, $2)
		 RETURNING id, team_id, name, created_at, updated_at`,
		p.TeamID, p.Name,
	)
	var out model.Player
	if err := row.Scan(&out.ID, &out.TeamID, &out.Name, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, team_id, name, created_at, updated_at
		 FROM players WHERE team_id = $1 ORDER BY created_at, id`, teamID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Player, 0, 16)
	for rows.Next() {
		var it model.Player
		if err := rows.Scan(&it.ID, &it.TeamID, &it.Name, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *playerRepository) CountByTeam(ctx context.Context, teamID int64) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	exec := getQ(ctx, r.pool)
	var n int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM players WHERE team_id = $1`, teamID).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
