package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
	"github.com/maxviazov/korfball-stats-service/internal/service"
)

func seededStatsService(t *testing.T) (service.StatsService, int64) {
	t.Helper()
	logger := zerolog.New(io.Discard)
	teams := newFakeTeamRepo()
	team, _ := teams.Create(context.Background(), model.Team{Name: "KV Meervogels"})
	players := newFakePlayerRepo()
	matches := newFakeMatchRepo()

	mk := func(date string, score, opp int, finished bool) model.Match {
		return model.Match{
			TeamID:        team.ID,
			Opponent:      "KV Noord",
			Date:          date,
			Score:         score,
			OpponentScore: opp,
			Finished:      finished,
			Players: []model.MatchPlayer{
				{ID: "p1", Name: "Anna", Stats: map[model.ShotType]model.ShotStat{
					model.ShotDistance: {Goals: score, Attempts: score + 4},
				}},
			},
		}
	}
	matches.Create(context.Background(), mk("2024-01-10", 10, 5, true))
	matches.Create(context.Background(), mk("2024-02-10", 6, 6, true))
	matches.Create(context.Background(), mk("2024-03-10", 4, 9, false)) // in progress

	return service.NewStatsService(matches, players, teams, logger), team.ID
}

func TestStatsService_SeasonSummary(t *testing.T) {
	svc, teamID := seededStatsService(t)

	got, err := svc.SeasonSummary(context.Background(), teamID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Matches != 2 {
		t.Fatalf("unfinished match leaked into aggregates: %+v", got)
	}
	if got.Wins != 1 || got.Draws != 1 || got.Losses != 0 {
		t.Fatalf("unexpected W/D/L: %+v", got)
	}
	if got.GoalsFor != 16 || got.GoalsAgainst != 11 {
		t.Fatalf("unexpected goals: %+v", got)
	}
}

func TestStatsService_Validation(t *testing.T) {
	svc, _ := seededStatsService(t)

	if _, err := svc.SeasonSummary(context.Background(), 0); err == nil {
		t.Fatal("expected validation error for team id 0")
	}
	if _, err := svc.SeasonSummary(context.Background(), 404); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
}

func TestStatsService_FormWindowNormalization(t *testing.T) {
	svc, teamID := seededStatsService(t)

	// n<=0 falls back to the default window rather than failing.
	got, err := svc.Form(context.Background(), teamID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both finished matches, got %d", len(got))
	}
	if got[0].Result != "D" || got[1].Result != "W" {
		t.Fatalf("unexpected form order: %+v", got)
	}
}

func TestStatsService_PlayerOfMonthZeroNow(t *testing.T) {
	svc, teamID := seededStatsService(t)

	// Zero now means "as of now"; fixture dates are in the past, so the
	// window is empty and nil is the valid answer.
	got, err := svc.PlayerOfMonth(context.Background(), teamID, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil && got.Goals == 0 {
		t.Fatalf("scoreless player of month: %+v", got)
	}
}

func TestStatsService_TopPlayers(t *testing.T) {
	svc, teamID := seededStatsService(t)

	got, err := svc.TopPlayers(context.Background(), teamID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != "p1" || got[0].Goals != 16 {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}
