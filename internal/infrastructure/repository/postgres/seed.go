package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the default team, roster, and point model into an
// empty database. A database that already has a team row is left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeam() {
		if err := seedExec(ctx, tx, `
INSERT INTO teams (public_id, name, logo_url)
VALUES (:public_id, :name, :logo_url)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": t.ID,
			"name":      t.Name,
			"logo_url":  t.LogoURL,
		}); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := seedExec(ctx, tx, `
INSERT INTO players (public_id, team_public_id, name, number)
VALUES (:public_id, :team_public_id, :name, :number)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      p.ID,
			"team_public_id": p.TeamID,
			"name":           p.Name,
			"number":         intPtrToNullInt(p.Number),
		}); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, s := range memory.SeedSeasons() {
		if err := seedExec(ctx, tx, `
INSERT INTO seasons (public_id, team_public_id, name, start_date, end_date)
VALUES (:public_id, :team_public_id, :name, :start_date, :end_date)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      s.ID,
			"team_public_id": s.TeamID,
			"name":           s.Name,
			"start_date":     s.StartDate,
			"end_date":       s.EndDate,
		}); err != nil {
			return fmt.Errorf("seed season %s: %w", s.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		if err := seedExec(ctx, tx, `
INSERT INTO matches (public_id, team_public_id, season_public_id, opponent, match_date, location, is_home_match, formation, is_completed, home_score, away_score)
VALUES (:public_id, :team_public_id, :season_public_id, :opponent, :match_date, :location, :is_home_match, :formation, :is_completed, :home_score, :away_score)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        m.ID,
			"team_public_id":   m.TeamID,
			"season_public_id": m.SeasonID,
			"opponent":         m.Opponent,
			"match_date":       m.Date,
			"location":         m.Location,
			"is_home_match":    m.IsHomeMatch,
			"formation":        string(m.Formation),
			"is_completed":     m.IsCompleted,
			"home_score":       intPtrToNullInt(m.HomeScore),
			"away_score":       intPtrToNullInt(m.AwayScore),
		}); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	for _, entry := range memory.SeedPointModel() {
		if err := seedExec(ctx, tx, `
INSERT INTO point_model_entries (position, event_type, points)
VALUES (:position, :event_type, :points)
ON CONFLICT (position, event_type) DO NOTHING`, map[string]any{
			"position":   string(entry.Position),
			"event_type": string(entry.EventType),
			"points":     entry.Points,
		}); err != nil {
			return fmt.Errorf("seed point model entry %s/%s: %w", entry.Position, entry.EventType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, query string, args map[string]any) error {
	sqlQuery, bound, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, bound...); err != nil {
		return err
	}
	return nil
}
