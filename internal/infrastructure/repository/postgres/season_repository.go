package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/klubhuset/mvp-tracker/internal/domain/season"
	qb "github.com/klubhuset/mvp-tracker/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) Get(ctx context.Context, id string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.IsNull("deleted_at")).
		OrderBy("start_date NULLS LAST", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) ListByTeam(ctx context.Context, teamID string) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_date NULLS LAST", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons by team query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons by team: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) Upsert(ctx context.Context, item season.Season) error {
	insertModel := seasonInsertModel{
		PublicID:     item.ID,
		TeamPublicID: item.TeamID,
		Name:         item.Name,
		StartDate:    item.StartDate,
		EndDate:      item.EndDate,
	}

	query, args, err := qb.InsertModel("seasons", insertModel, `ON CONFLICT (public_id)
DO UPDATE SET
    team_public_id = EXCLUDED.team_public_id,
    name = EXCLUDED.name,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build season upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert season: %w", err)
	}
	return nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("seasons").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	return nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:        row.PublicID,
		TeamID:    row.TeamPublicID,
		Name:      row.Name,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
