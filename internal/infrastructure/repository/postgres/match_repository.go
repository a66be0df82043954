package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	qb "github.com/klubhuset/mvp-tracker/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Get(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("match_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "list matches")
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID string) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("match_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by season query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "list matches by season")
}

func (r *MatchRepository) ListCompleted(ctx context.Context) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(
			qb.Eq("is_completed", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("match_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list completed matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "list completed matches")
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any, op string) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) Upsert(ctx context.Context, item match.Match) error {
	insertModel := matchInsertModel{
		PublicID:       item.ID,
		TeamPublicID:   item.TeamID,
		SeasonPublicID: item.SeasonID,
		Opponent:       item.Opponent,
		MatchDate:      item.Date,
		Location:       item.Location,
		IsHomeMatch:    item.IsHomeMatch,
		Formation:      string(item.Formation),
		IsCompleted:    item.IsCompleted,
		HomeScore:      intPtrToNullInt(item.HomeScore),
		AwayScore:      intPtrToNullInt(item.AwayScore),
	}

	query, args, err := qb.InsertModel("matches", insertModel, `ON CONFLICT (public_id)
DO UPDATE SET
    team_public_id = EXCLUDED.team_public_id,
    season_public_id = EXCLUDED.season_public_id,
    opponent = EXCLUDED.opponent,
    match_date = EXCLUDED.match_date,
    location = EXCLUDED.location,
    is_home_match = EXCLUDED.is_home_match,
    formation = EXCLUDED.formation,
    is_completed = EXCLUDED.is_completed,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build match upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("matches")
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.PublicID,
		TeamID:      row.TeamPublicID,
		SeasonID:    row.SeasonPublicID,
		Opponent:    row.Opponent,
		Date:        row.MatchDate,
		Location:    row.Location,
		IsHomeMatch: row.IsHomeMatch,
		Formation:   match.Formation(row.Formation),
		IsCompleted: row.IsCompleted,
		HomeScore:   nullIntToIntPtr(row.HomeScore),
		AwayScore:   nullIntToIntPtr(row.AwayScore),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
