package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
	qb "github.com/klubhuset/mvp-tracker/internal/platform/querybuilder"
)

type PointModelRepository struct {
	db *sqlx.DB
}

func NewPointModelRepository(db *sqlx.DB) *PointModelRepository {
	return &PointModelRepository{db: db}
}

func (r *PointModelRepository) List(ctx context.Context) ([]pointmodel.Entry, error) {
	query, args, err := qb.Select("*").From("point_model_entries").
		OrderBy("position", "event_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list point model query: %w", err)
	}

	var rows []pointModelTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list point model: %w", err)
	}

	out := make([]pointmodel.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, pointmodel.Entry{
			Position:  position.Scoring(row.Position),
			EventType: event.Type(row.EventType),
			Points:    row.Points,
		})
	}
	return out, nil
}

// Replace swaps the whole table inside one transaction so concurrent
// readers see either the old model or the new one, never a mix.
func (r *PointModelRepository) Replace(ctx context.Context, entries []pointmodel.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin point model replace tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM point_model_entries`); err != nil {
		return fmt.Errorf("clear point model: %w", err)
	}

	for _, entry := range entries {
		insertModel := pointModelInsertModel{
			Position:  string(entry.Position),
			EventType: string(entry.EventType),
			Points:    entry.Points,
		}

		query, args, err := qb.InsertModel("point_model_entries", insertModel, "")
		if err != nil {
			return fmt.Errorf("build point model insert query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert point model entry %s/%s: %w", entry.Position, entry.EventType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit point model replace tx: %w", err)
	}
	return nil
}
