package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
	qb "github.com/klubhuset/mvp-tracker/internal/platform/querybuilder"
)

type AssignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Get(ctx context.Context, playerID, matchID string) (assignment.PlayerPosition, bool, error) {
	query, args, err := qb.Select("*").From("player_positions").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("match_public_id", matchID),
		).
		ToSQL()
	if err != nil {
		return assignment.PlayerPosition{}, false, fmt.Errorf("build get assignment query: %w", err)
	}

	var row assignmentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return assignment.PlayerPosition{}, false, nil
		}
		return assignment.PlayerPosition{}, false, fmt.Errorf("get assignment: %w", err)
	}

	return assignmentFromRow(row), true, nil
}

func (r *AssignmentRepository) ListByMatch(ctx context.Context, matchID string) ([]assignment.PlayerPosition, error) {
	query, args, err := qb.Select("*").From("player_positions").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list assignments by match query: %w", err)
	}

	return r.selectAssignments(ctx, query, args, "list assignments by match")
}

func (r *AssignmentRepository) ListByPlayer(ctx context.Context, playerID string) ([]assignment.PlayerPosition, error) {
	query, args, err := qb.Select("*").From("player_positions").
		Where(qb.Eq("player_public_id", playerID)).
		OrderBy("match_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list assignments by player query: %w", err)
	}

	return r.selectAssignments(ctx, query, args, "list assignments by player")
}

func (r *AssignmentRepository) selectAssignments(ctx context.Context, query string, args []any, op string) ([]assignment.PlayerPosition, error) {
	var rows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]assignment.PlayerPosition, 0, len(rows))
	for _, row := range rows {
		out = append(out, assignmentFromRow(row))
	}
	return out, nil
}

func (r *AssignmentRepository) Upsert(ctx context.Context, item assignment.PlayerPosition) error {
	insertModel := assignmentInsertModel{
		PlayerID: item.PlayerID,
		MatchID:  item.MatchID,
		Position: string(item.Position),
	}

	query, args, err := qb.InsertModel("player_positions", insertModel, `ON CONFLICT (player_public_id, match_public_id)
DO UPDATE SET
    position = EXCLUDED.position,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build assignment upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, playerID, matchID string) error {
	query, args, err := qb.DeleteFrom("player_positions").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("match_public_id", matchID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete assignment query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("player_positions").
		Where(qb.Eq("match_public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete assignments by match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete assignments by match: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("player_positions").
		Where(qb.Eq("player_public_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete assignments by player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete assignments by player: %w", err)
	}
	return nil
}

func assignmentFromRow(row assignmentTableModel) assignment.PlayerPosition {
	return assignment.PlayerPosition{
		PlayerID: row.PlayerID,
		MatchID:  row.MatchID,
		Position: position.Assignable(row.Position),
	}
}
