package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	qb "github.com/klubhuset/mvp-tracker/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Get(ctx context.Context, playerID, matchID string, eventType event.Type) (event.PlayerEvent, bool, error) {
	query, args, err := qb.Select("*").From("player_events").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("match_public_id", matchID),
			qb.Eq("event_type", string(eventType)),
		).
		ToSQL()
	if err != nil {
		return event.PlayerEvent{}, false, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.PlayerEvent{}, false, nil
		}
		return event.PlayerEvent{}, false, fmt.Errorf("get event: %w", err)
	}

	return eventFromRow(row), true, nil
}

func (r *EventRepository) ListByPlayerAndMatch(ctx context.Context, playerID, matchID string) ([]event.PlayerEvent, error) {
	query, args, err := qb.Select("*").From("player_events").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("match_public_id", matchID),
		).
		OrderBy("event_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by player and match query: %w", err)
	}

	return r.selectEvents(ctx, query, args, "list events by player and match")
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID string) ([]event.PlayerEvent, error) {
	query, args, err := qb.Select("*").From("player_events").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("player_public_id", "event_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by match query: %w", err)
	}

	return r.selectEvents(ctx, query, args, "list events by match")
}

func (r *EventRepository) ListByPlayer(ctx context.Context, playerID string) ([]event.PlayerEvent, error) {
	query, args, err := qb.Select("*").From("player_events").
		Where(qb.Eq("player_public_id", playerID)).
		OrderBy("match_public_id", "event_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by player query: %w", err)
	}

	return r.selectEvents(ctx, query, args, "list events by player")
}

func (r *EventRepository) selectEvents(ctx context.Context, query string, args []any, op string) ([]event.PlayerEvent, error) {
	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]event.PlayerEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

// SetCount writes the absolute count. A zero count deletes the row instead
// so the table never holds empty entries.
func (r *EventRepository) SetCount(ctx context.Context, item event.PlayerEvent) error {
	if item.Count == 0 {
		return r.Delete(ctx, item.PlayerID, item.MatchID, item.Type)
	}

	insertModel := eventInsertModel{
		PlayerID:  item.PlayerID,
		MatchID:   item.MatchID,
		EventType: string(item.Type),
		Count:     item.Count,
	}

	query, args, err := qb.InsertModel("player_events", insertModel, `ON CONFLICT (player_public_id, match_public_id, event_type)
DO UPDATE SET
    count = EXCLUDED.count,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build event upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, playerID, matchID string, eventType event.Type) error {
	query, args, err := qb.DeleteFrom("player_events").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("match_public_id", matchID),
			qb.Eq("event_type", string(eventType)),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *EventRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("player_events").
		Where(qb.Eq("match_public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete events by match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete events by match: %w", err)
	}
	return nil
}

func (r *EventRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("player_events").
		Where(qb.Eq("player_public_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete events by player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete events by player: %w", err)
	}
	return nil
}

func eventFromRow(row eventTableModel) event.PlayerEvent {
	return event.PlayerEvent{
		PlayerID: row.PlayerID,
		MatchID:  row.MatchID,
		Type:     event.Type(row.EventType),
		Count:    row.Count,
	}
}
