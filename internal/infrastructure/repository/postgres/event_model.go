package postgres

import "time"

type eventTableModel struct {
	ID        int64     `db:"id"`
	PlayerID  string    `db:"player_public_id"`
	MatchID   string    `db:"match_public_id"`
	EventType string    `db:"event_type"`
	Count     int       `db:"count"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type eventInsertModel struct {
	PlayerID  string `db:"player_public_id"`
	MatchID   string `db:"match_public_id"`
	EventType string `db:"event_type"`
	Count     int    `db:"count"`
}
