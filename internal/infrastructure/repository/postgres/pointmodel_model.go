package postgres

import "time"

type pointModelTableModel struct {
	ID        int64     `db:"id"`
	Position  string    `db:"position"`
	EventType string    `db:"event_type"`
	Points    int       `db:"points"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type pointModelInsertModel struct {
	Position  string `db:"position"`
	EventType string `db:"event_type"`
	Points    int    `db:"points"`
}
