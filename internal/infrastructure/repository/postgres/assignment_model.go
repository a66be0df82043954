package postgres

import "time"

type assignmentTableModel struct {
	ID        int64     `db:"id"`
	PlayerID  string    `db:"player_public_id"`
	MatchID   string    `db:"match_public_id"`
	Position  string    `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type assignmentInsertModel struct {
	PlayerID string `db:"player_public_id"`
	MatchID  string `db:"match_public_id"`
	Position string `db:"position"`
}
