package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID             int64         `db:"id"`
	PublicID       string        `db:"public_id"`
	TeamPublicID   string        `db:"team_public_id"`
	SeasonPublicID string        `db:"season_public_id"`
	Opponent       string        `db:"opponent"`
	MatchDate      time.Time     `db:"match_date"`
	Location       string        `db:"location"`
	IsHomeMatch    bool          `db:"is_home_match"`
	Formation      string        `db:"formation"`
	IsCompleted    bool          `db:"is_completed"`
	HomeScore      sql.NullInt64 `db:"home_score"`
	AwayScore      sql.NullInt64 `db:"away_score"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	DeletedAt      *time.Time    `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID       string        `db:"public_id"`
	TeamPublicID   string        `db:"team_public_id"`
	SeasonPublicID string        `db:"season_public_id"`
	Opponent       string        `db:"opponent"`
	MatchDate      time.Time     `db:"match_date"`
	Location       string        `db:"location"`
	IsHomeMatch    bool          `db:"is_home_match"`
	Formation      string        `db:"formation"`
	IsCompleted    bool          `db:"is_completed"`
	HomeScore      sql.NullInt64 `db:"home_score"`
	AwayScore      sql.NullInt64 `db:"away_score"`
}
