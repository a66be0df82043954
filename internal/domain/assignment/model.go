package assignment

import (
	"fmt"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/position"
)

// PlayerPosition records that a player holds a position for a match.
// Ledger invariants: at most one row per (player, match), at most one
// goalkeeper row per match.
type PlayerPosition struct {
	PlayerID string
	MatchID  string
	Position position.Assignable
}

func (a PlayerPosition) Validate() error {
	if strings.TrimSpace(a.PlayerID) == "" {
		return fmt.Errorf("assignment player id is required")
	}
	if strings.TrimSpace(a.MatchID) == "" {
		return fmt.Errorf("assignment match id is required")
	}
	if !a.Position.Valid() {
		return fmt.Errorf("invalid assignment position: %q", a.Position)
	}

	return nil
}
