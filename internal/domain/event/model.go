package event

import (
	"fmt"
	"strings"
)

// Type is a countable occurrence attributed to a player in a match.
type Type string

const (
	TypeCleanSheet      Type = "CLEAN_SHEET"
	TypeConcedeOneGoal  Type = "CONCEDE_ONE_GOAL"
	TypeConcedeTwoGoals Type = "CONCEDE_TWO_GOALS"
	TypePenaltySave     Type = "PENALTY_SAVE"
	TypeAssist          Type = "ASSIST"
	TypeGoalScored      Type = "GOAL_SCORED"
	TypeMatchWin        Type = "MATCH_WIN"
	TypeMatchDraw       Type = "MATCH_DRAW"
	TypeWinningPenalty  Type = "WINNING_PENALTY"
	TypeYellowCard      Type = "YELLOW_CARD"
	TypeRedCard         Type = "RED_CARD"
	TypeOwnGoal         Type = "OWN_GOAL"
)

var allTypes = map[Type]struct{}{
	TypeCleanSheet:      {},
	TypeConcedeOneGoal:  {},
	TypeConcedeTwoGoals: {},
	TypePenaltySave:     {},
	TypeAssist:          {},
	TypeGoalScored:      {},
	TypeMatchWin:        {},
	TypeMatchDraw:       {},
	TypeWinningPenalty:  {},
	TypeYellowCard:      {},
	TypeRedCard:         {},
	TypeOwnGoal:         {},
}

func (t Type) Valid() bool {
	_, ok := allTypes[t]
	return ok
}

// Types lists every event type in presentation order, defensive types
// first, discipline last.
func Types() []Type {
	return []Type{
		TypeCleanSheet,
		TypeConcedeOneGoal,
		TypeConcedeTwoGoals,
		TypePenaltySave,
		TypeAssist,
		TypeGoalScored,
		TypeMatchWin,
		TypeMatchDraw,
		TypeWinningPenalty,
		TypeYellowCard,
		TypeRedCard,
		TypeOwnGoal,
	}
}

func ParseType(value string) (Type, error) {
	t := Type(value)
	if !t.Valid() {
		return "", fmt.Errorf("invalid event type: %q", value)
	}
	return t, nil
}

// AutoDerivedTypes are the event types written by the match completion
// workflow rather than manual entry.
func AutoDerivedTypes() []Type {
	return []Type{TypeMatchWin, TypeMatchDraw, TypeCleanSheet}
}

// PlayerEvent is one (player, match, type) count. A count of zero is
// logically absent: new zero rows are never created.
type PlayerEvent struct {
	PlayerID string
	MatchID  string
	Type     Type
	Count    int
}

func (e PlayerEvent) Validate() error {
	if strings.TrimSpace(e.PlayerID) == "" {
		return fmt.Errorf("event player id is required")
	}
	if strings.TrimSpace(e.MatchID) == "" {
		return fmt.Errorf("event match id is required")
	}
	if !e.Type.Valid() {
		return fmt.Errorf("invalid event type: %q", e.Type)
	}
	if e.Count < 0 {
		return fmt.Errorf("event count must be non-negative")
	}

	return nil
}
