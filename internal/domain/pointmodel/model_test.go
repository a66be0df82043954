package pointmodel

import (
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
)

func TestTable_Resolve_ExactBeforeWildcard(t *testing.T) {
	table := NewTable([]Entry{
		{Position: position.ScoringDefender, EventType: event.TypeGoalScored, Points: 12},
		{Position: position.ScoringAll, EventType: event.TypeGoalScored, Points: 5},
	})

	if got := table.Resolve(position.Defender, event.TypeGoalScored); got != 12 {
		t.Fatalf("expected exact entry 12, got %d", got)
	}
	if got := table.Resolve(position.Midfielder, event.TypeGoalScored); got != 5 {
		t.Fatalf("expected wildcard fallback 5, got %d", got)
	}
}

func TestTable_Resolve_MissingEntryIsZero(t *testing.T) {
	table := NewTable([]Entry{
		{Position: position.ScoringAll, EventType: event.TypeYellowCard, Points: -1},
	})

	if got := table.Resolve(position.Midfielder, event.TypeGoalScored); got != 0 {
		t.Fatalf("expected 0 for unmapped event, got %d", got)
	}
}

func TestNewTable_DuplicateKeyKeepsLastEntry(t *testing.T) {
	table := NewTable([]Entry{
		{Position: position.ScoringAttacker, EventType: event.TypeGoalScored, Points: 6},
		{Position: position.ScoringAttacker, EventType: event.TypeGoalScored, Points: 9},
	})

	if got := table.Resolve(position.Attacker, event.TypeGoalScored); got != 9 {
		t.Fatalf("expected last write 9, got %d", got)
	}
}
