package memory

import (
	"time"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
	"github.com/klubhuset/mvp-tracker/internal/domain/season"
	"github.com/klubhuset/mvp-tracker/internal/domain/team"
)

const (
	TeamIDDefault       = "klubhuset-fc"
	SeasonIDSpring2026  = "season-2026-spring"
	MatchIDSeedUpcoming = "match-2026-04-18-rivals"
)

func SeedTeam() []team.Team {
	return []team.Team{
		{ID: TeamIDDefault, Name: "Klubhuset FC"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "player-gk-01", TeamID: TeamIDDefault, Name: "Jonas Berg", Number: intPtr(1)},
		{ID: "player-def-01", TeamID: TeamIDDefault, Name: "Emil Sørensen", Number: intPtr(3)},
		{ID: "player-def-02", TeamID: TeamIDDefault, Name: "Viktor Holm", Number: intPtr(4)},
		{ID: "player-def-03", TeamID: TeamIDDefault, Name: "Anders Lie", Number: intPtr(5)},
		{ID: "player-def-04", TeamID: TeamIDDefault, Name: "Mats Engen", Number: intPtr(2)},
		{ID: "player-mid-01", TeamID: TeamIDDefault, Name: "Oskar Dahl", Number: intPtr(8)},
		{ID: "player-mid-02", TeamID: TeamIDDefault, Name: "Henrik Aune", Number: intPtr(6)},
		{ID: "player-mid-03", TeamID: TeamIDDefault, Name: "Sander Moe", Number: intPtr(10)},
		{ID: "player-mid-04", TeamID: TeamIDDefault, Name: "Kristian Vold", Number: intPtr(7)},
		{ID: "player-att-01", TeamID: TeamIDDefault, Name: "Marius Falk", Number: intPtr(9)},
		{ID: "player-att-02", TeamID: TeamIDDefault, Name: "Tobias Rygg", Number: intPtr(11)},
	}
}

func SeedSeasons() []season.Season {
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	return []season.Season{
		{ID: SeasonIDSpring2026, TeamID: TeamIDDefault, Name: "Spring 2026", StartDate: &start, EndDate: &end},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:          MatchIDSeedUpcoming,
			TeamID:      TeamIDDefault,
			SeasonID:    SeasonIDSpring2026,
			Opponent:    "Riverside Rivals",
			Date:        time.Date(2026, time.April, 18, 13, 0, 0, 0, time.UTC),
			Location:    "Klubhuset Park",
			IsHomeMatch: true,
			Formation:   match.Formation442,
		},
	}
}

// SeedPointModel is the default table. Every assignable position gets its
// own entries; card and own-goal penalties apply to everyone through the
// wildcard position.
func SeedPointModel() []pointmodel.Entry {
	return []pointmodel.Entry{
		{Position: position.ScoringGoalkeeper, EventType: event.TypeCleanSheet, Points: 8},
		{Position: position.ScoringGoalkeeper, EventType: event.TypeConcedeOneGoal, Points: 4},
		{Position: position.ScoringGoalkeeper, EventType: event.TypeConcedeTwoGoals, Points: 2},
		{Position: position.ScoringGoalkeeper, EventType: event.TypePenaltySave, Points: 7},
		{Position: position.ScoringGoalkeeper, EventType: event.TypeAssist, Points: 8},
		{Position: position.ScoringGoalkeeper, EventType: event.TypeGoalScored, Points: 15},
		{Position: position.ScoringGoalkeeper, EventType: event.TypeMatchWin, Points: 2},
		{Position: position.ScoringDefender, EventType: event.TypeCleanSheet, Points: 6},
		{Position: position.ScoringDefender, EventType: event.TypeConcedeOneGoal, Points: 4},
		{Position: position.ScoringDefender, EventType: event.TypeConcedeTwoGoals, Points: 2},
		{Position: position.ScoringDefender, EventType: event.TypeAssist, Points: 9},
		{Position: position.ScoringDefender, EventType: event.TypeGoalScored, Points: 12},
		{Position: position.ScoringDefender, EventType: event.TypeMatchWin, Points: 2},
		{Position: position.ScoringMidfielder, EventType: event.TypeGoalScored, Points: 7},
		{Position: position.ScoringMidfielder, EventType: event.TypeAssist, Points: 7},
		{Position: position.ScoringMidfielder, EventType: event.TypeMatchWin, Points: 2},
		{Position: position.ScoringMidfielder, EventType: event.TypeCleanSheet, Points: 2},
		{Position: position.ScoringMidfielder, EventType: event.TypeConcedeOneGoal, Points: 1},
		{Position: position.ScoringAttacker, EventType: event.TypeGoalScored, Points: 6},
		{Position: position.ScoringAttacker, EventType: event.TypeAssist, Points: 6},
		{Position: position.ScoringAttacker, EventType: event.TypeMatchWin, Points: 2},
		{Position: position.ScoringAttacker, EventType: event.TypeWinningPenalty, Points: 2},
		{Position: position.ScoringAll, EventType: event.TypeMatchDraw, Points: 1},
		{Position: position.ScoringAll, EventType: event.TypeYellowCard, Points: -1},
		{Position: position.ScoringAll, EventType: event.TypeRedCard, Points: -3},
		{Position: position.ScoringAll, EventType: event.TypeOwnGoal, Points: -2},
	}
}

func intPtr(v int) *int {
	return &v
}
