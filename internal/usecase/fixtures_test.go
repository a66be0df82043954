package usecase

import (
	"time"

	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	"github.com/klubhuset/mvp-tracker/internal/domain/season"
	"github.com/klubhuset/mvp-tracker/internal/domain/team"
)

const (
	testTeamID   = "team-001"
	testSeasonID = "season-001"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func intPtr(v int) *int {
	return &v
}

func fixtureTeam() []team.Team {
	return []team.Team{{ID: testTeamID, Name: "Klubhuset FC"}}
}

func fixtureSeason() []season.Season {
	return []season.Season{{ID: testSeasonID, TeamID: testTeamID, Name: "Spring 2026"}}
}

func fixturePlayer(id, name string) player.Player {
	return player.Player{ID: id, TeamID: testTeamID, Name: name}
}

func fixtureMatch(id string, day int) match.Match {
	return match.Match{
		ID:          id,
		TeamID:      testTeamID,
		SeasonID:    testSeasonID,
		Opponent:    "Opponent " + id,
		Date:        time.Date(2026, 3, day, 14, 0, 0, 0, time.UTC),
		IsHomeMatch: true,
	}
}

func fixtureCompletedMatch(id string, day, homeScore, awayScore int) match.Match {
	item := fixtureMatch(id, day)
	item.IsCompleted = true
	item.HomeScore = intPtr(homeScore)
	item.AwayScore = intPtr(awayScore)
	return item
}

func fixturePointModel() []pointmodel.Entry {
	return []pointmodel.Entry{
		{Position: "DEFENDER", EventType: "CLEAN_SHEET", Points: 6},
		{Position: "DEFENDER", EventType: "GOAL_SCORED", Points: 12},
		{Position: "MIDFIELDER", EventType: "ASSIST", Points: 7},
		{Position: "GOALKEEPER", EventType: "CLEAN_SHEET", Points: 8},
		{Position: "ALL", EventType: "YELLOW_CARD", Points: -1},
		{Position: "ALL", EventType: "MATCH_WIN", Points: 2},
	}
}
