package match

import (
	"testing"
	"time"
)

func intPtr(v int) *int {
	return &v
}

func validMatch() Match {
	return Match{
		ID:       "match-1",
		TeamID:   "team-1",
		SeasonID: "season-1",
		Opponent: "Rivals",
		Date:     time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC),
	}
}

func TestMatch_Outcome_HomeAndAway(t *testing.T) {
	cases := []struct {
		name        string
		isHomeMatch bool
		homeScore   int
		awayScore   int
		want        Outcome
	}{
		{"home win", true, 3, 1, OutcomeWin},
		{"home loss", true, 0, 2, OutcomeLoss},
		{"away win", false, 1, 2, OutcomeWin},
		{"away loss", false, 2, 1, OutcomeLoss},
		{"draw", true, 2, 2, OutcomeDraw},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMatch()
			m.IsHomeMatch = tc.isHomeMatch
			m.HomeScore = intPtr(tc.homeScore)
			m.AwayScore = intPtr(tc.awayScore)

			got, ok := m.Outcome()
			if !ok {
				t.Fatalf("expected an outcome")
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestMatch_Outcome_MissingScores(t *testing.T) {
	m := validMatch()
	if _, ok := m.Outcome(); ok {
		t.Fatalf("expected no outcome without scores")
	}

	m.HomeScore = intPtr(1)
	if _, ok := m.Outcome(); ok {
		t.Fatalf("expected no outcome with a partial scoreline")
	}
}

func TestMatch_OpponentScore_FollowsVenue(t *testing.T) {
	m := validMatch()
	m.IsHomeMatch = false
	m.HomeScore = intPtr(4)
	m.AwayScore = intPtr(1)

	own, ok := m.OwnScore()
	if !ok || own != 1 {
		t.Fatalf("expected own score 1 at an away match, got %d", own)
	}
	opponent, ok := m.OpponentScore()
	if !ok || opponent != 4 {
		t.Fatalf("expected opponent score 4 at an away match, got %d", opponent)
	}
}

func TestMatch_Validate(t *testing.T) {
	m := validMatch()
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid match, got %v", err)
	}

	m.Formation = "2-2-2"
	if err := m.Validate(); err == nil {
		t.Fatalf("expected error for unknown formation")
	}

	m = validMatch()
	m.IsCompleted = true
	if err := m.Validate(); err == nil {
		t.Fatalf("expected error for completed match without scores")
	}
	m.HomeScore = intPtr(1)
	m.AwayScore = intPtr(0)
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid completed match, got %v", err)
	}
}

func TestFormation_Slots(t *testing.T) {
	for _, f := range Formations() {
		slots := f.Slots()
		if slots == nil {
			t.Fatalf("expected slots for formation %s", f)
		}

		total := 0
		for _, count := range slots {
			total += count
		}
		// Goalkeeper plus ten outfield players.
		if total != 11 {
			t.Fatalf("formation %s must field 11 players, got %d", f, total)
		}
	}

	if Formation("2-2-2").Slots() != nil {
		t.Fatalf("expected nil slots for an unknown formation")
	}
}
