package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/klubhuset/mvp-tracker/internal/domain/position"
)

// Formation describes the pitch layout used by the assignment UI. Scoring
// never depends on slot counts, only on the assignment relation.
type Formation string

const (
	Formation442 Formation = "4-4-2"
	Formation451 Formation = "4-5-1"
	Formation433 Formation = "4-3-3"
	Formation541 Formation = "5-4-1"
	Formation352 Formation = "3-5-2"
	Formation532 Formation = "5-3-2"
)

var formationSlots = map[Formation]map[position.Assignable]int{
	Formation442: {position.Goalkeeper: 1, position.Defender: 4, position.Midfielder: 4, position.Attacker: 2},
	Formation451: {position.Goalkeeper: 1, position.Defender: 4, position.Midfielder: 5, position.Attacker: 1},
	Formation433: {position.Goalkeeper: 1, position.Defender: 4, position.Midfielder: 3, position.Attacker: 3},
	Formation541: {position.Goalkeeper: 1, position.Defender: 5, position.Midfielder: 4, position.Attacker: 1},
	Formation352: {position.Goalkeeper: 1, position.Defender: 3, position.Midfielder: 5, position.Attacker: 2},
	Formation532: {position.Goalkeeper: 1, position.Defender: 5, position.Midfielder: 3, position.Attacker: 2},
}

func Formations() []Formation {
	return []Formation{
		Formation442,
		Formation451,
		Formation433,
		Formation541,
		Formation352,
		Formation532,
	}
}

func (f Formation) Valid() bool {
	_, ok := formationSlots[f]
	return ok
}

func (f Formation) Slots() map[position.Assignable]int {
	slots, ok := formationSlots[f]
	if !ok {
		return nil
	}

	out := make(map[position.Assignable]int, len(slots))
	for pos, count := range slots {
		out[pos] = count
	}
	return out
}

type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeDraw Outcome = "DRAW"
	OutcomeLoss Outcome = "LOSS"
)

// Match is one fixture against an opponent. HomeScore/AwayScore are set
// while the scores are drafted or once completed; only IsCompleted gates
// whether they count toward scoring.
type Match struct {
	ID          string
	TeamID      string
	SeasonID    string
	Opponent    string
	Date        time.Time
	Location    string
	IsHomeMatch bool
	Formation   Formation
	IsCompleted bool
	HomeScore   *int
	AwayScore   *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.TeamID) == "" {
		return fmt.Errorf("match team id is required")
	}
	if strings.TrimSpace(m.SeasonID) == "" {
		return fmt.Errorf("match season id is required")
	}
	if strings.TrimSpace(m.Opponent) == "" {
		return fmt.Errorf("match opponent is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.Formation != "" && !m.Formation.Valid() {
		return fmt.Errorf("invalid formation: %q", m.Formation)
	}
	if m.IsCompleted && (m.HomeScore == nil || m.AwayScore == nil) {
		return fmt.Errorf("completed match requires home and away scores")
	}

	return nil
}

// OwnScore returns the tracked team's goals for a completed scoreline.
func (m Match) OwnScore() (int, bool) {
	if m.HomeScore == nil || m.AwayScore == nil {
		return 0, false
	}
	if m.IsHomeMatch {
		return *m.HomeScore, true
	}
	return *m.AwayScore, true
}

// OpponentScore returns the opponent's goals for a completed scoreline.
func (m Match) OpponentScore() (int, bool) {
	if m.HomeScore == nil || m.AwayScore == nil {
		return 0, false
	}
	if m.IsHomeMatch {
		return *m.AwayScore, true
	}
	return *m.HomeScore, true
}

func (m Match) Outcome() (Outcome, bool) {
	own, ok := m.OwnScore()
	if !ok {
		return "", false
	}
	opponent, _ := m.OpponentScore()

	switch {
	case own > opponent:
		return OutcomeWin, true
	case own == opponent:
		return OutcomeDraw, true
	default:
		return OutcomeLoss, true
	}
}
