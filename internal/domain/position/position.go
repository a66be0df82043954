package position

import "fmt"

// Assignable is a position a player can actually hold in a match.
type Assignable string

const (
	Goalkeeper Assignable = "GOALKEEPER"
	Defender   Assignable = "DEFENDER"
	Midfielder Assignable = "MIDFIELDER"
	Attacker   Assignable = "ATTACKER"
)

var assignablePositions = map[Assignable]struct{}{
	Goalkeeper: {},
	Defender:   {},
	Midfielder: {},
	Attacker:   {},
}

func (p Assignable) Valid() bool {
	_, ok := assignablePositions[p]
	return ok
}

// Assignables lists the positions in pitch order, goalkeeper first.
func Assignables() []Assignable {
	return []Assignable{Goalkeeper, Defender, Midfielder, Attacker}
}

func ParseAssignable(value string) (Assignable, error) {
	p := Assignable(value)
	if !p.Valid() {
		return "", fmt.Errorf("invalid assignable position: %q", value)
	}
	return p, nil
}

// Scoring is the position axis of the point model. It is a superset of
// Assignable with the wildcard All, which never appears in an assignment.
type Scoring string

const (
	ScoringGoalkeeper Scoring = Scoring(Goalkeeper)
	ScoringDefender   Scoring = Scoring(Defender)
	ScoringMidfielder Scoring = Scoring(Midfielder)
	ScoringAttacker   Scoring = Scoring(Attacker)
	ScoringAll        Scoring = "ALL"
)

func (p Scoring) Valid() bool {
	if p == ScoringAll {
		return true
	}
	return Assignable(p).Valid()
}

func ParseScoring(value string) (Scoring, error) {
	p := Scoring(value)
	if !p.Valid() {
		return "", fmt.Errorf("invalid scoring position: %q", value)
	}
	return p, nil
}

func (p Assignable) Scoring() Scoring {
	return Scoring(p)
}
