package player

import (
	"fmt"
	"strings"
	"time"
)

const (
	NumberMin = 0
	NumberMax = 99
)

// Player belongs to exactly one team. Number is the jersey number,
// optional but bounded when present.
type Player struct {
	ID        string
	TeamID    string
	Name      string
	Number    *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.TeamID) == "" {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Number != nil && (*p.Number < NumberMin || *p.Number > NumberMax) {
		return fmt.Errorf("player number must be between %d and %d", NumberMin, NumberMax)
	}

	return nil
}
