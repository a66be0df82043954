package season

import (
	"fmt"
	"strings"
	"time"
)

// Season is a named date range grouping matches for one team.
type Season struct {
	ID        string
	TeamID    string
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("season id is required")
	}
	if strings.TrimSpace(s.TeamID) == "" {
		return fmt.Errorf("season team id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate != nil && s.EndDate != nil && s.StartDate.After(*s.EndDate) {
		return fmt.Errorf("season start date must not be after end date")
	}

	return nil
}
