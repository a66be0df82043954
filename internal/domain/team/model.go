package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is the club this deployment tracks. Single-tenant: one row.
type Team struct {
	ID        string
	Name      string
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
