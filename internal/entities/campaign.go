package entities

import (
	"fmt"
	"time"
)

// Campaign is a series of sessions in one setting. Stored in the game table.
type Campaign struct {
	ID          string     `json:"id"`
	Setting     string     `json:"setting"`
	Synopsis    string     `json:"synopsis,omitempty"`
	MeetingTime *time.Time `json:"meeting_time,omitempty"`
	MaxPlayers  int        `json:"max_players"`
}

func (c *Campaign) String() string {
	return fmt.Sprintf("%s (%s)", c.ID, c.Setting)
}
