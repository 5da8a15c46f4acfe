// Package entities holds the records managed by rpg-campaigns.
package entities

import "fmt"

// Player is a person at the table. A player owns zero or more characters.
type Player struct {
	ID               int    `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name,omitempty"`
	PreferredContact string `json:"preferred_contact,omitempty"`
	ContactInfo      string `json:"contact_info"`
	TimeZone         string `json:"time_zone,omitempty"`
}

// FullName returns the first name followed by the last name when one is set
func (p *Player) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (ID: %d)", p.FullName(), p.ID)
}
