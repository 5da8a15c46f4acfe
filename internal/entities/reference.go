package entities

import "fmt"

// DnDClass is a class from the reference catalog
type DnDClass struct {
	ID            string `json:"id"`
	Summary       string `json:"summary,omitempty"`
	CastingStat   string `json:"casting_stat,omitempty"`
	PrimaryStat   string `json:"primary_stat,omitempty"`
	SecondaryStat string `json:"secondary_stat,omitempty"`
}

// IsCaster reports whether the class has a spellcasting ability
func (c *DnDClass) IsCaster() bool {
	return c.CastingStat != ""
}

func (c *DnDClass) String() string {
	return c.ID
}

// Species is a species from the reference catalog
type Species struct {
	ID      string `json:"id"`
	Size    string `json:"size"`
	Summary string `json:"summary,omitempty"`
}

func (s *Species) String() string {
	return fmt.Sprintf("%s (%s)", s.ID, s.Size)
}
