package external

// ClassData is a class as published by the SRD API
type ClassData struct {
	ID                  string
	Name                string
	HitDie              int
	SavingThrows        []string
	SpellcastingAbility string
}

// SpeciesData is a race as published by the SRD API
type SpeciesData struct {
	ID         string
	Name       string
	Size       string
	Speed      int
	Subspecies []string
}
