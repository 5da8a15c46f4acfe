package entities

// ReportName identifies one of the canned analytical reports
type ReportName string

// Report names, used in routes and cache keys
const (
	ReportCharactersByClassAndCampaign ReportName = "characters-by-class-and-campaign"
	ReportClassesWithMostSubclasses    ReportName = "classes-with-most-subclasses"
	ReportAboveAverageLevelBySpecies   ReportName = "above-average-level-by-species"
	ReportAllPlayersAndCharacters      ReportName = "all-players-and-characters"
	ReportPopularSettingsAndMilitary   ReportName = "popular-settings-and-military"
	ReportCharacterSpeciesAndSize      ReportName = "character-species-and-size"
	ReportPlayerCharacterCounts        ReportName = "player-character-counts"
	ReportCampaignParticipation        ReportName = "campaign-participation"
	ReportClassDistribution            ReportName = "class-distribution"
	ReportCharacterAbilityModifiers    ReportName = "character-ability-modifiers"
)

// ReportNames lists every report in display order
var ReportNames = []ReportName{
	ReportCharactersByClassAndCampaign,
	ReportClassesWithMostSubclasses,
	ReportAboveAverageLevelBySpecies,
	ReportAllPlayersAndCharacters,
	ReportPopularSettingsAndMilitary,
	ReportCharacterSpeciesAndSize,
	ReportPlayerCharacterCounts,
	ReportCampaignParticipation,
	ReportClassDistribution,
	ReportCharacterAbilityModifiers,
}

// IsValid reports whether n names a known report
func (n ReportName) IsValid() bool {
	for _, known := range ReportNames {
		if n == known {
			return true
		}
	}
	return false
}

// CharacterClassCampaignRow is a row of ReportCharactersByClassAndCampaign
type CharacterClassCampaignRow struct {
	CharacterName string `json:"character_name"`
	Class         string `json:"class"`
	Subclass      string `json:"subclass"`
	Campaign      string `json:"campaign"`
}

// ClassSubclassCountRow is a row of ReportClassesWithMostSubclasses
type ClassSubclassCountRow struct {
	ClassID       string `json:"class_id"`
	SubclassCount int    `json:"subclass_count"`
}

// AboveAverageLevelRow is a row of ReportAboveAverageLevelBySpecies
type AboveAverageLevelRow struct {
	CharacterID string `json:"character_id"`
	Level       int    `json:"level"`
	SpeciesID   string `json:"species_id"`
}

// PlayerCharacterRow is a row of ReportAllPlayersAndCharacters. Either side
// of the pairing may be missing.
type PlayerCharacterRow struct {
	PlayerID    *int    `json:"player_id"`
	FirstName   *string `json:"first_name"`
	CharacterID *string `json:"character_id"`
}

// SettingOrMilitaryRow is a row of ReportPopularSettingsAndMilitary
type SettingOrMilitaryRow struct {
	CharacterID string `json:"character_id"`
	Reason      string `json:"reason"`
	Detail      string `json:"detail"`
}

// CharacterSpeciesSizeRow is a row of ReportCharacterSpeciesAndSize
type CharacterSpeciesSizeRow struct {
	CharacterID string `json:"character_id"`
	SpeciesID   string `json:"species_id"`
	SpeciesSize string `json:"species_size"`
}

// PlayerCharacterCountRow is a row of ReportPlayerCharacterCounts
type PlayerCharacterCountRow struct {
	PlayerID       int    `json:"player_id"`
	FirstName      string `json:"first_name"`
	CharacterCount int    `json:"character_count"`
}

// CampaignParticipationRow is a row of ReportCampaignParticipation
type CampaignParticipationRow struct {
	CampaignID string `json:"campaign_id"`
	Setting    string `json:"setting"`
	NumPlayers int    `json:"num_players"`
}

// ClassDistributionRow is a row of ReportClassDistribution
type ClassDistributionRow struct {
	ClassID        string  `json:"class_id"`
	CharacterCount int     `json:"character_count"`
	Percentage     float64 `json:"percentage"`
}

// AbilityModifiersRow is a row of ReportCharacterAbilityModifiers
type AbilityModifiersRow struct {
	Name                 string `json:"name"`
	StrengthModifier     int    `json:"str_mod"`
	DexterityModifier    int    `json:"dex_mod"`
	ConstitutionModifier int    `json:"con_mod"`
	IntelligenceModifier int    `json:"int_mod"`
	WisdomModifier       int    `json:"wis_mod"`
	CharismaModifier     int    `json:"cha_mod"`
	Class                string `json:"class"`
	Species              string `json:"species"`
}

// AbilityModifiersFromScores builds a modifiers row from raw scores
func AbilityModifiersFromScores(name, class, species string, scores AbilityScores) AbilityModifiersRow {
	return AbilityModifiersRow{
		Name:                 name,
		StrengthModifier:     Modifier(scores.Strength),
		DexterityModifier:    Modifier(scores.Dexterity),
		ConstitutionModifier: Modifier(scores.Constitution),
		IntelligenceModifier: Modifier(scores.Intelligence),
		WisdomModifier:       Modifier(scores.Wisdom),
		CharismaModifier:     Modifier(scores.Charisma),
		Class:                class,
		Species:              species,
	}
}
