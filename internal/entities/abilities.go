package entities

import "fmt"

// Ability score bounds accepted on create and update
const (
	MinAbilityScore = 0
	MaxAbilityScore = 30
	MinLevel        = 1
	MaxLevel        = 20
)

// Ability names in the order scores are rolled and reported
const (
	AbilityStrength     = "str"
	AbilityDexterity    = "dex"
	AbilityConstitution = "con"
	AbilityIntelligence = "int"
	AbilityWisdom       = "wis"
	AbilityCharisma     = "cha"
)

// Abilities lists the six abilities in STR..CHA order
var Abilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Constitution int `json:"con"`
	Intelligence int `json:"int"`
	Wisdom       int `json:"wis"`
	Charisma     int `json:"cha"`
}

// Get returns the score for an ability name. Unknown names return 10,
// whose modifier is zero.
func (a AbilityScores) Get(ability string) int {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 10
	}
}

// Slice returns the scores in STR..CHA order
func (a AbilityScores) Slice() []int {
	return []int{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma}
}

// AbilityScoresFromSlice is the inverse of Slice. It panics on anything
// but six values.
func AbilityScoresFromSlice(scores []int) AbilityScores {
	if len(scores) != len(Abilities) {
		panic(fmt.Sprintf("entities: expected %d ability scores, got %d", len(Abilities), len(scores)))
	}
	return AbilityScores{
		Strength:     scores[0],
		Dexterity:    scores[1],
		Constitution: scores[2],
		Intelligence: scores[3],
		Wisdom:       scores[4],
		Charisma:     scores[5],
	}
}

// Modifier returns floor((score-10)/2)
func Modifier(score int) int {
	d := score - 10
	if d < 0 && d%2 != 0 {
		return d/2 - 1
	}
	return d / 2
}

// FormatModifier renders a modifier with an explicit sign, "+0" for zero
func FormatModifier(mod int) string {
	return fmt.Sprintf("%+d", mod)
}

// FormatAbility renders a score as "score (+mod)"
func FormatAbility(score int) string {
	return fmt.Sprintf("%d (%s)", score, FormatModifier(Modifier(score)))
}
