package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestModifier() {
	testCases := []struct {
		score    int
		expected int
	}{
		{0, -5},
		{1, -5},
		{3, -4},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{15, 2},
		{20, 5},
		{30, 10},
	}

	for _, tc := range testCases {
		s.Run(entities.FormatAbility(tc.score), func() {
			s.Assert().Equal(tc.expected, entities.Modifier(tc.score))
		})
	}
}

func (s *EntitiesTestSuite) TestModifierMatchesFloorForAllScores() {
	for score := -40; score <= 40; score++ {
		d := float64(score-10) / 2
		floor := int(d)
		if float64(floor) > d {
			floor--
		}
		s.Require().Equal(floor, entities.Modifier(score), "score %d", score)
	}
}

func (s *EntitiesTestSuite) TestFormatAbility() {
	s.Assert().Equal("10 (+0)", entities.FormatAbility(10))
	s.Assert().Equal("16 (+3)", entities.FormatAbility(16))
	s.Assert().Equal("9 (-1)", entities.FormatAbility(9))
	s.Assert().Equal("+0", entities.FormatModifier(0))
}

func (s *EntitiesTestSuite) TestFullClassAndSpecies() {
	s.Run("without variants", func() {
		c := &entities.Character{ID: "Vex", Level: 3, ClassID: "ranger", SpeciesID: "half-elf"}
		s.Assert().Equal("ranger", c.FullClass())
		s.Assert().Equal("half-elf", c.FullSpecies())
		s.Assert().Equal("Vex (Level 3 ranger)", c.String())
	})

	s.Run("with variants", func() {
		c := &entities.Character{
			ID:           "Pike",
			Level:        5,
			ClassID:      "cleric",
			SubclassID:   "life",
			SpeciesID:    "gnome",
			SubspeciesID: "rock-gnome",
		}
		s.Assert().Equal("cleric (life)", c.FullClass())
		s.Assert().Equal("gnome (rock-gnome)", c.FullSpecies())
	})
}

func (s *EntitiesTestSuite) TestPlayerFullName() {
	s.Assert().Equal("Sam", (&entities.Player{ID: 1, FirstName: "Sam"}).FullName())

	p := &entities.Player{ID: 2, FirstName: "Laura", LastName: "Bailey"}
	s.Assert().Equal("Laura Bailey", p.FullName())
	s.Assert().Equal("Laura Bailey (ID: 2)", p.String())
	s.Assert().Equal("2", p.GetID())
	s.Assert().Equal(entities.EntityTypePlayer, p.GetType())
}

func (s *EntitiesTestSuite) TestReferenceStrings() {
	meeting := time.Date(2025, time.June, 6, 19, 0, 0, 0, time.UTC)
	campaign := &entities.Campaign{ID: "curse-of-strahd", Setting: "Ravenloft", MeetingTime: &meeting, MaxPlayers: 5}
	s.Assert().Equal("curse-of-strahd (Ravenloft)", campaign.String())

	species := &entities.Species{ID: "halfling", Size: "Small"}
	s.Assert().Equal("halfling (Small)", species.String())

	s.Assert().True((&entities.DnDClass{ID: "wizard", CastingStat: "int"}).IsCaster())
	s.Assert().False((&entities.DnDClass{ID: "fighter"}).IsCaster())
}

func (s *EntitiesTestSuite) TestAbilityScores() {
	scores := entities.AbilityScores{Strength: 8, Dexterity: 14, Constitution: 12, Intelligence: 10, Wisdom: 15, Charisma: 13}

	s.Assert().Equal([]int{8, 14, 12, 10, 15, 13}, scores.Slice())
	s.Assert().Equal(scores, entities.AbilityScoresFromSlice(scores.Slice()))
	s.Assert().Equal(15, scores.Get(entities.AbilityWisdom))
	s.Assert().Equal(10, scores.Get("luck"))
	s.Assert().Panics(func() { entities.AbilityScoresFromSlice([]int{1, 2}) })
}

func (s *EntitiesTestSuite) TestAbilityModifiersFromScores() {
	row := entities.AbilityModifiersFromScores("Grog", "barbarian", "goliath", entities.AbilityScores{
		Strength: 20, Dexterity: 9, Constitution: 18, Intelligence: 6, Wisdom: 10, Charisma: 11,
	})

	s.Assert().Equal(entities.AbilityModifiersRow{
		Name:                 "Grog",
		StrengthModifier:     5,
		DexterityModifier:    -1,
		ConstitutionModifier: 4,
		IntelligenceModifier: -2,
		WisdomModifier:       0,
		CharismaModifier:     0,
		Class:                "barbarian",
		Species:              "goliath",
	}, row)
}

func (s *EntitiesTestSuite) TestReportNames() {
	s.Assert().Len(entities.ReportNames, 10)
	s.Assert().True(entities.ReportClassDistribution.IsValid())
	s.Assert().False(entities.ReportName("top-secret").IsValid())
}
