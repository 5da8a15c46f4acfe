package character

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

const (
	abilityDiceCount = 4
	abilityDieSize   = 6
)

// RollAbilityScores rolls one 4d6 drop lowest score per ability
func (o *Orchestrator) RollAbilityScores(
	ctx context.Context,
	input *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rolls := make([]*AbilityRoll, 0, len(entities.Abilities))
	totals := make([]int, 0, len(entities.Abilities))

	for _, ability := range entities.Abilities {
		roll, err := o.rollDropLowest(ability)
		if err != nil {
			slog.ErrorContext(ctx, "error rolling ability scores", "ability", ability, "error", err)
			return nil, errors.Wrap(err, "error rolling ability scores")
		}
		rolls = append(rolls, roll)
		totals = append(totals, roll.Total)
	}

	return &RollAbilityScoresOutput{
		Scores: entities.AbilityScoresFromSlice(totals),
		Rolls:  rolls,
	}, nil
}

func (o *Orchestrator) rollDropLowest(ability string) (*AbilityRoll, error) {
	values, err := o.diceRoller.RollN(abilityDiceCount, abilityDieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", ability)
	}
	if len(values) != abilityDiceCount {
		return nil, errors.Internalf("expected %d dice for %s, got %d", abilityDiceCount, ability, len(values))
	}

	sorted := append([]int(nil), values...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	kept := sorted[:abilityDiceCount-1]
	total := 0
	for _, v := range kept {
		total += v
	}

	return &AbilityRoll{
		Ability: ability,
		Kept:    kept,
		Dropped: sorted[abilityDiceCount-1],
		Total:   total,
	}, nil
}
