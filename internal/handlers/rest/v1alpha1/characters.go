package v1alpha1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character"
)

// ListCharacters handles GET /characters. ?details=true adds owner names.
func (h *Handler) ListCharacters(c *fiber.Ctx) error {
	if c.QueryBool("details", false) {
		output, err := h.characterService.ListCharactersWithDetails(c.UserContext(),
			&character.ListCharactersWithDetailsInput{})
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"characters": output.Characters})
	}

	output, err := h.characterService.ListCharacters(c.UserContext(), &character.ListCharactersInput{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"characters": output.Characters})
}

// GetCharacter handles GET /characters/:id
func (h *Handler) GetCharacter(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.characterService.GetCharacter(c.UserContext(), &character.GetCharacterInput{CharacterID: id})
	if err != nil {
		return err
	}
	return c.JSON(output.Character)
}

// CreateCharacter handles POST /characters
func (h *Handler) CreateCharacter(c *fiber.Ctx) error {
	var body entities.Character
	if err := parseBody(c, &body); err != nil {
		return err
	}

	output, err := h.characterService.CreateCharacter(c.UserContext(), &character.CreateCharacterInput{Character: &body})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(output.Character)
}

// UpdateCharacter handles PUT /characters/:id. Characters cannot be renamed.
func (h *Handler) UpdateCharacter(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	var body entities.Character
	if err := parseBody(c, &body); err != nil {
		return err
	}
	body.ID = id

	output, err := h.characterService.UpdateCharacter(c.UserContext(), &character.UpdateCharacterInput{Character: &body})
	if err != nil {
		return err
	}
	return c.JSON(output.Character)
}

// DeleteCharacter handles DELETE /characters/:id
func (h *Handler) DeleteCharacter(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.characterService.DeleteCharacter(c.UserContext(), &character.DeleteCharacterInput{CharacterID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RollAbilityScoresResponse is the body of POST /characters/roll-ability-scores
type RollAbilityScoresResponse struct {
	Scores entities.AbilityScores   `json:"scores"`
	Rolls  []*character.AbilityRoll `json:"rolls"`
}

// RollAbilityScores handles POST /characters/roll-ability-scores
func (h *Handler) RollAbilityScores(c *fiber.Ctx) error {
	output, err := h.characterService.RollAbilityScores(c.UserContext(), &character.RollAbilityScoresInput{})
	if err != nil {
		return err
	}
	return c.JSON(RollAbilityScoresResponse{Scores: output.Scores, Rolls: output.Rolls})
}
