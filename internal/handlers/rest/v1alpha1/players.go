package v1alpha1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player"
)

// ListPlayers handles GET /players
func (h *Handler) ListPlayers(c *fiber.Ctx) error {
	output, err := h.playerService.ListPlayers(c.UserContext(), &player.ListPlayersInput{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"players": output.Players})
}

// GetPlayer handles GET /players/:id
func (h *Handler) GetPlayer(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.playerService.GetPlayer(c.UserContext(), &player.GetPlayerInput{PlayerID: id})
	if err != nil {
		return err
	}
	return c.JSON(output.Player)
}

// CreatePlayer handles POST /players. A missing id is assigned.
func (h *Handler) CreatePlayer(c *fiber.Ctx) error {
	var body entities.Player
	if err := parseBody(c, &body); err != nil {
		return err
	}

	output, err := h.playerService.CreatePlayer(c.UserContext(), &player.CreatePlayerInput{Player: &body})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(output.Player)
}

// UpdatePlayer handles PUT /players/:id. The path id wins over the body.
func (h *Handler) UpdatePlayer(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var body entities.Player
	if err := parseBody(c, &body); err != nil {
		return err
	}
	body.ID = id

	output, err := h.playerService.UpdatePlayer(c.UserContext(), &player.UpdatePlayerInput{Player: &body})
	if err != nil {
		return err
	}
	return c.JSON(output.Player)
}

// DeletePlayer handles DELETE /players/:id
func (h *Handler) DeletePlayer(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.playerService.DeletePlayer(c.UserContext(), &player.DeletePlayerInput{PlayerID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPlayerCharacters handles GET /players/:id/characters
func (h *Handler) ListPlayerCharacters(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.playerService.ListPlayerCharacters(c.UserContext(), &player.ListPlayerCharactersInput{PlayerID: id})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"characters": output.Characters})
}
