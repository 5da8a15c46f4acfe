package v1alpha1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign"
)

// ListCampaigns handles GET /campaigns
func (h *Handler) ListCampaigns(c *fiber.Ctx) error {
	output, err := h.campaignService.ListCampaigns(c.UserContext(), &campaign.ListCampaignsInput{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"campaigns": output.Campaigns})
}

// GetCampaign handles GET /campaigns/:id
func (h *Handler) GetCampaign(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.campaignService.GetCampaign(c.UserContext(), &campaign.GetCampaignInput{CampaignID: id})
	if err != nil {
		return err
	}
	return c.JSON(output.Campaign)
}

// CreateCampaign handles POST /campaigns
func (h *Handler) CreateCampaign(c *fiber.Ctx) error {
	var body entities.Campaign
	if err := parseBody(c, &body); err != nil {
		return err
	}

	output, err := h.campaignService.CreateCampaign(c.UserContext(), &campaign.CreateCampaignInput{Campaign: &body})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(output.Campaign)
}

// UpdateCampaign handles PUT /campaigns/:id
func (h *Handler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	var body entities.Campaign
	if err := parseBody(c, &body); err != nil {
		return err
	}
	body.ID = id

	output, err := h.campaignService.UpdateCampaign(c.UserContext(), &campaign.UpdateCampaignInput{Campaign: &body})
	if err != nil {
		return err
	}
	return c.JSON(output.Campaign)
}

// DeleteCampaign handles DELETE /campaigns/:id
func (h *Handler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.campaignService.DeleteCampaign(c.UserContext(), &campaign.DeleteCampaignInput{CampaignID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
