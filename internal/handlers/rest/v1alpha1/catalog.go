package v1alpha1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog"
)

func idsResponse(c *fiber.Ctx, output *catalog.ListIDsOutput, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ids": output.IDs})
}

// ListClasses handles GET /catalog/classes
func (h *Handler) ListClasses(c *fiber.Ctx) error {
	output, err := h.catalogService.ListClasses(c.UserContext(), &catalog.ListClassesInput{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"classes": output.Classes})
}

// ListClassIDs handles GET /catalog/classes/ids
func (h *Handler) ListClassIDs(c *fiber.Ctx) error {
	output, err := h.catalogService.ListClassIDs(c.UserContext(), &catalog.ListClassIDsInput{})
	return idsResponse(c, output, err)
}

// ListSubclassIDsByClass handles GET /catalog/classes/:id/subclasses
func (h *Handler) ListSubclassIDsByClass(c *fiber.Ctx) error {
	classID, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	output, err := h.catalogService.ListSubclassIDsByClass(c.UserContext(),
		&catalog.ListSubclassIDsByClassInput{ClassID: classID})
	return idsResponse(c, output, err)
}

// ListSubclassIDs handles GET /catalog/subclasses
func (h *Handler) ListSubclassIDs(c *fiber.Ctx) error {
	output, err := h.catalogService.ListSubclassIDs(c.UserContext(), &catalog.ListSubclassIDsInput{})
	return idsResponse(c, output, err)
}

// ListSpecies handles GET /catalog/species
func (h *Handler) ListSpecies(c *fiber.Ctx) error {
	output, err := h.catalogService.ListSpecies(c.UserContext(), &catalog.ListSpeciesInput{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"species": output.Species})
}

// ListSpeciesIDs handles GET /catalog/species/ids
func (h *Handler) ListSpeciesIDs(c *fiber.Ctx) error {
	output, err := h.catalogService.ListSpeciesIDs(c.UserContext(), &catalog.ListSpeciesIDsInput{})
	return idsResponse(c, output, err)
}

// ListSubspeciesIDsBySpecies handles GET /catalog/species/:id/subspecies
func (h *Handler) ListSubspeciesIDsBySpecies(c *fiber.Ctx) error {
	speciesID, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	output, err := h.catalogService.ListSubspeciesIDsBySpecies(c.UserContext(),
		&catalog.ListSubspeciesIDsBySpeciesInput{SpeciesID: speciesID})
	return idsResponse(c, output, err)
}

// ListSubspeciesIDs handles GET /catalog/subspecies
func (h *Handler) ListSubspeciesIDs(c *fiber.Ctx) error {
	output, err := h.catalogService.ListSubspeciesIDs(c.UserContext(), &catalog.ListSubspeciesIDsInput{})
	return idsResponse(c, output, err)
}

// ListBackgroundIDs handles GET /catalog/backgrounds
func (h *Handler) ListBackgroundIDs(c *fiber.Ctx) error {
	output, err := h.catalogService.ListBackgroundIDs(c.UserContext(), &catalog.ListBackgroundIDsInput{})
	return idsResponse(c, output, err)
}

// ImportCatalog handles POST /catalog/import
func (h *Handler) ImportCatalog(c *fiber.Ctx) error {
	output, err := h.catalogService.ImportCatalog(c.UserContext(), &catalog.ImportCatalogInput{})
	if err != nil {
		return err
	}
	return c.JSON(output)
}
