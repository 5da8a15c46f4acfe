// Package v1alpha1 handles the HTTP/JSON API
package v1alpha1

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report"
)

// Prefix is where RegisterRoutes expects to be mounted
const Prefix = "/api/v1alpha1"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	PlayerService    player.Service
	CampaignService  campaign.Service
	CharacterService character.Service
	CatalogService   catalog.Service
	ReportService    report.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.CampaignService == nil {
		vb.RequiredField("CampaignService")
	}
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.ReportService == nil {
		vb.RequiredField("ReportService")
	}
	return vb.Build()
}

// Handler serves the v1alpha1 routes
type Handler struct {
	playerService    player.Service
	campaignService  campaign.Service
	characterService character.Service
	catalogService   catalog.Service
	reportService    report.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		playerService:    cfg.PlayerService,
		campaignService:  cfg.CampaignService,
		characterService: cfg.CharacterService,
		catalogService:   cfg.CatalogService,
		reportService:    cfg.ReportService,
	}, nil
}

// RegisterRoutes mounts every route on router
func (h *Handler) RegisterRoutes(router fiber.Router) {
	players := router.Group("/players")
	players.Get("/", h.ListPlayers)
	players.Post("/", h.CreatePlayer)
	players.Get("/:id", h.GetPlayer)
	players.Put("/:id", h.UpdatePlayer)
	players.Delete("/:id", h.DeletePlayer)
	players.Get("/:id/characters", h.ListPlayerCharacters)

	campaigns := router.Group("/campaigns")
	campaigns.Get("/", h.ListCampaigns)
	campaigns.Post("/", h.CreateCampaign)
	campaigns.Get("/:id", h.GetCampaign)
	campaigns.Put("/:id", h.UpdateCampaign)
	campaigns.Delete("/:id", h.DeleteCampaign)

	characters := router.Group("/characters")
	characters.Get("/", h.ListCharacters)
	characters.Post("/", h.CreateCharacter)
	// registered before /:id so the literal segment wins
	characters.Post("/roll-ability-scores", h.RollAbilityScores)
	characters.Get("/:id", h.GetCharacter)
	characters.Put("/:id", h.UpdateCharacter)
	characters.Delete("/:id", h.DeleteCharacter)

	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/classes", h.ListClasses)
	catalogRoutes.Get("/classes/ids", h.ListClassIDs)
	catalogRoutes.Get("/classes/:id/subclasses", h.ListSubclassIDsByClass)
	catalogRoutes.Get("/subclasses", h.ListSubclassIDs)
	catalogRoutes.Get("/species", h.ListSpecies)
	catalogRoutes.Get("/species/ids", h.ListSpeciesIDs)
	catalogRoutes.Get("/species/:id/subspecies", h.ListSubspeciesIDsBySpecies)
	catalogRoutes.Get("/subspecies", h.ListSubspeciesIDs)
	catalogRoutes.Get("/backgrounds", h.ListBackgroundIDs)
	catalogRoutes.Post("/import", h.ImportCatalog)

	reports := router.Group("/reports")
	reports.Get("/", h.ListReports)
	reports.Get("/:name", h.RunReport)
}

// pathParam returns the unescaped path parameter. Character names contain spaces.
func pathParam(c *fiber.Ctx, key string) (string, error) {
	raw := c.Params(key)
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", errors.InvalidArgumentf("invalid %s: %s", key, raw)
	}
	if strings.TrimSpace(value) == "" {
		return "", errors.InvalidArgumentf("%s is required", key)
	}
	return value, nil
}

// pathID parses a numeric path parameter
func pathID(c *fiber.Ctx, key string) (int, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, errors.InvalidArgumentf("invalid %s: %s", key, c.Params(key))
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return errors.InvalidArgument("request body is required")
	}
	if err := c.BodyParser(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}
