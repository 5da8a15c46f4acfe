package v1alpha1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report"
)

// ReportResponse is the body of GET /reports/:name
type ReportResponse struct {
	Name     entities.ReportName `json:"name"`
	Rows     any                 `json:"rows"`
	Cached   bool                `json:"cached"`
	CachedAt *time.Time          `json:"cached_at,omitempty"`
}

// ListReports handles GET /reports
func (h *Handler) ListReports(c *fiber.Ctx) error {
	output, err := h.reportService.ListReports(c.UserContext(), &report.ListReportsInput{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reports": output.Names})
}

// RunReport handles GET /reports/:name
func (h *Handler) RunReport(c *fiber.Ctx) error {
	name, err := pathParam(c, "name")
	if err != nil {
		return err
	}

	output, err := h.reportService.RunReport(c.UserContext(), &report.RunReportInput{Name: entities.ReportName(name)})
	if err != nil {
		return err
	}

	resp := ReportResponse{
		Name:   output.Name,
		Rows:   output.Rows,
		Cached: output.Source.Cached,
	}
	if output.Source.Cached {
		cachedAt := output.Source.CachedAt
		resp.CachedAt = &cachedAt
	}
	return c.JSON(resp)
}
