package integrity

import (
	"errors"

	"park-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/sources", h.HandleSourcesCheck)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoPark):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrStorageNotConfigured), errors.Is(err, ErrDatabaseNotConfigured):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

func skipped(err error) bool {
	return errors.Is(err, ErrStorageNotConfigured) || errors.Is(err, ErrDatabaseNotConfigured)
}

// HandleIntegrityCheck runs every check. Checks whose backend is not
// configured are reported as skipped.
// @Summary Run All Integrity Checks
// @Description Runs the catalog, schema and sources checks. Checks without a configured backend are reported as skipped.
// @Tags integrity
// @Accept json
// @Produce json
// @Param park query string false "Park ID (defaults to the active park)"
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	park, parkErr := h.service.ResolvePark(c.Query("park"))

	// Catalog
	if parkErr != nil {
		report["catalog"] = map[string]interface{}{"status": "error", "error": parkErr.Error()}
	} else if catalog, err := h.service.CheckCatalog(ctx, park); err != nil {
		if skipped(err) {
			report["catalog"] = map[string]interface{}{"status": "skipped", "error": err.Error()}
		} else {
			report["catalog"] = map[string]interface{}{"status": "error", "error": err.Error()}
		}
	} else {
		report["catalog"] = catalog
	}

	// Schema
	if schema, err := h.service.CheckSchema(ctx); err != nil {
		if skipped(err) {
			report["schema"] = map[string]interface{}{"status": "skipped", "error": err.Error()}
		} else {
			report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
		}
	} else {
		report["schema"] = schema
	}

	// Sources
	if parkErr != nil {
		report["sources"] = map[string]interface{}{"status": "error", "error": parkErr.Error()}
	} else {
		report["sources"] = h.service.CheckSources(ctx, park)
	}

	return c.JSON(report)
}

// HandleCatalogCheck checks the park's catalog object.
// @Summary Check Catalog
// @Description Verifies that the park has a catalog object in the storage bucket.
// @Tags integrity
// @Accept json
// @Produce json
// @Param park query string false "Park ID (defaults to the active park)"
// @Success 200 {object} checks.CatalogReport "Catalog Report"
// @Failure 400 {object} map[string]string "No Park"
// @Failure 501 {object} map[string]string "Storage Not Configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	park, err := h.service.ResolvePark(c.Query("park"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.CheckCatalog(c.Context(), park)
	if err != nil {
		l.Error("Catalog check failed", zap.String("park_id", park), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status != "ok" {
		l.Warn("Catalog missing", zap.String("park_id", park), zap.String("prefix", report.Prefix))
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the schedule table.
// @Summary Check Schedule Schema
// @Description Compares the show_schedules table with its model (columns, types).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 501 {object} map[string]string "Database Not Configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema(c.Context())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema mismatch detected", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleSourcesCheck probes the upstream sources.
// @Summary Check Sources
// @Description Fetches each configured source once for the park and reports status, record count and duration.
// @Tags integrity
// @Accept json
// @Produce json
// @Param park query string false "Park ID (defaults to the active park)"
// @Success 200 {object} map[string]interface{} "Sources Report"
// @Failure 400 {object} map[string]string "No Park"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	park, err := h.service.ResolvePark(c.Query("park"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"parkId":  park,
		"sources": h.service.CheckSources(c.Context(), park),
	})
}
