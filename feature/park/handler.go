package park

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"park-sync/core/logger"
	parksync "park-sync/feature/park/sync"
)

// Handler handles HTTP requests for park caches.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the park routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	parks := app.Group("/parks")
	parks.Get("/active", h.HandleGetActivePark)
	parks.Put("/active/:parkId", h.HandleSetActivePark)
	parks.Delete("/:parkId/cache", h.HandleResetCache)

	app.Get("/queue-times", h.HandleListQueueTimes)
	app.Get("/queue-times/:itemId", h.HandleGetQueueTime)
	app.Get("/performances", h.HandleListPerformances)
	app.Get("/performances/:itemId", h.HandleGetPerformance)

	sync := app.Group("/sync")
	sync.Post("/full", h.HandleForceFullSync)
	sync.Post("/start", h.HandleStart)
	sync.Post("/stop", h.HandleStop)
	sync.Post("/resume", h.HandleResume)
}

// HandleGetActivePark returns the scheduler state.
// @Summary Get Active Park
// @Description Returns the active park, whether the delta timer is armed and which parks have cached data.
// @Tags parks
// @Accept json
// @Produce json
// @Success 200 {object} Status "Scheduler Status"
// @Router /parks/active [get]
func (h *Handler) HandleGetActivePark(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleSetActivePark switches the active park without syncing it.
// @Summary Set Active Park
// @Description Switches the park that sync cycles refresh. Does not sync by itself.
// @Tags parks
// @Accept json
// @Produce json
// @Param parkId path string true "Park ID"
// @Success 200 {object} Status "Scheduler Status"
// @Failure 400 {object} map[string]string "Invalid Park"
// @Router /parks/active/{parkId} [put]
func (h *Handler) HandleSetActivePark(c *fiber.Ctx) error {
	if err := h.service.SetActivePark(c.Params("parkId")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Info("Active park set", zap.String("park_id", h.service.ActivePark()))
	return c.JSON(h.service.Status())
}

// HandleResetCache drops a park's caches.
// @Summary Reset Park Cache
// @Description Drops the queue-time and performance caches of a park.
// @Tags parks
// @Param parkId path string true "Park ID"
// @Success 204 "No Content"
// @Router /parks/{parkId}/cache [delete]
func (h *Handler) HandleResetCache(c *fiber.Ctx) error {
	h.service.Reset(c.Params("parkId"))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListQueueTimes returns all attractions of the active park.
// @Summary List Queue Times
// @Description Returns every cached attraction of the active park as of the last sync.
// @Tags queue-times
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Park ID and Items"
// @Router /queue-times [get]
func (h *Handler) HandleListQueueTimes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"parkId": h.service.ActivePark(),
		"items":  h.service.QueueTimes(),
	})
}

// HandleGetQueueTime returns one attraction of the active park.
// @Summary Get Queue Time
// @Description Returns one cached attraction of the active park.
// @Tags queue-times
// @Accept json
// @Produce json
// @Param itemId path string true "Attraction ID"
// @Success 200 {object} models.AttractionEntry "Attraction"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /queue-times/{itemId} [get]
func (h *Handler) HandleGetQueueTime(c *fiber.Ctx) error {
	entry, ok := h.service.QueueTime(c.Params("itemId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "attraction not found"})
	}
	return c.JSON(entry)
}

// HandleListPerformances returns all performances of the active park.
// @Summary List Performances
// @Description Returns every cached performance of the active park as of the last sync.
// @Tags performances
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Park ID and Items"
// @Router /performances [get]
func (h *Handler) HandleListPerformances(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"parkId": h.service.ActivePark(),
		"items":  h.service.Performances(),
	})
}

// HandleGetPerformance returns one performance with per-show colors as of now.
// @Summary Get Performance
// @Description Returns one performance with countdown and per-show colors recomputed for the current time.
// @Tags performances
// @Accept json
// @Produce json
// @Param itemId path string true "Performance ID"
// @Success 200 {object} models.PerformanceEntry "Performance"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /performances/{itemId} [get]
func (h *Handler) HandleGetPerformance(c *fiber.Ctx) error {
	entry, ok := h.service.Performance(c.Params("itemId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "performance not found"})
	}
	return c.JSON(entry)
}

// HandleForceFullSync runs a full sync now.
// @Summary Force Full Sync
// @Description Runs a full sync for the active park immediately. The delta timer is left as it is.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Status and Report"
// @Failure 409 {object} map[string]string "No Active Park"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/full [post]
func (h *Handler) HandleForceFullSync(c *fiber.Ctx) error {
	report, err := h.service.ForceFullSync(c.UserContext())
	return h.syncResponse(c, report, err)
}

// HandleStart runs a full sync and (re)arms the delta timer.
// @Summary Start Updates
// @Description Runs a full sync and restarts the recurring delta sync.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Status and Report"
// @Failure 409 {object} map[string]string "No Active Park"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/start [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	report, err := h.service.StartUpdates(c.UserContext())
	return h.syncResponse(c, report, err)
}

// HandleStop disarms the delta timer.
// @Summary Stop Updates
// @Description Cancels the recurring delta sync. Cached data is kept.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} Status "Scheduler Status"
// @Router /sync/stop [post]
func (h *Handler) HandleStop(c *fiber.Ctx) error {
	h.service.StopUpdates()
	return c.JSON(h.service.Status())
}

// HandleResume runs a full sync and arms the timer if idle.
// @Summary Resume Updates
// @Description Runs a full sync and arms the delta timer only when it is not already running.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Status and Report"
// @Failure 409 {object} map[string]string "No Active Park"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/resume [post]
func (h *Handler) HandleResume(c *fiber.Ctx) error {
	report, err := h.service.ResumeUpdates(c.UserContext())
	return h.syncResponse(c, report, err)
}

func (h *Handler) syncResponse(c *fiber.Ctx, report *parksync.Report, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	if errors.Is(err, parksync.ErrNoActivePark) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Sync request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"status": h.service.Status(),
		"report": report,
	})
}
