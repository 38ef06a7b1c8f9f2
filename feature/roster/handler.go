package roster

import (
	"errors"

	"figurine-manager/core/logger"
	"figurine-manager/core/reconcile"
	"figurine-manager/feature/roster/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rosters.
type Handler struct {
	provider *Provider
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(provider *Provider, logger *zap.Logger) *Handler {
	// Force import for Swagger
	var _ = models.Summary{}
	return &Handler{provider: provider, logger: logger}
}

// RegisterRoutes registers the roster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rosters")
	group.Get("/", h.HandleList)
	group.Get("/:key", h.HandleGet)
	group.Get("/:key/models", h.HandleModels)
}

// HandleList summarizes every stored roster.
// @Summary List Rosters
// @Description Lists the rosters in storage with force, unit and model counts.
// @Tags rosters
// @Produce json
// @Success 200 {array} models.Summary "Roster summaries"
// @Failure 422 {object} map[string]string "Unsupported schema version"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rosters [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	summaries, err := h.provider.Summaries(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(summaries)
}

// HandleGet returns a roster document.
// @Summary Get Roster
// @Description Returns the parsed roster document.
// @Tags rosters
// @Produce json
// @Param key path string true "Roster key"
// @Param refresh query boolean false "Drop the cached copy and read the document from storage"
// @Success 200 {object} models.Document "Roster"
// @Failure 400 {object} map[string]string "Invalid key or document"
// @Failure 404 {object} map[string]string "Roster not found"
// @Failure 422 {object} map[string]string "Unsupported schema version"
// @Router /rosters/{key} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	key := c.Params("key")
	if c.QueryBool("refresh", false) {
		h.provider.Invalidate(key)
	}

	doc, err := h.provider.Document(c.Context(), key)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(doc)
}

// HandleModels returns the required models of a roster.
// @Summary Roster Models
// @Description Lists one required model per physical model of every enabled unit.
// @Tags rosters
// @Produce json
// @Param key path string true "Roster key"
// @Param stacked query boolean false "Group identical models and sum their amounts"
// @Success 200 {array} reconcile.RequiredModel "Required models"
// @Failure 400 {object} map[string]string "Invalid key or document"
// @Failure 404 {object} map[string]string "Roster not found"
// @Failure 422 {object} map[string]string "Unsupported schema version"
// @Router /rosters/{key}/models [get]
func (h *Handler) HandleModels(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	required, err := h.provider.RequiredModels(c.Context(), c.Params("key"))
	if err != nil {
		return h.fail(c, l, err)
	}
	if c.QueryBool("stacked", false) {
		required = reconcile.StackRequired(required)
	}
	return c.JSON(required)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Roster request failed", zap.Error(err))
	} else {
		l.Warn("Roster request rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps roster errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUnsupportedSchema),
		errors.Is(err, reconcile.ErrTooManyInstances):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidKey),
		errors.Is(err, reconcile.ErrInvalidDocument),
		errors.Is(err, reconcile.ErrInvalidAmount):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
