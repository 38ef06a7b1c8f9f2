package collection

import (
	"errors"

	"figurine-manager/core/logger"
	"figurine-manager/core/reconcile"
	"figurine-manager/feature/collection/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the collection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.Item{}
	return &Handler{service: service}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/collection")
	group.Get("/", h.HandleList)
	group.Post("/import", h.HandleImport)
}

// HandleList returns every owned item.
// @Summary List Collection
// @Description Lists the owned items with their match criteria, in insertion order.
// @Tags collection
// @Produce json
// @Success 200 {array} models.Item "Owned items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /collection [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Collection listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

// HandleImport stores owned items from a JSON or YAML body.
// @Summary Import Collection
// @Description Imports owned items. The body is a list of items or {"items": [...]}, as JSON or YAML (by Content-Type). Amounts must be non-negative integers. The response carries the number of stored items afterwards as "total".
// @Tags collection
// @Accept json
// @Accept x-yaml
// @Produce json
// @Param replace query boolean false "Replace the whole collection"
// @Success 200 {object} map[string]interface{} "Import result"
// @Failure 400 {object} map[string]string "Invalid document or amount"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /collection/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	replace := c.QueryBool("replace", false)
	format := reconcile.FormatFromName(c.Get(fiber.HeaderContentType))

	n, err := h.service.Import(c.Context(), c.Body(), format, replace)
	if err != nil {
		if errors.Is(err, reconcile.ErrInvalidAmount) || errors.Is(err, reconcile.ErrInvalidDocument) {
			l.Warn("Rejected collection import", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Collection import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	result := fiber.Map{
		"status":   "imported",
		"imported": n,
		"replace":  replace,
	}
	if total, err := h.service.Count(c.Context()); err != nil {
		l.Warn("Failed to count collection items", zap.Error(err))
	} else {
		result["total"] = total
	}
	return c.JSON(result)
}
