package reconciliation

import (
	"errors"

	"figurine-manager/core/logger"
	"figurine-manager/core/reconcile"
	"figurine-manager/feature/roster"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Header names set on saved reports.
const (
	HeaderReportID     = "X-Report-ID"
	HeaderReportObject = "X-Report-Object"
)

// Handler handles HTTP requests for reconciliations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = reconcile.Report{}
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/", h.HandleInline)
	group.Post("/explain", h.HandleExplain)
	group.Get("/:roster", h.HandleRoster)
	group.Get("/reports/:roster/:id", h.HandleReport)
}

// HandleInline reconciles the posted inputs.
// @Summary Reconcile Inline
// @Description Reconciles a posted list of required models against a posted list of owned items. No storage or database access.
// @Tags reconcile
// @Accept json
// @Accept x-yaml
// @Produce json
// @Success 200 {object} reconcile.Report "Reconciliation report"
// @Failure 400 {object} map[string]string "Invalid document or amount"
// @Failure 413 {object} map[string]string "Too many instances"
// @Router /reconcile [post]
func (h *Handler) HandleInline(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	required, owned, err := reconcile.DecodeRequest(c.Body(), reconcile.FormatFromName(c.Get(fiber.HeaderContentType)))
	if err != nil {
		return h.fail(c, l, err)
	}

	report, err := h.service.ReconcileInline(c.Context(), required, owned)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandleExplain scores the posted inputs without solving.
// @Summary Explain Reconciliation
// @Description Returns the expanded instances and every admissible pair with its specificity, ambiguity and weight.
// @Tags reconcile
// @Accept json
// @Accept x-yaml
// @Produce json
// @Success 200 {object} reconcile.Explanation "Candidate graph"
// @Failure 400 {object} map[string]string "Invalid document or amount"
// @Failure 413 {object} map[string]string "Too many instances"
// @Router /reconcile/explain [post]
func (h *Handler) HandleExplain(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	required, owned, err := reconcile.DecodeRequest(c.Body(), reconcile.FormatFromName(c.Get(fiber.HeaderContentType)))
	if err != nil {
		return h.fail(c, l, err)
	}

	explanation, err := h.service.Explain(c.Context(), required, owned)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(explanation)
}

// HandleRoster reconciles a stored roster against the collection.
// @Summary Reconcile Roster
// @Description Reconciles the roster stored under the given key against the owned collection. With save=true the report is stored and its id returned in the X-Report-ID header.
// @Tags reconcile
// @Produce json
// @Param roster path string true "Roster key"
// @Param save query boolean false "Store the report in object storage"
// @Success 200 {object} reconcile.Report "Reconciliation report"
// @Failure 400 {object} map[string]string "Invalid roster or amount"
// @Failure 404 {object} map[string]string "Roster not found"
// @Failure 413 {object} map[string]string "Too many instances"
// @Failure 422 {object} map[string]string "Unsupported schema version"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/{roster} [get]
func (h *Handler) HandleRoster(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("roster")

	report, saved, err := h.service.ReconcileRoster(c.Context(), key, c.QueryBool("save", false))
	if err != nil {
		return h.fail(c, l.With(zap.String("roster", key)), err)
	}

	if saved != nil {
		c.Set(HeaderReportID, saved.ID)
		c.Set(HeaderReportObject, saved.Object)
	}
	return c.JSON(report)
}

// HandleReport returns a previously saved report.
// @Summary Get Saved Report
// @Description Returns a report stored by GET /reconcile/{roster}?save=true.
// @Tags reconcile
// @Produce json
// @Param roster path string true "Roster key"
// @Param id path string true "Report id"
// @Success 200 {object} reconcile.Report "Saved report"
// @Failure 400 {object} map[string]string "Invalid roster key or report id"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/reports/{roster}/{id} [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key, id := c.Params("roster"), c.Params("id")

	report, err := h.service.Report(c.Context(), key, id)
	if err != nil {
		return h.fail(c, l.With(zap.String("roster", key), zap.String("report", id)), err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Reconciliation failed", zap.Error(err))
	} else {
		l.Warn("Reconciliation rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps reconciliation errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrTooManyInstances):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, ErrReportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrInvalidAmount),
		errors.Is(err, reconcile.ErrInvalidDocument):
		return fiber.StatusBadRequest
	default:
		return roster.StatusFor(err)
	}
}
