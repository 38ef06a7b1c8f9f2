package integrity

import (
	"figurine-manager/core/logger"
	"figurine-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.ServerReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleAll)
	group.Get("/structure", h.HandleStructure)
	group.Get("/rosters", h.HandleRosters)
	group.Get("/server", h.HandleServer)
}

// HandleAll runs every check. It answers 200 even when checks fail; the
// failures are listed under "errors".
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Rosters, Server) without fixing anything.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckAll(c.Context())
	l.Info("Integrity checks completed", zap.Bool("healthy", report.Healthy()), zap.Int("errors", len(report.Errors)))
	return c.JSON(report)
}

// HandleStructure checks and optionally fixes the bucket layout.
// @Summary Check Structure
// @Description Checks that the bucket and the roster and report folders exist. With fix=true the bucket and missing folders are created.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket and missing folders"
// @Success 200 {object} checks.StructureReport "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructure(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix", false)

	report, err := h.service.CheckStructure(c.Context(), fix)
	if err != nil {
		l.Error("Structure check failed", zap.Bool("fix", fix), zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if report != nil {
			body["report"] = report
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}

	switch report.Status {
	case checks.StructureFixed:
		l.Info("Structure fixed", zap.Strings("created", report.Created))
	case checks.StructureOK:
	default:
		l.Warn("Structure incomplete", zap.String("status", report.Status), zap.Strings("missing", report.Missing))
	}
	return c.JSON(report)
}

// HandleRosters parses every stored roster.
// @Summary Check Rosters
// @Description Reads every roster document and reports the ones that cannot be parsed or use an unsupported schema version.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.RosterReport "Roster Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/rosters [get]
func (h *Handler) HandleRosters(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckRosters(c.Context())
	if err != nil {
		l.Error("Roster check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(report.Invalid) > 0 {
		l.Warn("Invalid rosters detected", zap.Int("invalid", len(report.Invalid)))
	}
	return c.JSON(report)
}

// HandleServer compares the collection tables with the models.
// @Summary Check Server Schema
// @Description Checks if the collection database schema matches the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched {
		l.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
	}
	return c.JSON(report)
}
