package recon

import (
	"errors"

	"recon-manager/core/logger"
	"recon-manager/core/reconcile"
	"recon-manager/feature/recon/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recon routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recon")
	group.Post("/run", h.HandleRun)
	group.Post("/tables", h.HandleRunTables)
	group.Post("/extracts", h.HandleRunExtracts)
	group.Get("/extracts", h.HandleListExtracts)
}

// HandleRun reconciles two inline table payloads.
// @Summary Reconcile inline tables
// @Description Reconcile two tables posted as JSON payloads by the composite (id, login) key.
// @Tags recon
// @Accept json
// @Produce json
// @Param request body models.ReconcileRequest true "Left and right tables plus optional key column overrides"
// @Success 200 {object} models.ReconcileReport "Reconciliation report"
// @Failure 422 {object} map[string]string "Missing key column"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recon/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	var req models.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	report, err := h.service.Run(c.Context(), &req)
	return h.respond(c, report, err)
}

// HandleRunTables reconciles two database extract tables.
// @Summary Reconcile database tables
// @Description Reconcile two SQL tables by name; empty names use the configured extract tables.
// @Tags recon
// @Accept json
// @Produce json
// @Param request body models.TablesRequest true "Table names plus optional key column overrides"
// @Success 200 {object} models.ReconcileReport "Reconciliation report"
// @Failure 422 {object} map[string]string "Missing key column"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recon/tables [post]
func (h *Handler) HandleRunTables(c *fiber.Ctx) error {
	var req models.TablesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	report, err := h.service.RunFromTables(c.Context(), &req)
	return h.respond(c, report, err)
}

// HandleRunExtracts reconciles two CSV extract objects from the bucket.
// @Summary Reconcile storage extracts
// @Description Reconcile two CSV objects from the extract bucket.
// @Tags recon
// @Accept json
// @Produce json
// @Param request body models.ExtractsRequest true "Object names plus optional key column overrides"
// @Success 200 {object} models.ReconcileReport "Reconciliation report"
// @Failure 422 {object} map[string]string "Missing key column"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recon/extracts [post]
func (h *Handler) HandleRunExtracts(c *fiber.Ctx) error {
	var req models.ExtractsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	report, err := h.service.RunFromExtracts(c.Context(), &req)
	return h.respond(c, report, err)
}

// HandleListExtracts lists the CSV extracts available in the bucket.
// @Summary List extracts
// @Description List the CSV extract objects available in the bucket.
// @Tags recon
// @Produce json
// @Success 200 {array} models.ExtractInfo "Available extracts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recon/extracts [get]
func (h *Handler) HandleListExtracts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	extracts, err := h.service.ListExtracts(c.Context())
	if err != nil {
		l.Error("Extract listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if extracts == nil {
		extracts = []models.ExtractInfo{}
	}
	return c.JSON(extracts)
}

// respond maps engine errors onto HTTP statuses: a missing key column is a
// fixable input problem (422), everything else is internal (500).
func (h *Handler) respond(c *fiber.Ctx, report *models.ReconcileReport, err error) error {
	if err == nil {
		return c.JSON(report)
	}

	l := logger.WithRayID(h.service.logger, c)

	var missing *reconcile.MissingColumnError
	if errors.As(err, &missing) {
		l.Warn("Reconciliation rejected", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "missing column: " + err.Error(),
			"column": missing.Column,
			"side":   string(missing.Side),
		})
	}

	l.Error("Reconciliation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
