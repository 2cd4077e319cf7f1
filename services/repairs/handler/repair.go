package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/internal/utils"
	"github.com/fleetdesk/backoffice/services/repairs"
)

// RepairHandler handles HTTP requests for repair resolution
type RepairHandler struct {
	repairUC repairs.RepairUC
}

// NewRepairHandler creates a new repair HTTP handler
func NewRepairHandler(repairUC repairs.RepairUC) *RepairHandler {
	return &RepairHandler{repairUC: repairUC}
}

// RegisterRoutes registers all repair HTTP routes
func (h *RepairHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/repairs/resolve", h.ResolveRepair)
}

// ResolveRepair resolves a repair request against coverage rules
func (h *RepairHandler) ResolveRepair(c echo.Context) error {
	var req models.RepairRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.repairUC.ResolveRepair(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to resolve repair", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Repair resolved", map[string]interface{}{
		"handling_party_id": result.HandlingPartyID,
		"total_cost":        result.TotalCost.ToInt(),
		"accepted_parts":    result.AcceptedParts,
	})
}
