package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/internal/utils"
	"github.com/fleetdesk/backoffice/services/driverfee"
)

// FeeHandler handles HTTP requests for driver fee operations
type FeeHandler struct {
	feeUC driverfee.FeeUC
}

// NewFeeHandler creates a new driver fee HTTP handler
func NewFeeHandler(feeUC driverfee.FeeUC) *FeeHandler {
	return &FeeHandler{feeUC: feeUC}
}

// RegisterRoutes registers all driver fee HTTP routes
func (h *FeeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/transits/:transitID/driver-fee", h.GetDriverFee)
	e.PUT("/drivers/:driverID/fee", h.SetDriverFee)
}

// GetDriverFee returns the driver's payable fee for a transit
func (h *FeeHandler) GetDriverFee(c echo.Context) error {
	transitID, err := strconv.ParseInt(c.Param("transitID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "transit_id must be an integer")
	}

	fee, err := h.feeUC.CalculateDriverFee(c.Request().Context(), transitID)
	if err != nil {
		if errors.Is(err, driverfee.ErrTransitNotFound) || errors.Is(err, driverfee.ErrFeeNotDefined) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to calculate driver fee",
			logger.Int64("transit_id", transitID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to calculate driver fee")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver fee calculated", map[string]interface{}{
		"transit_id": transitID,
		"fee":        fee,
	})
}

// SetDriverFee creates or replaces a driver's fee policy
func (h *FeeHandler) SetDriverFee(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	var req struct {
		FeeType string `json:"fee_type"`
		Amount  int64  `json:"amount"`
		Min     *int64 `json:"min"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	fee := &models.DriverFee{
		DriverID: driverID,
		FeeType:  models.FeeType(req.FeeType),
		Amount:   req.Amount,
		Min:      req.Min,
	}

	if err := h.feeUC.SetDriverFee(c.Request().Context(), fee); err != nil {
		logger.Error("Failed to save driver fee policy",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver fee policy saved", fee)
}
