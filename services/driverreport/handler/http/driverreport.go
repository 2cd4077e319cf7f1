package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/internal/pkg/geo"
	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/internal/utils"
	"github.com/fleetdesk/backoffice/services/driverreport"
)

// DriverReportHandler handles HTTP requests for driver report operations
type DriverReportHandler struct {
	reportUC driverreport.DriverReportUC
}

// NewDriverReportHandler creates a new driver report HTTP handler
func NewDriverReportHandler(reportUC driverreport.DriverReportUC) *DriverReportHandler {
	return &DriverReportHandler{reportUC: reportUC}
}

// AddPosition records a position sample for a driver
func (h *DriverReportHandler) AddPosition(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	var req struct {
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		SeenAt    time.Time `json:"seen_at"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind position request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	position := &models.DriverPosition{
		DriverID:  driverID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		SeenAt:    req.SeenAt,
	}

	if err := h.reportUC.AddPosition(c.Request().Context(), position); err != nil {
		logger.Error("Failed to add position",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Position recorded", position)
}

// GetTravelledDistance returns the cumulative distance travelled by a
// driver in a time window, printed in the requested unit (default km)
func (h *DriverReportHandler) GetTravelledDistance(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return utils.BadRequestResponse(c, "from must be an RFC3339 timestamp")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return utils.BadRequestResponse(c, "to must be an RFC3339 timestamp")
	}

	unit := c.QueryParam("unit")
	if unit == "" {
		unit = geo.UnitKm
	}

	distance, err := h.reportUC.CalculateDistance(c.Request().Context(), driverID, from, to)
	if err != nil {
		logger.Error("Failed to calculate travelled distance",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to calculate travelled distance")
	}

	printed, err := distance.PrintIn(unit)
	if err != nil {
		if errors.Is(err, geo.ErrUnsupportedUnit) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to format distance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Travelled distance calculated", map[string]interface{}{
		"driver_id": driverID,
		"from":      from,
		"to":        to,
		"distance":  printed,
	})
}

// SaveAttribute attaches a report attribute to a driver
func (h *DriverReportHandler) SaveAttribute(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	var req struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	attribute := &models.DriverAttribute{
		DriverID: driverID,
		Name:     req.Name,
		Value:    req.Value,
	}

	if err := h.reportUC.SaveAttribute(c.Request().Context(), attribute); err != nil {
		logger.Error("Failed to save driver attribute",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Attribute saved", attribute)
}
