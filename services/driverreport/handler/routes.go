package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/services/driverreport"
	httpHandler "github.com/fleetdesk/backoffice/services/driverreport/handler/http"
)

// HTTPHandler combines all handlers for the driver report service
type HTTPHandler struct {
	reportHTTP *httpHandler.DriverReportHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(reportUC driverreport.DriverReportUC) *HTTPHandler {
	return &HTTPHandler{
		reportHTTP: httpHandler.NewDriverReportHandler(reportUC),
	}
}

// RegisterRoutes registers all driver report HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/drivers/:driverID/positions", h.reportHTTP.AddPosition)
	e.GET("/drivers/:driverID/travelled-distance", h.reportHTTP.GetTravelledDistance)
	e.POST("/drivers/:driverID/attributes", h.reportHTTP.SaveAttribute)
}
