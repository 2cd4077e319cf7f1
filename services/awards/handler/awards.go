package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/utils"
	"github.com/fleetdesk/backoffice/services/awards"
)

// AwardsHandler handles HTTP requests for miles account operations
type AwardsHandler struct {
	awardsUC awards.AwardsUC
}

// NewAwardsHandler creates a new awards HTTP handler
func NewAwardsHandler(awardsUC awards.AwardsUC) *AwardsHandler {
	return &AwardsHandler{awardsUC: awardsUC}
}

// RegisterRoutes registers all awards HTTP routes
func (h *AwardsHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/clients/:clientID/awards", h.RegisterAccount)
	e.POST("/clients/:clientID/awards/activate", h.ActivateAccount)
	e.GET("/clients/:clientID/miles", h.GetBalance)
}

// RegisterAccount opens a miles account for the client
func (h *AwardsHandler) RegisterAccount(c echo.Context) error {
	clientID, err := strconv.ParseInt(c.Param("clientID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "client_id must be an integer")
	}

	account, err := h.awardsUC.RegisterAccount(c.Request().Context(), clientID)
	if err != nil {
		if errors.Is(err, awards.ErrAccountExists) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to register awards account",
			logger.Int64("client_id", clientID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to register awards account")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Awards account registered", account)
}

// ActivateAccount switches the client's account active
func (h *AwardsHandler) ActivateAccount(c echo.Context) error {
	clientID, err := strconv.ParseInt(c.Param("clientID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "client_id must be an integer")
	}

	if err := h.awardsUC.ActivateAccount(c.Request().Context(), clientID); err != nil {
		if errors.Is(err, awards.ErrAccountNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to activate awards account",
			logger.Int64("client_id", clientID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to activate awards account")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Awards account activated", nil)
}

// GetBalance returns the client's current miles balance
func (h *AwardsHandler) GetBalance(c echo.Context) error {
	clientID, err := strconv.ParseInt(c.Param("clientID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "client_id must be an integer")
	}

	balance, err := h.awardsUC.CalculateBalance(c.Request().Context(), clientID)
	if err != nil {
		if errors.Is(err, awards.ErrAccountNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to calculate miles balance",
			logger.Int64("client_id", clientID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to calculate miles balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Miles balance calculated", map[string]interface{}{
		"client_id": clientID,
		"balance":   balance,
	})
}
