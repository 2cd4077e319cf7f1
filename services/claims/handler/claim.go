package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/internal/utils"
	"github.com/fleetdesk/backoffice/services/claims"
)

// ClaimHandler handles HTTP requests for claim operations
type ClaimHandler struct {
	claimUC claims.ClaimUC
}

// NewClaimHandler creates a new claim HTTP handler
func NewClaimHandler(claimUC claims.ClaimUC) *ClaimHandler {
	return &ClaimHandler{claimUC: claimUC}
}

// RegisterRoutes registers all claim HTTP routes
func (h *ClaimHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/claims", h.CreateClaim)
	e.POST("/claims/:claimID/escalate", h.EscalateClaim)
	e.POST("/claims/:claimID/refund", h.RefundClaim)
	e.GET("/clients/:clientID/claims", h.ListClaims)
}

// CreateClaim registers a new customer claim
func (h *ClaimHandler) CreateClaim(c echo.Context) error {
	var req struct {
		OwnerID             int64  `json:"owner_id"`
		TransitID           int64  `json:"transit_id"`
		TransitPrice        int64  `json:"transit_price"`
		Reason              string `json:"reason"`
		IncidentDescription string `json:"incident_description"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	claim := &models.Claim{
		OwnerID:             req.OwnerID,
		TransitID:           req.TransitID,
		TransitPrice:        req.TransitPrice,
		Reason:              req.Reason,
		IncidentDescription: req.IncidentDescription,
	}

	if err := h.claimUC.CreateClaim(c.Request().Context(), claim); err != nil {
		logger.Error("Failed to create claim", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Claim created", claim)
}

// EscalateClaim escalates a claim for manual handling
func (h *ClaimHandler) EscalateClaim(c echo.Context) error {
	return h.transition(c, h.claimUC.EscalateClaim, "Claim escalated")
}

// RefundClaim refunds a claim automatically
func (h *ClaimHandler) RefundClaim(c echo.Context) error {
	return h.transition(c, h.claimUC.RefundClaim, "Claim refunded")
}

// ListClaims returns a client's claims
func (h *ClaimHandler) ListClaims(c echo.Context) error {
	clientID, err := strconv.ParseInt(c.Param("clientID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "client_id must be an integer")
	}

	result, err := h.claimUC.ListClaims(c.Request().Context(), clientID)
	if err != nil {
		logger.Error("Failed to list claims",
			logger.Int64("client_id", clientID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list claims")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Claims listed", result)
}

func (h *ClaimHandler) transition(
	c echo.Context,
	fn func(context.Context, int64) (*models.Claim, error),
	message string,
) error {
	claimID, err := strconv.ParseInt(c.Param("claimID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "claim_id must be an integer")
	}

	claim, err := fn(c.Request().Context(), claimID)
	if err != nil {
		if errors.Is(err, claims.ErrClaimNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		if errors.Is(err, claims.ErrClaimCompleted) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to transition claim",
			logger.Int64("claim_id", claimID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update claim")
	}

	return utils.SuccessResponse(c, http.StatusOK, message, claim)
}
