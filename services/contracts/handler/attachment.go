package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/utils"
	"github.com/fleetdesk/backoffice/services/contracts"
)

// AttachmentHandler handles HTTP requests for contract attachment operations
type AttachmentHandler struct {
	attachmentUC contracts.AttachmentUC
}

// NewAttachmentHandler creates a new contract attachment HTTP handler
func NewAttachmentHandler(attachmentUC contracts.AttachmentUC) *AttachmentHandler {
	return &AttachmentHandler{attachmentUC: attachmentUC}
}

// RegisterRoutes registers all contract attachment HTTP routes
func (h *AttachmentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/contracts/:contractID/attachments", h.ProposeAttachment)
	e.GET("/contracts/:contractID/attachments", h.ListAttachments)
	e.POST("/attachments/:attachmentNo/accept", h.AcceptAttachment)
	e.POST("/attachments/:attachmentNo/reject", h.RejectAttachment)
}

// ProposeAttachment creates a new attachment under a contract
func (h *AttachmentHandler) ProposeAttachment(c echo.Context) error {
	contractID, err := strconv.ParseInt(c.Param("contractID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "contract_id must be an integer")
	}

	attachment, err := h.attachmentUC.ProposeAttachment(c.Request().Context(), contractID)
	if err != nil {
		logger.Error("Failed to propose attachment",
			logger.Int64("contract_id", contractID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to propose attachment")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Attachment proposed", attachment)
}

// AcceptAttachment records one party's acceptance
func (h *AttachmentHandler) AcceptAttachment(c echo.Context) error {
	attachmentNo := c.Param("attachmentNo")

	attachment, err := h.attachmentUC.AcceptAttachment(c.Request().Context(), attachmentNo)
	if err != nil {
		if errors.Is(err, contracts.ErrAttachmentNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		if errors.Is(err, contracts.ErrAttachmentRejected) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to accept attachment",
			logger.String("attachment_no", attachmentNo),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to accept attachment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Attachment accepted", attachment)
}

// RejectAttachment marks the attachment rejected
func (h *AttachmentHandler) RejectAttachment(c echo.Context) error {
	attachmentNo := c.Param("attachmentNo")

	attachment, err := h.attachmentUC.RejectAttachment(c.Request().Context(), attachmentNo)
	if err != nil {
		if errors.Is(err, contracts.ErrAttachmentNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to reject attachment",
			logger.String("attachment_no", attachmentNo),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to reject attachment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Attachment rejected", attachment)
}

// ListAttachments returns a contract's attachments
func (h *AttachmentHandler) ListAttachments(c echo.Context) error {
	contractID, err := strconv.ParseInt(c.Param("contractID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "contract_id must be an integer")
	}

	result, err := h.attachmentUC.ListAttachments(c.Request().Context(), contractID)
	if err != nil {
		logger.Error("Failed to list attachments",
			logger.Int64("contract_id", contractID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list attachments")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Attachments listed", result)
}
