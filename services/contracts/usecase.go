package contracts

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// AttachmentUC drives the contract attachment acceptance flow
type AttachmentUC interface {
	// ProposeAttachment creates a new attachment in PROPOSED status
	ProposeAttachment(ctx context.Context, contractID int64) (*models.ContractAttachment, error)
	// AcceptAttachment records one party's acceptance; the second acceptance
	// moves the attachment to ACCEPTED_BY_BOTH_SIDES
	AcceptAttachment(ctx context.Context, attachmentNo string) (*models.ContractAttachment, error)
	// RejectAttachment marks the attachment REJECTED
	RejectAttachment(ctx context.Context, attachmentNo string) (*models.ContractAttachment, error)
	ListAttachments(ctx context.Context, contractID int64) ([]*models.ContractAttachment, error)
}
