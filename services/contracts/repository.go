package contracts

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// AttachmentRepo provides access to contract attachments
type AttachmentRepo interface {
	// FindByAttachmentNo returns (nil, nil) when the attachment does not exist
	FindByAttachmentNo(ctx context.Context, attachmentNo string) (*models.ContractAttachment, error)
	Create(ctx context.Context, attachment *models.ContractAttachment) error
	Update(ctx context.Context, attachment *models.ContractAttachment) error
	ListByContract(ctx context.Context, contractID int64) ([]*models.ContractAttachment, error)
}
