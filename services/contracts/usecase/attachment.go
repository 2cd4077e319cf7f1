package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/contracts"
)

// AttachmentService implements the contracts.AttachmentUC interface
type AttachmentService struct {
	repo contracts.AttachmentRepo
}

// NewAttachmentService creates a new contract attachment use case
func NewAttachmentService(repo contracts.AttachmentRepo) contracts.AttachmentUC {
	return &AttachmentService{repo: repo}
}

// ProposeAttachment creates a new attachment in PROPOSED status
func (s *AttachmentService) ProposeAttachment(ctx context.Context, contractID int64) (*models.ContractAttachment, error) {
	attachment := &models.ContractAttachment{
		AttachmentNo: uuid.NewString(),
		ContractID:   contractID,
		Status:       models.AttachmentStatusProposed,
	}

	if err := s.repo.Create(ctx, attachment); err != nil {
		return nil, err
	}

	return attachment, nil
}

// AcceptAttachment advances the acceptance state: the first acceptance moves
// PROPOSED to ACCEPTED_BY_ONE_SIDE, the second to ACCEPTED_BY_BOTH_SIDES.
// Accepting a rejected attachment fails.
func (s *AttachmentService) AcceptAttachment(ctx context.Context, attachmentNo string) (*models.ContractAttachment, error) {
	attachment, err := s.load(ctx, attachmentNo)
	if err != nil {
		return nil, err
	}

	if attachment.Status == models.AttachmentStatusRejected {
		return nil, contracts.ErrAttachmentRejected
	}

	now := time.Now()
	switch attachment.Status {
	case models.AttachmentStatusProposed:
		attachment.Status = models.AttachmentStatusAcceptedByOneSide
	case models.AttachmentStatusAcceptedByOneSide:
		attachment.Status = models.AttachmentStatusAcceptedByBothSide
		attachment.AcceptedAt = &now
	}
	attachment.ChangeDate = &now

	if err := s.repo.Update(ctx, attachment); err != nil {
		return nil, err
	}

	return attachment, nil
}

// RejectAttachment marks the attachment REJECTED
func (s *AttachmentService) RejectAttachment(ctx context.Context, attachmentNo string) (*models.ContractAttachment, error) {
	attachment, err := s.load(ctx, attachmentNo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	attachment.Status = models.AttachmentStatusRejected
	attachment.RejectedAt = &now
	attachment.ChangeDate = &now

	if err := s.repo.Update(ctx, attachment); err != nil {
		return nil, err
	}

	return attachment, nil
}

// ListAttachments returns a contract's attachments
func (s *AttachmentService) ListAttachments(ctx context.Context, contractID int64) ([]*models.ContractAttachment, error) {
	return s.repo.ListByContract(ctx, contractID)
}

func (s *AttachmentService) load(ctx context.Context, attachmentNo string) (*models.ContractAttachment, error) {
	attachment, err := s.repo.FindByAttachmentNo(ctx, attachmentNo)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, contracts.ErrAttachmentNotFound
	}
	return attachment, nil
}
