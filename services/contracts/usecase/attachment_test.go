package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/contracts"
	"github.com/fleetdesk/backoffice/services/contracts/mocks"
)

func setupAttachmentTest(t *testing.T) (*gomock.Controller, *mocks.MockAttachmentRepo, *AttachmentService) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAttachmentRepo(ctrl)
	uc := NewAttachmentService(mockRepo).(*AttachmentService)
	return ctrl, mockRepo, uc
}

func TestProposeAttachment(t *testing.T) {
	ctrl, mockRepo, uc := setupAttachmentTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	attachment, err := uc.ProposeAttachment(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, models.AttachmentStatusProposed, attachment.Status)
	assert.Equal(t, int64(5), attachment.ContractID)
	assert.NotEmpty(t, attachment.AttachmentNo)
}

func TestAcceptAttachment_FirstAcceptance(t *testing.T) {
	ctrl, mockRepo, uc := setupAttachmentTest(t)
	defer ctrl.Finish()

	stored := &models.ContractAttachment{
		ID:           1,
		AttachmentNo: "att-1",
		Status:       models.AttachmentStatusProposed,
	}

	mockRepo.EXPECT().FindByAttachmentNo(gomock.Any(), "att-1").Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	attachment, err := uc.AcceptAttachment(context.Background(), "att-1")

	require.NoError(t, err)
	assert.Equal(t, models.AttachmentStatusAcceptedByOneSide, attachment.Status)
	assert.Nil(t, attachment.AcceptedAt)
}

func TestAcceptAttachment_SecondAcceptance(t *testing.T) {
	ctrl, mockRepo, uc := setupAttachmentTest(t)
	defer ctrl.Finish()

	stored := &models.ContractAttachment{
		ID:           1,
		AttachmentNo: "att-1",
		Status:       models.AttachmentStatusAcceptedByOneSide,
	}

	mockRepo.EXPECT().FindByAttachmentNo(gomock.Any(), "att-1").Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	attachment, err := uc.AcceptAttachment(context.Background(), "att-1")

	require.NoError(t, err)
	assert.Equal(t, models.AttachmentStatusAcceptedByBothSide, attachment.Status)
	assert.NotNil(t, attachment.AcceptedAt)
}

func TestAcceptAttachment_Rejected(t *testing.T) {
	ctrl, mockRepo, uc := setupAttachmentTest(t)
	defer ctrl.Finish()

	stored := &models.ContractAttachment{
		ID:           1,
		AttachmentNo: "att-1",
		Status:       models.AttachmentStatusRejected,
	}

	mockRepo.EXPECT().FindByAttachmentNo(gomock.Any(), "att-1").Return(stored, nil)

	_, err := uc.AcceptAttachment(context.Background(), "att-1")

	assert.ErrorIs(t, err, contracts.ErrAttachmentRejected)
}

func TestRejectAttachment(t *testing.T) {
	ctrl, mockRepo, uc := setupAttachmentTest(t)
	defer ctrl.Finish()

	stored := &models.ContractAttachment{
		ID:           1,
		AttachmentNo: "att-1",
		Status:       models.AttachmentStatusProposed,
	}

	mockRepo.EXPECT().FindByAttachmentNo(gomock.Any(), "att-1").Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	attachment, err := uc.RejectAttachment(context.Background(), "att-1")

	require.NoError(t, err)
	assert.Equal(t, models.AttachmentStatusRejected, attachment.Status)
	assert.NotNil(t, attachment.RejectedAt)
}

func TestAcceptAttachment_NotFound(t *testing.T) {
	ctrl, mockRepo, uc := setupAttachmentTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().FindByAttachmentNo(gomock.Any(), "missing").Return(nil, nil)

	_, err := uc.AcceptAttachment(context.Background(), "missing")

	assert.ErrorIs(t, err, contracts.ErrAttachmentNotFound)
}
