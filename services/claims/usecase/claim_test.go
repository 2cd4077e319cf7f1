package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/claims"
	"github.com/fleetdesk/backoffice/services/claims/mocks"
)

func setupClaimTest(t *testing.T) (*gomock.Controller, *mocks.MockClaimRepo, *ClaimService) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockClaimRepo(ctrl)
	uc := NewClaimService(mockRepo).(*ClaimService)
	return ctrl, mockRepo, uc
}

func TestCreateClaim(t *testing.T) {
	ctrl, mockRepo, uc := setupClaimTest(t)
	defer ctrl.Finish()

	claim := &models.Claim{
		OwnerID:      7,
		TransitID:    42,
		TransitPrice: 1000,
		Reason:       "driver took a detour",
		// Status in the payload must be ignored
		Status: models.ClaimStatusRefunded,
	}

	mockRepo.EXPECT().
		Create(gomock.Any(), claim).
		Return(nil)

	err := uc.CreateClaim(context.Background(), claim)

	require.NoError(t, err)
	assert.Equal(t, models.ClaimStatusNew, claim.Status)
	assert.NotEmpty(t, claim.ClaimNo)
	assert.False(t, claim.CreationDate.IsZero())
	assert.Nil(t, claim.CompletionDate)
}

func TestCreateClaim_MissingReason(t *testing.T) {
	ctrl, _, uc := setupClaimTest(t)
	defer ctrl.Finish()

	err := uc.CreateClaim(context.Background(), &models.Claim{
		OwnerID:   7,
		TransitID: 42,
	})

	assert.Error(t, err)
}

func TestEscalateClaim(t *testing.T) {
	ctrl, mockRepo, uc := setupClaimTest(t)
	defer ctrl.Finish()

	stored := &models.Claim{ID: 1, OwnerID: 7, Status: models.ClaimStatusNew}

	mockRepo.EXPECT().GetClaim(gomock.Any(), int64(1)).Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	claim, err := uc.EscalateClaim(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.ClaimStatusEscalated, claim.Status)
	require.NotNil(t, claim.CompletionMode)
	assert.Equal(t, models.CompletionModeManual, *claim.CompletionMode)
	assert.NotNil(t, claim.CompletionDate)
	assert.NotNil(t, claim.ChangeDate)
}

func TestRefundClaim(t *testing.T) {
	ctrl, mockRepo, uc := setupClaimTest(t)
	defer ctrl.Finish()

	stored := &models.Claim{ID: 1, OwnerID: 7, Status: models.ClaimStatusInProcess}

	mockRepo.EXPECT().GetClaim(gomock.Any(), int64(1)).Return(stored, nil)
	mockRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	claim, err := uc.RefundClaim(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.ClaimStatusRefunded, claim.Status)
	require.NotNil(t, claim.CompletionMode)
	assert.Equal(t, models.CompletionModeAutomatic, *claim.CompletionMode)
}

func TestEscalateClaim_NotFound(t *testing.T) {
	ctrl, mockRepo, uc := setupClaimTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetClaim(gomock.Any(), int64(99)).Return(nil, nil)

	_, err := uc.EscalateClaim(context.Background(), 99)

	assert.ErrorIs(t, err, claims.ErrClaimNotFound)
}

func TestRefundClaim_AlreadyCompleted(t *testing.T) {
	ctrl, mockRepo, uc := setupClaimTest(t)
	defer ctrl.Finish()

	stored := &models.Claim{ID: 1, Status: models.ClaimStatusEscalated}

	mockRepo.EXPECT().GetClaim(gomock.Any(), int64(1)).Return(stored, nil)

	_, err := uc.RefundClaim(context.Background(), 1)

	assert.ErrorIs(t, err, claims.ErrClaimCompleted)
}
