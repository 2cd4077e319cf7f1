package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/internal/pkg/money"
)

func TestResolveRepair_CoversEverythingButPaint(t *testing.T) {
	uc := NewRepairService()

	result, err := uc.ResolveRepair(context.Background(), models.RepairRequest{
		PartyID:       12,
		PartsToRepair: []models.Part{models.PartEngine, models.PartPaint, models.PartGearbox},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), result.HandlingPartyID)
	assert.Equal(t, 0, result.TotalCost.Cmp(money.Zero))
	assert.ElementsMatch(t, []models.Part{models.PartEngine, models.PartGearbox}, result.AcceptedParts)
}

func TestResolveRepair_DeduplicatesParts(t *testing.T) {
	uc := NewRepairService()

	result, err := uc.ResolveRepair(context.Background(), models.RepairRequest{
		PartyID:       12,
		PartsToRepair: []models.Part{models.PartEngine, models.PartEngine},
	})

	require.NoError(t, err)
	assert.Equal(t, []models.Part{models.PartEngine}, result.AcceptedParts)
}

func TestResolveRepair_NoParts(t *testing.T) {
	uc := NewRepairService()

	_, err := uc.ResolveRepair(context.Background(), models.RepairRequest{PartyID: 12})

	assert.Error(t, err)
}
