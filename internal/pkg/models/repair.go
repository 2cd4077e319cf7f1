package models

import "github.com/fleetdesk/backoffice/internal/pkg/money"

// Part identifies a repairable vehicle part
type Part string

const (
	PartEngine      Part = "ENGINE"
	PartGearbox     Part = "GEARBOX"
	PartSuspension  Part = "SUSPENSION"
	PartPaint       Part = "PAINT"
	PartElectronics Part = "ELECTRONICS"
)

// RepairRequest asks a repairing party to cover a set of parts
type RepairRequest struct {
	PartyID       int64  `json:"party_id"`
	PartsToRepair []Part `json:"parts_to_repair"`
}

// RepairingResult is the outcome of handling a repair request: who handled
// it, what it costs the requester, and which parts are covered
type RepairingResult struct {
	HandlingPartyID int64
	TotalCost       money.Money
	AcceptedParts   []Part
}
