package models

import (
	"time"

	"github.com/fleetdesk/backoffice/internal/pkg/money"
)

// ClaimStatus is the lifecycle state of a customer claim
type ClaimStatus string

const (
	ClaimStatusDraft     ClaimStatus = "DRAFT"
	ClaimStatusNew       ClaimStatus = "NEW"
	ClaimStatusInProcess ClaimStatus = "IN_PROCESS"
	ClaimStatusRefunded  ClaimStatus = "REFUNDED"
	ClaimStatusEscalated ClaimStatus = "ESCALATED"
	ClaimStatusRejected  ClaimStatus = "REJECTED"
)

// CompletionMode records whether a claim was resolved by hand or automatically
type CompletionMode string

const (
	CompletionModeManual    CompletionMode = "MANUAL"
	CompletionModeAutomatic CompletionMode = "AUTOMATIC"
)

// Claim is a customer complaint about a transit. The transit linkage is a
// plain foreign-key id; the transit price is denormalized in minor units at
// claim creation time.
type Claim struct {
	ID                  int64           `json:"id" db:"id"`
	ClaimNo             string          `json:"claim_no" db:"claim_no"`
	OwnerID             int64           `json:"owner_id" db:"owner_id"`
	TransitID           int64           `json:"transit_id" db:"transit_id"`
	TransitPrice        int64           `json:"transit_price" db:"transit_price"`
	Reason              string          `json:"reason" db:"reason"`
	IncidentDescription string          `json:"incident_description" db:"incident_description"`
	Status              ClaimStatus     `json:"status" db:"status"`
	CompletionMode      *CompletionMode `json:"completion_mode" db:"completion_mode"`
	CreationDate        time.Time       `json:"creation_date" db:"creation_date"`
	CompletionDate      *time.Time      `json:"completion_date" db:"completion_date"`
	ChangeDate          *time.Time      `json:"change_date" db:"change_date"`
}

// Escalate moves the claim to ESCALATED for manual handling
func (c *Claim) Escalate() {
	now := time.Now()
	mode := CompletionModeManual
	c.Status = ClaimStatusEscalated
	c.CompletionDate = &now
	c.ChangeDate = &now
	c.CompletionMode = &mode
}

// Refund closes the claim as automatically refunded
func (c *Claim) Refund() {
	now := time.Now()
	mode := CompletionModeAutomatic
	c.Status = ClaimStatusRefunded
	c.CompletionDate = &now
	c.ChangeDate = &now
	c.CompletionMode = &mode
}

// GetTransitPrice returns the denormalized transit price as Money
func (c *Claim) GetTransitPrice() money.Money {
	return money.New(c.TransitPrice)
}

// SetTransitPrice stores the transit price from a Money value
func (c *Claim) SetTransitPrice(price money.Money) {
	c.TransitPrice = price.ToInt()
}
