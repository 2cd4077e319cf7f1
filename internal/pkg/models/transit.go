package models

// FeeType determines how a driver's payable fee is derived from a transit price
type FeeType string

const (
	// FeeTypeFlat deducts a fixed minor-unit amount from the transit price
	FeeTypeFlat FeeType = "FLAT"
	// FeeTypePercentage takes a percentage cut of the transit price
	FeeTypePercentage FeeType = "PERCENTAGE"
)

// Transit is the fee-relevant projection of a completed transit.
// DriversFee is a memo: once set, fee calculation returns it unchanged.
type Transit struct {
	ID         int64  `json:"id" db:"id"`
	DriverID   string `json:"driver_id" db:"driver_id"`
	Price      int64  `json:"price" db:"price"`
	DriversFee *int64 `json:"drivers_fee" db:"drivers_fee"`
}

// DriverFee is a driver's fee policy; one row per driver.
// Amount is a minor-unit deduction for FLAT policies and a percentage for
// PERCENTAGE policies. Min, when set, is the minimum payable fee.
type DriverFee struct {
	ID       int64   `json:"id" db:"id"`
	DriverID string  `json:"driver_id" db:"driver_id"`
	FeeType  FeeType `json:"fee_type" db:"fee_type"`
	Amount   int64   `json:"amount" db:"amount"`
	Min      *int64  `json:"min" db:"min"`
}

// FeeCalculatedEvent is published after a fresh fee computation
type FeeCalculatedEvent struct {
	TransitID int64  `json:"transit_id"`
	DriverID  string `json:"driver_id"`
	Fee       int64  `json:"fee"`
}
