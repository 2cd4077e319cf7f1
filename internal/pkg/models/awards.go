package models

import "time"

// AwardsAccount is a client's miles account
type AwardsAccount struct {
	ID           int64     `json:"id" db:"id"`
	ClientID     int64     `json:"client_id" db:"client_id"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	Transactions int       `json:"transactions" db:"transactions"`
	Date         time.Time `json:"date" db:"date"`
}

// AwardedMiles is a single miles grant on an awards account. Miles may
// carry an expiry; special miles never expire.
type AwardedMiles struct {
	ID        int64      `json:"id" db:"id"`
	AccountID int64      `json:"account_id" db:"account_id"`
	ClientID  int64      `json:"client_id" db:"client_id"`
	TransitID *int64     `json:"transit_id" db:"transit_id"`
	Miles     int        `json:"miles" db:"miles"`
	Date      time.Time  `json:"date" db:"date"`
	ExpiresAt *time.Time `json:"expires_at" db:"expires_at"`
	Special   bool       `json:"special" db:"special"`
}
