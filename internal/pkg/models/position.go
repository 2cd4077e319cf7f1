package models

import "time"

// DriverPosition is a single raw GPS sample recorded for a driver.
// Samples are immutable once stored; ordering is by SeenAt with the
// serial ID breaking ties, so same-instant recordings keep insertion order.
type DriverPosition struct {
	ID        int64     `json:"id" db:"id"`
	DriverID  string    `json:"driver_id" db:"driver_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Geohash   string    `json:"geohash" db:"geohash"`
	SeenAt    time.Time `json:"seen_at" db:"seen_at"`
}

// PositionAddedEvent is published after a position sample is persisted
type PositionAddedEvent struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash"`
	SeenAt    time.Time `json:"seen_at"`
}

// DriverAttribute is a free-form name/value pair attached to a driver,
// surfaced by the driver report
type DriverAttribute struct {
	ID       int64  `json:"id" db:"id"`
	DriverID string `json:"driver_id" db:"driver_id"`
	Name     string `json:"name" db:"name"`
	Value    string `json:"value" db:"value"`
}
