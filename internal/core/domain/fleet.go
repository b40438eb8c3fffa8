package domain

import "time"

// Fleet records backing the console's dashboards and tables. These are
// static mock collections; the console reads them, it never persists them.

type BikeStatus string

const (
	BikeAvailable   BikeStatus = "available"
	BikeInUse       BikeStatus = "in-use"
	BikeMaintenance BikeStatus = "maintenance"
	BikeRetired     BikeStatus = "retired"
)

type Bike struct {
	ID        string     `json:"id"`
	Model     string     `json:"model"`
	Status    BikeStatus `json:"status"`
	StationID string     `json:"station_id"`
	Battery   int        `json:"battery"`
	LastSeen  time.Time  `json:"last_seen"`
}

type Station struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Capacity int     `json:"capacity"`
	Docked   int     `json:"docked"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type ReportSeverity string

const (
	SeverityLow      ReportSeverity = "low"
	SeverityMedium   ReportSeverity = "medium"
	SeverityHigh     ReportSeverity = "high"
	SeverityCritical ReportSeverity = "critical"
)

type MaintenanceReport struct {
	ID         string         `json:"id"`
	BikeID     string         `json:"bike_id"`
	Severity   ReportSeverity `json:"severity"`
	Summary    string         `json:"summary"`
	Open       bool           `json:"open"`
	ReportedBy string         `json:"reported_by"`
	ReportedAt time.Time      `json:"reported_at"`
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	BikeID    string            `json:"bike_id"`
	StationID string            `json:"station_id"`
	Status    ReservationStatus `json:"status"`
	StartedAt time.Time         `json:"started_at"`
	EndedAt   *time.Time        `json:"ended_at,omitempty"`
}
