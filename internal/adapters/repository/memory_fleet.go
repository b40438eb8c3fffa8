package repository

import (
	"context"
	"sort"
	"time"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
)

// MemoryFleetRepository serves the mock bike, station, report, and
// reservation collections backing the console's tables.
type MemoryFleetRepository struct {
	bikes        []domain.Bike
	stations     []domain.Station
	reports      []domain.MaintenanceReport
	reservations []domain.Reservation
}

var _ ports.FleetRepository = (*MemoryFleetRepository)(nil)

func NewMemoryFleetRepository() *MemoryFleetRepository {
	r := &MemoryFleetRepository{
		bikes:        defaultBikes(),
		stations:     defaultStations(),
		reports:      defaultReports(),
		reservations: defaultReservations(),
	}
	sort.Slice(r.bikes, func(i, j int) bool { return r.bikes[i].ID < r.bikes[j].ID })
	sort.Slice(r.stations, func(i, j int) bool { return r.stations[i].ID < r.stations[j].ID })
	sort.Slice(r.reports, func(i, j int) bool { return r.reports[i].ReportedAt.After(r.reports[j].ReportedAt) })
	sort.Slice(r.reservations, func(i, j int) bool { return r.reservations[i].StartedAt.After(r.reservations[j].StartedAt) })
	return r
}

func (r *MemoryFleetRepository) ListBikes(_ context.Context, status domain.BikeStatus, w ports.ListWindow) ([]domain.Bike, int) {
	filtered := make([]domain.Bike, 0, len(r.bikes))
	for _, b := range r.bikes {
		if status == "" || b.Status == status {
			filtered = append(filtered, b)
		}
	}
	total := len(filtered)
	return window(filtered, w), total
}

func (r *MemoryFleetRepository) ListStations(_ context.Context, w ports.ListWindow) ([]domain.Station, int) {
	return window(r.stations, w), len(r.stations)
}

func (r *MemoryFleetRepository) ListReports(_ context.Context, openOnly bool, w ports.ListWindow) ([]domain.MaintenanceReport, int) {
	filtered := make([]domain.MaintenanceReport, 0, len(r.reports))
	for _, rep := range r.reports {
		if !openOnly || rep.Open {
			filtered = append(filtered, rep)
		}
	}
	total := len(filtered)
	return window(filtered, w), total
}

func (r *MemoryFleetRepository) ListReservations(_ context.Context, status domain.ReservationStatus, w ports.ListWindow) ([]domain.Reservation, int) {
	filtered := make([]domain.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		if status == "" || res.Status == status {
			filtered = append(filtered, res)
		}
	}
	total := len(filtered)
	return window(filtered, w), total
}

// window clips a page out of a filtered list, clamping out-of-range
// offsets to an empty page.
func window[T any](items []T, w ports.ListWindow) []T {
	if w.Limit <= 0 {
		w.Limit = len(items)
	}
	if w.Offset < 0 {
		w.Offset = 0
	}
	if w.Offset >= len(items) {
		return []T{}
	}
	end := w.Offset + w.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-w.Offset)
	copy(out, items[w.Offset:end])
	return out
}

func defaultBikes() []domain.Bike {
	seen := time.Date(2026, time.August, 28, 17, 30, 0, 0, time.UTC)
	return []domain.Bike{
		{ID: "bike-0001", Model: "GW City One", Status: domain.BikeAvailable, StationID: "st-01", Battery: 88, LastSeen: seen},
		{ID: "bike-0002", Model: "GW City One", Status: domain.BikeInUse, StationID: "", Battery: 64, LastSeen: seen.Add(-25 * time.Minute)},
		{ID: "bike-0003", Model: "GW Cargo", Status: domain.BikeMaintenance, StationID: "st-02", Battery: 12, LastSeen: seen.Add(-3 * time.Hour)},
		{ID: "bike-0004", Model: "GW City Two", Status: domain.BikeAvailable, StationID: "st-01", Battery: 97, LastSeen: seen},
		{ID: "bike-0005", Model: "GW City Two", Status: domain.BikeAvailable, StationID: "st-03", Battery: 71, LastSeen: seen.Add(-10 * time.Minute)},
		{ID: "bike-0006", Model: "GW Cargo", Status: domain.BikeInUse, StationID: "", Battery: 43, LastSeen: seen.Add(-55 * time.Minute)},
		{ID: "bike-0007", Model: "GW City One", Status: domain.BikeRetired, StationID: "st-04", Battery: 0, LastSeen: seen.AddDate(0, -1, 0)},
		{ID: "bike-0008", Model: "GW City Two", Status: domain.BikeMaintenance, StationID: "st-02", Battery: 29, LastSeen: seen.Add(-6 * time.Hour)},
		{ID: "bike-0009", Model: "GW City One", Status: domain.BikeAvailable, StationID: "st-04", Battery: 55, LastSeen: seen.Add(-2 * time.Minute)},
		{ID: "bike-0010", Model: "GW Cargo", Status: domain.BikeAvailable, StationID: "st-03", Battery: 81, LastSeen: seen.Add(-40 * time.Minute)},
	}
}

func defaultStations() []domain.Station {
	return []domain.Station{
		{ID: "st-01", Name: "Central Square", Address: "1 Market Street", Capacity: 24, Docked: 14, Lat: 52.3702, Lng: 4.8952},
		{ID: "st-02", Name: "Riverside Depot", Address: "88 Quay Road", Capacity: 16, Docked: 9, Lat: 52.3621, Lng: 4.9120},
		{ID: "st-03", Name: "University Gate", Address: "5 Campus Lane", Capacity: 32, Docked: 27, Lat: 52.3555, Lng: 4.9553},
		{ID: "st-04", Name: "North Terminal", Address: "210 Harbour Way", Capacity: 20, Docked: 4, Lat: 52.4012, Lng: 4.8880},
	}
}

func defaultReports() []domain.MaintenanceReport {
	reported := time.Date(2026, time.August, 20, 8, 15, 0, 0, time.UTC)
	return []domain.MaintenanceReport{
		{ID: "rep-101", BikeID: "bike-0003", Severity: domain.SeverityHigh, Summary: "Rear brake unresponsive", Open: true, ReportedBy: "usr-004", ReportedAt: reported},
		{ID: "rep-102", BikeID: "bike-0008", Severity: domain.SeverityMedium, Summary: "Battery drains below 30% overnight", Open: true, ReportedBy: "usr-003", ReportedAt: reported.AddDate(0, 0, 2)},
		{ID: "rep-103", BikeID: "bike-0007", Severity: domain.SeverityCritical, Summary: "Frame crack at seat tube", Open: false, ReportedBy: "usr-004", ReportedAt: reported.AddDate(0, -2, 0)},
		{ID: "rep-104", BikeID: "bike-0001", Severity: domain.SeverityLow, Summary: "Bell missing", Open: true, ReportedBy: "usr-005", ReportedAt: reported.AddDate(0, 0, 5)},
		{ID: "rep-105", BikeID: "bike-0006", Severity: domain.SeverityMedium, Summary: "Cargo latch sticking", Open: false, ReportedBy: "usr-003", ReportedAt: reported.AddDate(0, 0, -7)},
	}
}

func defaultReservations() []domain.Reservation {
	started := time.Date(2026, time.August, 27, 7, 45, 0, 0, time.UTC)
	ended := started.Add(35 * time.Minute)
	return []domain.Reservation{
		{ID: "res-9001", UserID: "usr-007", BikeID: "bike-0002", StationID: "st-01", Status: domain.ReservationActive, StartedAt: started.AddDate(0, 0, 1)},
		{ID: "res-9002", UserID: "usr-008", BikeID: "bike-0006", StationID: "st-03", Status: domain.ReservationActive, StartedAt: started.AddDate(0, 0, 1).Add(2 * time.Hour)},
		{ID: "res-9003", UserID: "usr-007", BikeID: "bike-0004", StationID: "st-01", Status: domain.ReservationCompleted, StartedAt: started, EndedAt: &ended},
		{ID: "res-9004", UserID: "usr-008", BikeID: "bike-0005", StationID: "st-03", Status: domain.ReservationCancelled, StartedAt: started.AddDate(0, 0, -1)},
	}
}
