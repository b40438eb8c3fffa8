package ports

import (
	"context"
	"errors"

	"github.com/greenwheels/console-api/internal/core/domain"
)

// ErrUserNotFound is reported by UserDirectory when no record matches.
var ErrUserNotFound = errors.New("user not found")

// UserDirectory is the read-only mock user collection consulted at login.
type UserDirectory interface {
	// FindByEmail matches case-insensitively on the email address.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) []domain.User
}

// ListWindow selects a page of an already-filtered, already-sorted list.
type ListWindow struct {
	Offset int
	Limit  int
}

// FleetRepository exposes the mock fleet collections backing the console's
// tables. Filters with empty values match everything. The int return is the
// total count before windowing.
type FleetRepository interface {
	ListBikes(ctx context.Context, status domain.BikeStatus, w ListWindow) ([]domain.Bike, int)
	ListStations(ctx context.Context, w ListWindow) ([]domain.Station, int)
	ListReports(ctx context.Context, openOnly bool, w ListWindow) ([]domain.MaintenanceReport, int)
	ListReservations(ctx context.Context, status domain.ReservationStatus, w ListWindow) ([]domain.Reservation, int)
}
