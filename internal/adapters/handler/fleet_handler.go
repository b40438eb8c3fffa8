package handler

import (
	"net/http"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
)

// FleetHandler renders the console's dashboards and tables from the mock
// collections. Everything here is read-only presentation; access control
// happened in the guard before these handlers run.
type FleetHandler struct {
	fleet ports.FleetRepository
	users ports.UserDirectory
}

func NewFleetHandler(fleet ports.FleetRepository, users ports.UserDirectory) *FleetHandler {
	return &FleetHandler{fleet: fleet, users: users}
}

type listResponse struct {
	Data any      `json:"data"`
	Meta pageMeta `json:"meta"`
}

// Home is the root view every authenticated role can reach.
func (h *FleetHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the GreenWheels console"})
}

// AdminDashboard summarizes the whole operation for admins.
func (h *FleetHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	everything := ports.ListWindow{}

	bikes, totalBikes := h.fleet.ListBikes(ctx, "", everything)
	byStatus := map[domain.BikeStatus]int{}
	for _, b := range bikes {
		byStatus[b.Status]++
	}
	_, totalStations := h.fleet.ListStations(ctx, everything)
	_, openReports := h.fleet.ListReports(ctx, true, everything)
	_, activeReservations := h.fleet.ListReservations(ctx, domain.ReservationActive, everything)

	writeJSON(w, http.StatusOK, map[string]any{
		"bikes_total":         totalBikes,
		"bikes_by_status":     byStatus,
		"stations_total":      totalStations,
		"open_reports":        openReports,
		"active_reservations": activeReservations,
		"users_total":         len(h.users.List(ctx)),
	})
}

// StaffPanel shows the day-to-day numbers staff work from.
func (h *FleetHandler) StaffPanel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	available, _ := h.fleet.ListBikes(ctx, domain.BikeAvailable, ports.ListWindow{})
	active, totalActive := h.fleet.ListReservations(ctx, domain.ReservationActive, ports.ListWindow{})

	writeJSON(w, http.StatusOK, map[string]any{
		"bikes_available":     len(available),
		"active_reservations": totalActive,
		"reservations":        active,
	})
}

// StationDashboard summarizes dock occupancy per station.
func (h *FleetHandler) StationDashboard(w http.ResponseWriter, r *http.Request) {
	stations, _ := h.fleet.ListStations(r.Context(), ports.ListWindow{})
	docked, capacity := 0, 0
	for _, s := range stations {
		docked += s.Docked
		capacity += s.Capacity
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stations": stations,
		"docked":   docked,
		"capacity": capacity,
	})
}

// MaintenanceDashboard groups open reports by severity.
func (h *FleetHandler) MaintenanceDashboard(w http.ResponseWriter, r *http.Request) {
	reports, total := h.fleet.ListReports(r.Context(), true, ports.ListWindow{})
	bySeverity := map[domain.ReportSeverity]int{}
	for _, rep := range reports {
		bySeverity[rep.Severity]++
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"open_total":  total,
		"by_severity": bySeverity,
		"reports":     reports,
	})
}

// Users lists the directory for the admin user table.
func (h *FleetHandler) Users(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)
	all := h.users.List(r.Context())
	total := len(all)

	win := page.window()
	if win.Offset >= total {
		all = []domain.User{}
	} else {
		end := win.Offset + win.Limit
		if end > total {
			end = total
		}
		all = all[win.Offset:end]
	}
	writeJSON(w, http.StatusOK, listResponse{Data: all, Meta: metaFor(page, total)})
}

// Bikes lists the fleet, optionally filtered by ?status.
func (h *FleetHandler) Bikes(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)
	status := domain.BikeStatus(r.URL.Query().Get("status"))
	bikes, total := h.fleet.ListBikes(r.Context(), status, page.window())
	writeJSON(w, http.StatusOK, listResponse{Data: bikes, Meta: metaFor(page, total)})
}

func (h *FleetHandler) Stations(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)
	stations, total := h.fleet.ListStations(r.Context(), page.window())
	writeJSON(w, http.StatusOK, listResponse{Data: stations, Meta: metaFor(page, total)})
}

// Reports lists maintenance reports; ?open=true narrows to open ones.
func (h *FleetHandler) Reports(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)
	openOnly := r.URL.Query().Get("open") == "true"
	reports, total := h.fleet.ListReports(r.Context(), openOnly, page.window())
	writeJSON(w, http.StatusOK, listResponse{Data: reports, Meta: metaFor(page, total)})
}

// Reservations lists reservations, optionally filtered by ?status.
func (h *FleetHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)
	status := domain.ReservationStatus(r.URL.Query().Get("status"))
	reservations, total := h.fleet.ListReservations(r.Context(), status, page.window())
	writeJSON(w, http.StatusOK, listResponse{Data: reservations, Meta: metaFor(page, total)})
}
