package http

import (
	"net/http"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/http/handler"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/http/middleware"
	"github.com/felixcirebea/medicalsys-sub000/pkg/response"

	"github.com/gorilla/mux"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Availability  *handler.AvailabilityHandler
	Appointment   *handler.AppointmentHandler
	Vacation      *handler.VacationHandler
	Specialty     *handler.SpecialtyHandler
	Doctor        *handler.DoctorHandler
	Investigation *handler.InvestigationHandler
	WorkingHours  *handler.WorkingHoursHandler
	Holiday       *handler.HolidayHandler
	Clock         *handler.ClockHandler
	AuditLog      *handler.AuditLogHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	handlers Handlers,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	// API versioning
	api := prefixedRoutes{router: r.router, prefix: "/api/v1"}
	r.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Scheduling
	api.HandleFunc("/availability", h.Availability.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/appointments", h.Appointment.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", h.Appointment.GetAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/cancel", h.Appointment.CancelAppointment).Methods(http.MethodPost)
	api.HandleFunc("/vacations", h.Vacation.CreateVacation).Methods(http.MethodPost)
	api.HandleFunc("/vacations", h.Vacation.GetVacations).Methods(http.MethodGet)
	api.HandleFunc("/vacations/cancel", h.Vacation.CancelVacation).Methods(http.MethodPost)

	// Catalog
	api.HandleFunc("/specialties", h.Specialty.UpsertSpecialty).Methods(http.MethodPut)
	api.HandleFunc("/specialties", h.Specialty.GetAllSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{name}", h.Specialty.DeactivateSpecialty).Methods(http.MethodDelete)

	api.HandleFunc("/doctors", h.Doctor.UpsertDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors", h.Doctor.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{name}", h.Doctor.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{name}", h.Doctor.DeactivateDoctor).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{name}/working-hours", h.WorkingHours.GetWorkingHours).Methods(http.MethodGet)

	api.HandleFunc("/investigations", h.Investigation.UpsertInvestigation).Methods(http.MethodPut)
	api.HandleFunc("/investigations", h.Investigation.GetAllInvestigations).Methods(http.MethodGet)
	api.HandleFunc("/investigations/{name}", h.Investigation.DeactivateInvestigation).Methods(http.MethodDelete)

	api.HandleFunc("/working-hours", h.WorkingHours.UpsertWorkingHours).Methods(http.MethodPut)
	api.HandleFunc("/working-hours/{id:[0-9]+}", h.WorkingHours.RemoveWorkingHours).Methods(http.MethodDelete)

	api.HandleFunc("/holidays", h.Holiday.UpsertHoliday).Methods(http.MethodPut)
	api.HandleFunc("/holidays", h.Holiday.GetAllHolidays).Methods(http.MethodGet)
	api.HandleFunc("/holidays/{id:[0-9]+}", h.Holiday.RemoveHoliday).Methods(http.MethodDelete)

	// Operations
	api.HandleFunc("/clock", h.Clock.GetClock).Methods(http.MethodGet)
	api.HandleFunc("/clock", h.Clock.SetClock).Methods(http.MethodPost)
	api.HandleFunc("/audit-logs", h.AuditLog.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id:[0-9]+}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// prefixedRoutes registers routes on the root router under a shared prefix.
// A mux subrouter would lose a method mismatch as soon as a later route
// matched its prefix, answering 404 where 405 is due.
type prefixedRoutes struct {
	router *mux.Router
	prefix string
}

func (p prefixedRoutes) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	return p.router.HandleFunc(p.prefix+path, f)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}
