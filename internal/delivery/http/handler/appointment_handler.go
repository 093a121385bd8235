package handler

import (
	"encoding/json"
	"net/http"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"
	"github.com/felixcirebea/medicalsys-sub000/pkg/response"
	"github.com/felixcirebea/medicalsys-sub000/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		response.BadRequest(w, usecase.ErrInvalidDate.Error())
		return
	}
	start, err := entity.ParseTimeOfDay(req.StartTime)
	if err != nil {
		response.BadRequest(w, usecase.ErrInvalidTimeFormat.Error())
		return
	}

	id, err := h.appointmentUsecase.BookAppointment(r.Context(), req.DoctorName, req.InvestigationName, req.ClientName, date, start)
	if err != nil {
		writeError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", map[string]uuid.UUID{"id": id})
}

// GetAppointments handles GET /appointments?doctor=&date=
func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.AppointmentQuery{
		Doctor: query.Get("doctor"),
		Date:   query.Get("date"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		response.BadRequest(w, usecase.ErrInvalidDate.Error())
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointments(r.Context(), req.Doctor, date)
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), id, req.ClientName); err != nil {
		writeError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
