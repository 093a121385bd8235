package handler

import (
	"encoding/json"
	"net/http"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"
	"github.com/felixcirebea/medicalsys-sub000/pkg/response"
	"github.com/felixcirebea/medicalsys-sub000/pkg/validator"
)

type VacationHandler struct {
	vacationUsecase usecase.VacationUsecase
	validator       *validator.CustomValidator
}

func NewVacationHandler(vacationUsecase usecase.VacationUsecase, validator *validator.CustomValidator) *VacationHandler {
	return &VacationHandler{
		vacationUsecase: vacationUsecase,
		validator:       validator,
	}
}

func (h *VacationHandler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	start, err := entity.ParseDate(req.StartDate)
	if err != nil {
		response.BadRequest(w, usecase.ErrInvalidDate.Error())
		return
	}
	end, err := entity.ParseDate(req.EndDate)
	if err != nil {
		response.BadRequest(w, usecase.ErrInvalidDate.Error())
		return
	}

	id, err := h.vacationUsecase.InsertVacation(r.Context(), req.DoctorName, start, end, entity.VacationType(req.Type))
	if err != nil {
		writeError(w, err, "Failed to plan vacation")
		return
	}

	response.Success(w, http.StatusCreated, "Vacation planned successfully", map[string]int{"id": id})
}

func (h *VacationHandler) CancelVacation(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	start, err := entity.ParseDate(req.StartDate)
	if err != nil {
		response.BadRequest(w, usecase.ErrInvalidDate.Error())
		return
	}

	id, err := h.vacationUsecase.CancelVacation(r.Context(), req.DoctorName, start)
	if err != nil {
		writeError(w, err, "Failed to cancel vacation")
		return
	}

	response.Success(w, http.StatusOK, "Vacation cancelled successfully", map[string]int{"id": id})
}

// GetVacations handles GET /vacations?doctor=
func (h *VacationHandler) GetVacations(w http.ResponseWriter, r *http.Request) {
	doctor := r.URL.Query().Get("doctor")
	if doctor == "" {
		response.ValidationError(w, map[string]string{"doctor": "doctor is required"})
		return
	}

	vacations, err := h.vacationUsecase.GetVacations(r.Context(), doctor)
	if err != nil {
		writeError(w, err, "Failed to get vacations")
		return
	}

	response.Success(w, http.StatusOK, "Vacations retrieved successfully", vacations)
}
