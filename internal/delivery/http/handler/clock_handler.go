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

type ClockHandler struct {
	clockUsecase usecase.ClockUsecase
	validator    *validator.CustomValidator
}

func NewClockHandler(clockUsecase usecase.ClockUsecase, validator *validator.CustomValidator) *ClockHandler {
	return &ClockHandler{
		clockUsecase: clockUsecase,
		validator:    validator,
	}
}

func (h *ClockHandler) GetClock(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Clock retrieved successfully", h.clockUsecase.GetClock(r.Context()))
}

func (h *ClockHandler) SetClock(w http.ResponseWriter, r *http.Request) {
	var req dto.SetClockRequest
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

	clock, err := h.clockUsecase.SetOperationalDate(r.Context(), date)
	if err != nil {
		writeError(w, err, "Failed to set operational date")
		return
	}

	response.Success(w, http.StatusOK, "Operational date updated successfully", clock)
}
