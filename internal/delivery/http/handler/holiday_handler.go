package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"
	"github.com/felixcirebea/medicalsys-sub000/pkg/response"
	"github.com/felixcirebea/medicalsys-sub000/pkg/validator"

	"github.com/gorilla/mux"
)

type HolidayHandler struct {
	holidayUsecase usecase.HolidayUsecase
	validator      *validator.CustomValidator
}

func NewHolidayHandler(holidayUsecase usecase.HolidayUsecase, validator *validator.CustomValidator) *HolidayHandler {
	return &HolidayHandler{
		holidayUsecase: holidayUsecase,
		validator:      validator,
	}
}

func (h *HolidayHandler) UpsertHoliday(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	holiday, err := h.holidayUsecase.UpsertHoliday(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to save holiday")
		return
	}

	response.Success(w, http.StatusOK, "Holiday saved successfully", holiday)
}

func (h *HolidayHandler) GetAllHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayUsecase.GetAllHolidays(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get holidays")
		return
	}

	response.Success(w, http.StatusOK, "Holidays retrieved successfully", holidays)
}

func (h *HolidayHandler) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid holiday ID", nil)
		return
	}

	if err := h.holidayUsecase.RemoveHoliday(r.Context(), id); err != nil {
		writeError(w, err, "Failed to remove holiday")
		return
	}

	response.Success(w, http.StatusOK, "Holiday removed successfully", nil)
}
