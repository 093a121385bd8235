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

type WorkingHoursHandler struct {
	workingHoursUsecase usecase.WorkingHoursUsecase
	validator           *validator.CustomValidator
}

func NewWorkingHoursHandler(workingHoursUsecase usecase.WorkingHoursUsecase, validator *validator.CustomValidator) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		workingHoursUsecase: workingHoursUsecase,
		validator:           validator,
	}
}

func (h *WorkingHoursHandler) UpsertWorkingHours(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHours, err := h.workingHoursUsecase.UpsertWorkingHours(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to save working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours saved successfully", workingHours)
}

func (h *WorkingHoursHandler) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	workingHours, err := h.workingHoursUsecase.GetWorkingHours(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to get working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved successfully", workingHours)
}

func (h *WorkingHoursHandler) RemoveWorkingHours(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hours ID", nil)
		return
	}

	if err := h.workingHoursUsecase.RemoveWorkingHours(r.Context(), id); err != nil {
		writeError(w, err, "Failed to remove working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours removed successfully", nil)
}
