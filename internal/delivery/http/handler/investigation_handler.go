package handler

import (
	"encoding/json"
	"net/http"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"
	"github.com/felixcirebea/medicalsys-sub000/pkg/response"
	"github.com/felixcirebea/medicalsys-sub000/pkg/validator"

	"github.com/gorilla/mux"
)

type InvestigationHandler struct {
	investigationUsecase usecase.InvestigationUsecase
	validator            *validator.CustomValidator
}

func NewInvestigationHandler(investigationUsecase usecase.InvestigationUsecase, validator *validator.CustomValidator) *InvestigationHandler {
	return &InvestigationHandler{
		investigationUsecase: investigationUsecase,
		validator:            validator,
	}
}

func (h *InvestigationHandler) UpsertInvestigation(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertInvestigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	investigation, err := h.investigationUsecase.UpsertInvestigation(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to save investigation")
		return
	}

	response.Success(w, http.StatusOK, "Investigation saved successfully", investigation)
}

func (h *InvestigationHandler) GetAllInvestigations(w http.ResponseWriter, r *http.Request) {
	investigations, err := h.investigationUsecase.GetAllInvestigations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get investigations")
		return
	}

	response.Success(w, http.StatusOK, "Investigations retrieved successfully", investigations)
}

func (h *InvestigationHandler) DeactivateInvestigation(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.investigationUsecase.DeactivateInvestigation(r.Context(), name); err != nil {
		writeError(w, err, "Failed to deactivate investigation")
		return
	}

	response.Success(w, http.StatusOK, "Investigation deactivated successfully", nil)
}
