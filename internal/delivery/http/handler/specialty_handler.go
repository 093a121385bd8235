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

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	cascadeUsecase   usecase.CascadeUsecase
	validator        *validator.CustomValidator
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, cascadeUsecase usecase.CascadeUsecase, validator *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		cascadeUsecase:   cascadeUsecase,
		validator:        validator,
	}
}

func (h *SpecialtyHandler) UpsertSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.UpsertSpecialty(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to save specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty saved successfully", specialty)
}

func (h *SpecialtyHandler) GetAllSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.specialtyUsecase.GetAllSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// DeactivateSpecialty retires the specialty together with its doctors and investigations.
func (h *SpecialtyHandler) DeactivateSpecialty(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	result, err := h.cascadeUsecase.DeactivateSpecialty(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to deactivate specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty deactivated successfully", result)
}
