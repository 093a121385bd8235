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

type DoctorHandler struct {
	doctorUsecase  usecase.DoctorUsecase
	cascadeUsecase usecase.CascadeUsecase
	validator      *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, cascadeUsecase usecase.CascadeUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase:  doctorUsecase,
		cascadeUsecase: cascadeUsecase,
		validator:      validator,
	}
}

func (h *DoctorHandler) UpsertDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpsertDoctor(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to save doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor saved successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// DeactivateDoctor retires the doctor and everything that depends on them.
func (h *DoctorHandler) DeactivateDoctor(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	result, err := h.cascadeUsecase.DeactivateDoctor(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to deactivate doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deactivated successfully", result)
}
