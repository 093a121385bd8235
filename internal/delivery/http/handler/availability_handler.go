package handler

import (
	"net/http"

	"github.com/felixcirebea/medicalsys-sub000/internal/converter"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"
	"github.com/felixcirebea/medicalsys-sub000/pkg/response"
	"github.com/felixcirebea/medicalsys-sub000/pkg/validator"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// GetAvailability handles GET /availability?doctor=&investigation=&date=
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.AvailabilityQuery{
		Doctor:        query.Get("doctor"),
		Investigation: query.Get("investigation"),
		Date:          query.Get("date"),
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

	slots, err := h.availabilityUsecase.GetAvailableHours(r.Context(), req.Doctor, req.Investigation, date)
	if err != nil {
		writeError(w, err, "Failed to compute availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", &dto.AvailabilityResponse{
		Doctor:        req.Doctor,
		Investigation: req.Investigation,
		Date:          req.Date,
		Slots:         converter.SlotsToStrings(slots),
	})
}
