package usecase

import (
	"context"

	"github.com/felixcirebea/medicalsys-sub000/internal/converter"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"
	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrHolidayNotFound = apperror.NotFound("holiday not found")

type HolidayUsecase interface {
	UpsertHoliday(ctx context.Context, req *dto.UpsertHolidayRequest) (*dto.HolidayResponse, error)
	GetAllHolidays(ctx context.Context) (*dto.HolidayListResponse, error)
	RemoveHoliday(ctx context.Context, id int) error
}

type holidayUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	holidayRepo repository.HolidayRepository
}

func NewHolidayUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	holidayRepo repository.HolidayRepository,
) HolidayUsecase {
	return &holidayUsecase{
		db:          db,
		log:         log,
		holidayRepo: holidayRepo,
	}
}

func (u *holidayUsecase) UpsertHoliday(ctx context.Context, req *dto.UpsertHolidayRequest) (*dto.HolidayResponse, error) {
	start, err := entity.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := entity.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	db := u.db.WithContext(ctx)

	var holiday *entity.Holiday
	if req.ID == nil {
		holiday = &entity.Holiday{State: entity.RecordStateActive}
	} else {
		holiday, err = u.holidayRepo.FindByID(db, *req.ID)
		if err != nil {
			u.log.Warnf("Failed to find holiday %d: %+v", *req.ID, err)
			return nil, err
		}
		if holiday == nil || !holiday.IsActive() {
			return nil, ErrHolidayNotFound
		}
	}

	holiday.StartDate = start
	holiday.EndDate = end
	holiday.Description = req.Description

	if holiday.ID == 0 {
		err = u.holidayRepo.Create(db, holiday)
	} else {
		err = u.holidayRepo.Update(db, holiday)
	}
	if err != nil {
		u.log.Warnf("Failed to save holiday: %+v", err)
		return nil, err
	}

	return converter.HolidayToResponse(holiday), nil
}

func (u *holidayUsecase) GetAllHolidays(ctx context.Context) (*dto.HolidayListResponse, error) {
	holidays, err := u.holidayRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find holidays: %+v", err)
		return nil, err
	}

	return &dto.HolidayListResponse{
		Holidays: converter.HolidaysToResponses(holidays),
		Total:    len(holidays),
	}, nil
}

func (u *holidayUsecase) RemoveHoliday(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	holiday, err := u.holidayRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find holiday %d: %+v", id, err)
		return err
	}
	if holiday == nil || !holiday.IsActive() {
		return ErrHolidayNotFound
	}

	holiday.Remove()
	if err := u.holidayRepo.Update(db, holiday); err != nil {
		u.log.Warnf("Failed to remove holiday %d: %+v", id, err)
		return err
	}

	return nil
}
