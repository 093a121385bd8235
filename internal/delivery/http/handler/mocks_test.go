package handler

import (
	"context"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) GetAvailableHours(ctx context.Context, doctorName, investigationName string, date time.Time) ([]entity.TimeOfDay, error) {
	args := m.Called(ctx, doctorName, investigationName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TimeOfDay), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) BookAppointment(ctx context.Context, doctorName, investigationName, clientName string, date time.Time, start entity.TimeOfDay) (uuid.UUID, error) {
	args := m.Called(ctx, doctorName, investigationName, clientName, date, start)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID, clientName string) error {
	args := m.Called(ctx, id, clientName)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) CancelAllAppointmentsForDoctor(tx *gorm.DB, doctor *entity.Doctor) (usecase.BulkCancelSummary, error) {
	args := m.Called(tx, doctor)
	return args.Get(0).(usecase.BulkCancelSummary), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointments(ctx context.Context, doctorName string, date time.Time) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, doctorName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}

type MockVacationUsecase struct {
	mock.Mock
}

func (m *MockVacationUsecase) InsertVacation(ctx context.Context, doctorName string, start, end time.Time, vacationType entity.VacationType) (int, error) {
	args := m.Called(ctx, doctorName, start, end, vacationType)
	return args.Int(0), args.Error(1)
}

func (m *MockVacationUsecase) CancelVacation(ctx context.Context, doctorName string, start time.Time) (int, error) {
	args := m.Called(ctx, doctorName, start)
	return args.Int(0), args.Error(1)
}

func (m *MockVacationUsecase) GetVacations(ctx context.Context, doctorName string) (*dto.VacationListResponse, error) {
	args := m.Called(ctx, doctorName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VacationListResponse), args.Error(1)
}

func (m *MockVacationUsecase) AdvanceStatuses(ctx context.Context, today time.Time) (int64, int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) UpsertDoctor(ctx context.Context, req *dto.UpsertDoctorRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorResponse), args.Error(1)
}

func (m *MockDoctorUsecase) GetDoctor(ctx context.Context, name string) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorResponse), args.Error(1)
}

func (m *MockDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorListResponse), args.Error(1)
}

type MockCascadeUsecase struct {
	mock.Mock
}

func (m *MockCascadeUsecase) DeactivateDoctor(ctx context.Context, name string) (*dto.DeactivationResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeactivationResponse), args.Error(1)
}

func (m *MockCascadeUsecase) DeactivateSpecialty(ctx context.Context, name string) (*dto.DeactivationResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeactivationResponse), args.Error(1)
}

type MockClockUsecase struct {
	mock.Mock
}

func (m *MockClockUsecase) GetClock(ctx context.Context) *dto.ClockResponse {
	args := m.Called(ctx)
	return args.Get(0).(*dto.ClockResponse)
}

func (m *MockClockUsecase) SetOperationalDate(ctx context.Context, date time.Time) (*dto.ClockResponse, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClockResponse), args.Error(1)
}

func (m *MockClockUsecase) AdvanceToWallClock(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

type MockAuditLogUsecase struct {
	mock.Mock
}

func (m *MockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, filter repository.AuditLogFilter) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogListResponse), args.Error(1)
}

func (m *MockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogResponse), args.Error(1)
}
