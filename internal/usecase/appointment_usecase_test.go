package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/service"
	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	usecase           AppointmentUsecase
	sqlMock           sqlmock.Sqlmock
	locker            *MockDoctorLocker
	doctorRepo        *MockDoctorRepository
	investigationRepo *MockInvestigationRepository
	appointmentRepo   *MockAppointmentRepository
	auditService      *MockAuditService
	unlocked          int
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	db, sqlMock := newMockDB(t)
	f := &appointmentFixture{
		sqlMock:           sqlMock,
		locker:            new(MockDoctorLocker),
		doctorRepo:        new(MockDoctorRepository),
		investigationRepo: new(MockInvestigationRepository),
		appointmentRepo:   new(MockAppointmentRepository),
		auditService:      new(MockAuditService),
	}
	f.usecase = NewAppointmentUsecase(db, quietLogger(), fixedClock{today: operationalToday}, f.locker,
		f.doctorRepo, f.investigationRepo, f.appointmentRepo, f.auditService)
	return f
}

func (f *appointmentFixture) expectLookups() {
	f.doctorRepo.On("FindActiveByName", mock.Anything, "Dr. Ionescu").Return(cardiologist(), nil)
	f.investigationRepo.On("FindActiveByName", mock.Anything, "ECG").Return(ecg(), nil)
	f.locker.On("Lock", mock.Anything, 4).Return(func() { f.unlocked++ }, nil)
	f.doctorRepo.On("FindByID", mock.Anything, 4).Return(cardiologist(), nil)
}

func TestAppointmentUsecase_BookAppointment(t *testing.T) {
	t.Run("books a free slot at the computed price", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.expectLookups()
		f.sqlMock.ExpectBegin()
		f.appointmentRepo.On("ExistsOverlap", mock.Anything, 4, nextMonday, hm(8, 0), hm(8, 30)).Return(false, nil)
		f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
			return a.Status == entity.AppointmentStatusNew &&
				a.ClientName == "Ana Pop" &&
				a.EndTime == hm(8, 30) &&
				a.Price.Equal(decimal.NewFromInt(250))
		})).Return(nil)
		f.auditService.On("LogCreate", mock.Anything, entity.AuditActionAppointmentBook, "appointment", mock.Anything, mock.Anything).Return(nil)
		f.sqlMock.ExpectCommit()

		id, err := f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ana Pop", nextMonday, hm(8, 0))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, 1, f.unlocked)
		f.appointmentRepo.AssertExpectations(t)
		f.auditService.AssertExpectations(t)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("booking the same slot twice fails with a concurrency error", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.expectLookups()
		f.appointmentRepo.On("ExistsOverlap", mock.Anything, 4, nextMonday, hm(8, 0), hm(8, 30)).Return(false, nil).Once()
		f.appointmentRepo.On("ExistsOverlap", mock.Anything, 4, nextMonday, hm(8, 0), hm(8, 30)).Return(true, nil).Once()
		f.appointmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ana Pop", nextMonday, hm(8, 0))
		require.NoError(t, err)

		_, err = f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ion Popa", nextMonday, hm(8, 0))

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.True(t, apperror.IsConcurrency(err))
		assert.Equal(t, 2, f.unlocked)
		f.appointmentRepo.AssertNumberOfCalls(t, "Create", 1)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("past date is rejected before the doctor is resolved", func(t *testing.T) {
		f := newAppointmentFixture(t)

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Nobody", "ECG", "Ana Pop", date(2026, 10, 1), hm(8, 0))

		assert.ErrorIs(t, err, ErrPastDate)
		assert.Equal(t, apperror.KindConcurrency, apperror.KindOf(err))
		f.doctorRepo.AssertNotCalled(t, "FindActiveByName", mock.Anything, mock.Anything)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.doctorRepo.On("FindActiveByName", mock.Anything, "Dr. Who").Return(nil, nil)

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Who", "ECG", "Ana Pop", nextMonday, hm(8, 0))

		assert.ErrorIs(t, err, ErrDoctorNotFound)
		f.locker.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything)
	})

	t.Run("doctor retired while waiting for the lock", func(t *testing.T) {
		f := newAppointmentFixture(t)
		retired := cardiologist()
		retired.State = entity.RecordStateRemoved
		f.doctorRepo.On("FindActiveByName", mock.Anything, "Dr. Ionescu").Return(cardiologist(), nil)
		f.investigationRepo.On("FindActiveByName", mock.Anything, "ECG").Return(ecg(), nil)
		f.locker.On("Lock", mock.Anything, 4).Return(func() { f.unlocked++ }, nil)
		f.sqlMock.ExpectBegin()
		f.doctorRepo.On("FindByID", mock.Anything, 4).Return(retired, nil)
		f.sqlMock.ExpectRollback()

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ana Pop", nextMonday, hm(8, 0))

		assert.ErrorIs(t, err, ErrDoctorNotFound)
		assert.Equal(t, 1, f.unlocked)
		f.appointmentRepo.AssertNotCalled(t, "ExistsOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("appointment ending exactly at midnight", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.expectLookups()
		f.sqlMock.ExpectBegin()
		f.appointmentRepo.On("ExistsOverlap", mock.Anything, 4, nextMonday, hm(23, 30), hm(24, 0)).Return(false, nil)
		f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
			return a.EndTime == hm(24, 0)
		})).Return(nil)
		f.auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.sqlMock.ExpectCommit()

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ana Pop", nextMonday, hm(23, 30))

		require.NoError(t, err)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("appointment running past midnight", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.doctorRepo.On("FindActiveByName", mock.Anything, "Dr. Ionescu").Return(cardiologist(), nil)
		f.investigationRepo.On("FindActiveByName", mock.Anything, "ECG").Return(ecg(), nil)

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ana Pop", nextMonday, hm(23, 45))

		assert.ErrorIs(t, err, ErrPastMidnight)
	})

	t.Run("exclusion constraint violation maps to slot not available", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.expectLookups()
		f.sqlMock.ExpectBegin()
		f.appointmentRepo.On("ExistsOverlap", mock.Anything, 4, nextMonday, hm(8, 0), hm(8, 30)).Return(false, nil)
		f.appointmentRepo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23P01"})
		f.sqlMock.ExpectRollback()

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ana Pop", nextMonday, hm(8, 0))

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		f.auditService.AssertNotCalled(t, "LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("busy lock maps to a concurrency error", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.doctorRepo.On("FindActiveByName", mock.Anything, "Dr. Ionescu").Return(cardiologist(), nil)
		f.investigationRepo.On("FindActiveByName", mock.Anything, "ECG").Return(ecg(), nil)
		f.locker.On("Lock", mock.Anything, 4).Return(nil, service.ErrDoctorBusy)

		_, err := f.usecase.BookAppointment(context.Background(), "Dr. Ionescu", "ECG", "Ana Pop", nextMonday, hm(8, 0))

		assert.ErrorIs(t, err, ErrDoctorBusy)
		assert.True(t, apperror.IsConcurrency(err))
	})
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	id := uuid.New()

	t.Run("cancels the client's own appointment", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.sqlMock.ExpectBegin()
		f.appointmentRepo.On("FindByIDAndClientAndStatus", mock.Anything, id, "Ana Pop", entity.AppointmentStatusNew).
			Return(&entity.Appointment{ID: id, ClientName: "Ana Pop", Status: entity.AppointmentStatusNew}, nil)
		f.appointmentRepo.On("CancelAppointment", mock.Anything, id).Return(int64(1), nil)
		f.auditService.On("LogUpdate", mock.Anything, entity.AuditActionAppointmentCancel, "appointment", id.String(),
			entity.AppointmentStatusNew, entity.AppointmentStatusCanceled).Return(nil)
		f.sqlMock.ExpectCommit()

		err := f.usecase.CancelAppointment(context.Background(), id, "Ana Pop")

		require.NoError(t, err)
		f.auditService.AssertExpectations(t)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("wrong client is not found", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.sqlMock.ExpectBegin()
		f.appointmentRepo.On("FindByIDAndClientAndStatus", mock.Anything, id, "Ion Popa", entity.AppointmentStatusNew).Return(nil, nil)
		f.sqlMock.ExpectRollback()

		err := f.usecase.CancelAppointment(context.Background(), id, "Ion Popa")

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.True(t, apperror.IsNotFound(err))
		f.appointmentRepo.AssertNotCalled(t, "CancelAppointment", mock.Anything, mock.Anything)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("lost race to a concurrent cancel", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.sqlMock.ExpectBegin()
		f.appointmentRepo.On("FindByIDAndClientAndStatus", mock.Anything, id, "Ana Pop", entity.AppointmentStatusNew).
			Return(&entity.Appointment{ID: id, Status: entity.AppointmentStatusNew}, nil)
		f.appointmentRepo.On("CancelAppointment", mock.Anything, id).Return(int64(0), nil)
		f.sqlMock.ExpectRollback()

		err := f.usecase.CancelAppointment(context.Background(), id, "Ana Pop")

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestAppointmentUsecase_CancelAllAppointmentsForDoctor(t *testing.T) {
	t.Run("returns a summary", func(t *testing.T) {
		f := newAppointmentFixture(t)
		doctor := cardiologist()
		f.appointmentRepo.On("CancelAllForDoctor", mock.Anything, 4).Return(int64(3), nil)

		summary, err := f.usecase.CancelAllAppointmentsForDoctor(nil, doctor)

		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.Canceled)
		assert.Equal(t, "canceled 3 appointment(s) for doctor Dr. Ionescu", summary.String())
	})

	t.Run("propagates persistence failures", func(t *testing.T) {
		f := newAppointmentFixture(t)
		f.appointmentRepo.On("CancelAllForDoctor", mock.Anything, 4).Return(int64(0), errors.New("connection reset"))

		_, err := f.usecase.CancelAllAppointmentsForDoctor(nil, cardiologist())

		assert.EqualError(t, err, "connection reset")
	})
}

func TestAppointmentUsecase_GetAppointments(t *testing.T) {
	f := newAppointmentFixture(t)
	f.doctorRepo.On("FindActiveByName", mock.Anything, "Dr. Ionescu").Return(cardiologist(), nil)
	f.appointmentRepo.On("FindByDoctorAndDate", mock.Anything, 4, nextMonday, entity.AppointmentStatusNew).Return([]entity.Appointment{
		{ID: uuid.New(), DoctorID: 4, Date: nextMonday, StartTime: hm(9, 0), EndTime: hm(9, 30), Status: entity.AppointmentStatusNew},
	}, nil)

	response, err := f.usecase.GetAppointments(context.Background(), "Dr. Ionescu", nextMonday)

	require.NoError(t, err)
	assert.Equal(t, 1, response.Total)
	assert.Equal(t, "09:00", response.Appointments[0].StartTime)
}
