package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Helpers

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, sqlMock
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hm(h, m int) entity.TimeOfDay {
	return entity.NewTimeOfDay(h, m)
}

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time { return c.today }

// Mocks

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	args := m.Called(db, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	args := m.Called(db, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindActiveByName(db *gorm.DB, name string) (*entity.Doctor, error) {
	args := m.Called(db, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAllActive(db *gorm.DB) ([]entity.Doctor, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindActiveBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Doctor, error) {
	args := m.Called(db, specialtyID)
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) SaveAll(db *gorm.DB, doctors []entity.Doctor) error {
	args := m.Called(db, doctors)
	return args.Error(0)
}

type MockSpecialtyRepository struct {
	mock.Mock
}

func (m *MockSpecialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	args := m.Called(db, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) Update(db *gorm.DB, specialty *entity.Specialty) error {
	args := m.Called(db, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) FindByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) FindActiveByName(db *gorm.DB, name string) (*entity.Specialty, error) {
	args := m.Called(db, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) FindAllActive(db *gorm.DB) ([]entity.Specialty, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.Specialty), args.Error(1)
}

type MockInvestigationRepository struct {
	mock.Mock
}

func (m *MockInvestigationRepository) Create(db *gorm.DB, investigation *entity.Investigation) error {
	args := m.Called(db, investigation)
	return args.Error(0)
}

func (m *MockInvestigationRepository) Update(db *gorm.DB, investigation *entity.Investigation) error {
	args := m.Called(db, investigation)
	return args.Error(0)
}

func (m *MockInvestigationRepository) FindByID(db *gorm.DB, id int) (*entity.Investigation, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Investigation), args.Error(1)
}

func (m *MockInvestigationRepository) FindActiveByName(db *gorm.DB, name string) (*entity.Investigation, error) {
	args := m.Called(db, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Investigation), args.Error(1)
}

func (m *MockInvestigationRepository) FindAllActive(db *gorm.DB) ([]entity.Investigation, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.Investigation), args.Error(1)
}

func (m *MockInvestigationRepository) FindActiveBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Investigation, error) {
	args := m.Called(db, specialtyID)
	return args.Get(0).([]entity.Investigation), args.Error(1)
}

func (m *MockInvestigationRepository) SaveAll(db *gorm.DB, investigations []entity.Investigation) error {
	args := m.Called(db, investigations)
	return args.Error(0)
}

type MockWorkingHoursRepository struct {
	mock.Mock
}

func (m *MockWorkingHoursRepository) Create(db *gorm.DB, workingHours *entity.WorkingHours) error {
	args := m.Called(db, workingHours)
	return args.Error(0)
}

func (m *MockWorkingHoursRepository) Update(db *gorm.DB, workingHours *entity.WorkingHours) error {
	args := m.Called(db, workingHours)
	return args.Error(0)
}

func (m *MockWorkingHoursRepository) FindByID(db *gorm.DB, id int) (*entity.WorkingHours, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WorkingHours), args.Error(1)
}

func (m *MockWorkingHoursRepository) FindActiveByDoctorAndDay(db *gorm.DB, doctorID int, dayOfWeek int) (*entity.WorkingHours, error) {
	args := m.Called(db, doctorID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WorkingHours), args.Error(1)
}

func (m *MockWorkingHoursRepository) FindActiveByDoctor(db *gorm.DB, doctorID int) ([]entity.WorkingHours, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).([]entity.WorkingHours), args.Error(1)
}

func (m *MockWorkingHoursRepository) RemoveAllForDoctor(db *gorm.DB, doctorID int) (int64, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) Create(db *gorm.DB, holiday *entity.Holiday) error {
	args := m.Called(db, holiday)
	return args.Error(0)
}

func (m *MockHolidayRepository) Update(db *gorm.DB, holiday *entity.Holiday) error {
	args := m.Called(db, holiday)
	return args.Error(0)
}

func (m *MockHolidayRepository) FindByID(db *gorm.DB, id int) (*entity.Holiday, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) FindAllActive(db *gorm.DB) ([]entity.Holiday, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) IsHoliday(db *gorm.DB, day time.Time) (bool, error) {
	args := m.Called(db, day)
	return args.Bool(0), args.Error(1)
}

type MockVacationRepository struct {
	mock.Mock
}

func (m *MockVacationRepository) Create(db *gorm.DB, vacation *entity.Vacation) error {
	args := m.Called(db, vacation)
	return args.Error(0)
}

func (m *MockVacationRepository) Update(db *gorm.DB, vacation *entity.Vacation) error {
	args := m.Called(db, vacation)
	return args.Error(0)
}

func (m *MockVacationRepository) ExistsOverlap(db *gorm.DB, doctorID *int, start, end time.Time) (bool, error) {
	args := m.Called(db, doctorID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockVacationRepository) FindActiveByDoctorAndStartDate(db *gorm.DB, doctorID int, start time.Time) (*entity.Vacation, error) {
	args := m.Called(db, doctorID, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vacation), args.Error(1)
}

func (m *MockVacationRepository) FindByDoctor(db *gorm.DB, doctorID int) ([]entity.Vacation, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).([]entity.Vacation), args.Error(1)
}

func (m *MockVacationRepository) CancelOpenForDoctor(db *gorm.DB, doctorID int) (int64, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVacationRepository) FinishDue(db *gorm.DB, today time.Time) (int64, error) {
	args := m.Called(db, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVacationRepository) StartDue(db *gorm.DB, today time.Time) (int64, error) {
	args := m.Called(db, today)
	return args.Get(0).(int64), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorAndDate(db *gorm.DB, doctorID int, day time.Time, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID, day, status)
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ExistsOverlap(db *gorm.DB, doctorID int, day time.Time, start, end entity.TimeOfDay) (bool, error) {
	args := m.Called(db, doctorID, day, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByIDAndClientAndStatus(db *gorm.DB, id uuid.UUID, clientName string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	args := m.Called(db, id, clientName, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CancelAppointment(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CancelAllForDoctor(db *gorm.DB, doctorID int) (int64, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(tx *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(tx, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(tx *gorm.DB, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(tx, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogCascade(tx *gorm.DB, action string, entityName string, entityID string, effects entity.JSON) error {
	args := m.Called(tx, action, entityName, entityID, effects)
	return args.Error(0)
}

type MockDoctorLocker struct {
	mock.Mock
}

func (m *MockDoctorLocker) Lock(ctx context.Context, doctorID int) (func(), error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) BookAppointment(ctx context.Context, doctorName, investigationName, clientName string, day time.Time, start entity.TimeOfDay) (uuid.UUID, error) {
	args := m.Called(ctx, doctorName, investigationName, clientName, day, start)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID, clientName string) error {
	args := m.Called(ctx, id, clientName)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) CancelAllAppointmentsForDoctor(tx *gorm.DB, doctor *entity.Doctor) (BulkCancelSummary, error) {
	args := m.Called(tx, doctor)
	return args.Get(0).(BulkCancelSummary), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointments(ctx context.Context, doctorName string, day time.Time) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, doctorName, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}
