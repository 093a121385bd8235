package repository

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogFilter narrows a listing. Empty fields match everything; Entity and
// EntityID are matched against the metadata written by the audit service.
type AuditLogFilter struct {
	Action   string
	Entity   string
	EntityID string
	Limit    int
}

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	Find(db *gorm.DB, filter AuditLogFilter) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
