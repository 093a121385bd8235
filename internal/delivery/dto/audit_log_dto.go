package dto

import (
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
)

// Request DTOs

type AuditLogQuery struct {
	Action   string `validate:"omitempty,max=100"`
	Entity   string `validate:"omitempty,oneof=appointment vacation doctor specialty clock"`
	EntityID string `validate:"omitempty,max=100"`
	Limit    string `validate:"omitempty,number"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
