package entity

import (
	"encoding/json"
	"time"
)

// Acciones de auditoría.
const (
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
	AuditLogin  = "login"
	AuditLogout = "logout"
)

// AuditLog entrada del registro de auditoría (append-only, fire-and-forget).
type AuditLog struct {
	ID         string
	ActionDate time.Time
	StaffID    string
	Action     string // create, update, delete, login, logout
	TableName  string
	RecordID   string
	OldValues  json.RawMessage
	NewValues  json.RawMessage
	IPAddress  string
	UserAgent  string
}
