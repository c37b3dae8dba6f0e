package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AuditActionStatusChange = "STATUS_CHANGE"
	AuditActionDelete       = "DELETE"
	AuditActionRestore      = "RESTORE"
)

// AuditLog is an immutable record of a mutation: full old/new row snapshots
// plus who did it. Rows are only ever inserted.
type AuditLog struct {
	ID          uint           `gorm:"primaryKey"                 json:"id"`
	TableName   string         `gorm:"size:80;not null;index"     json:"table_name"`
	RecordID    uint           `gorm:"not null;index"             json:"record_id"`
	Action      string         `gorm:"size:30;not null"           json:"action"`
	OldData     datatypes.JSON `json:"old_data"`
	NewData     datatypes.JSON `json:"new_data"`
	PerformedBy uint           `gorm:"not null;index"             json:"performed_by"`
	CreatedAt   time.Time      `json:"performed_at"`
}
