package models

import "time"

// FormMeta carries the lifecycle columns shared by every form table.
// deleted_at is null for active rows; soft delete sets both fields and
// restore clears both. Rows are never physically removed.
type FormMeta struct {
	CreatedBy uint       `gorm:"index"          json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index"          json:"deleted_at,omitempty"`
	DeletedBy *uint      `json:"deleted_by,omitempty"`
}

func (f *FormMeta) SetCreatedBy(id uint) { f.CreatedBy = id }

// ApprovalMeta carries the two-level approval columns for job orders and
// daily time sheets.
type ApprovalMeta struct {
	ApprovalStatus   string     `gorm:"size:30;default:pending_level_1;index"  json:"approval_status"`
	Level1ApprovedBy *uint      `gorm:"column:level_1_approved_by"             json:"level_1_approved_by"`
	Level1ApprovedAt *time.Time `gorm:"column:level_1_approved_at"             json:"level_1_approved_at"`
	Level1Notes      *string    `gorm:"column:level_1_notes;size:500"          json:"level_1_notes"`
	Level2ApprovedBy *uint      `gorm:"column:level_2_approved_by"             json:"level_2_approved_by"`
	Level2ApprovedAt *time.Time `gorm:"column:level_2_approved_at"             json:"level_2_approved_at"`
	Level2Notes      *string    `gorm:"column:level_2_notes;size:500"          json:"level_2_notes"`
}

// SignatoryMeta carries the per-record signatory flags. Only the user whose
// id matches the *_user_id column may flip the matching *_checked flag.
type SignatoryMeta struct {
	NotedByUserID     *uint `json:"noted_by_user_id"`
	NotedByChecked    bool  `gorm:"default:false" json:"noted_by_checked"`
	ApprovedByUserID  *uint `json:"approved_by_user_id"`
	ApprovedByChecked bool  `gorm:"default:false" json:"approved_by_checked"`
}

const (
	ApprovalPendingLevel1 = "pending_level_1"
	ApprovalPendingLevel2 = "pending_level_2"
	ApprovalApproved      = "approved"
	ApprovalRejected      = "rejected"
)
