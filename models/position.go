package models

import "time"

// Position is a named role ("Admin 1", "Admin 2", "Super Admin", "User")
// that aggregates permissions. ApprovalLevel maps the position onto the
// job-order / time-sheet approval chain; IsOverride lets the position act
// on any pending level.
type Position struct {
	ID            uint      `gorm:"primaryKey"           json:"id"`
	Name          string    `gorm:"uniqueIndex;size:120" json:"name"`
	ApprovalLevel int       `gorm:"default:0"            json:"approval_level"` // 0 = not an approver
	IsOverride    bool      `gorm:"default:false"        json:"is_override"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
