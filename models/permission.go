package models

import "time"

// Permission is a (module, action) capability, e.g. (customer_management, edit).
// Static reference data, seeded at startup.
type Permission struct {
	ID        uint      `gorm:"primaryKey"                                    json:"id"`
	Module    string    `gorm:"size:80;not null;uniqueIndex:idx_perm_mod_act" json:"module"`
	Action    string    `gorm:"size:40;not null;uniqueIndex:idx_perm_mod_act" json:"action"`
	Label     string    `gorm:"size:180"                                      json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PositionPermission joins Position to Permission. Scope narrows an
// otherwise-global grant to records whose creator's branch matches the
// acting user's branch.
type PositionPermission struct {
	PositionID   uint      `gorm:"primaryKey;autoIncrement:false" json:"position_id"`
	PermissionID uint      `gorm:"primaryKey;autoIncrement:false" json:"permission_id"`
	Scope        string    `gorm:"size:10;default:global"         json:"scope"` // global | branch
	GrantedAt    time.Time `gorm:"autoCreateTime"                 json:"granted_at"`
}
