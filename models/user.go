package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey"              json:"id"`
	Username     string     `gorm:"uniqueIndex;size:120"    json:"username"`
	Email        string     `gorm:"uniqueIndex;size:180"    json:"email"`
	FullName     string     `gorm:"size:180"                json:"full_name"`
	Phone        string     `gorm:"size:60"                 json:"phone"`
	Address      string     `gorm:"size:255;index"          json:"address"` // branch; approval scoping keys off this
	AvatarURL    string     `gorm:"size:255"                json:"avatar_url"`
	PasswordHash string     `gorm:"size:255"                json:"-"`
	Role         string     `gorm:"size:20;default:user"    json:"role"` // legacy flat role: admin | user
	PositionID   *uint      `gorm:"index"                   json:"position_id"`
	Position     *Position  `json:"position,omitempty"`
	IsActive     bool       `gorm:"default:true"            json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
