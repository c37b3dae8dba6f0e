package models

import "time"

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:180"   json:"name"`
	ContactPerson string    `gorm:"size:180"   json:"contact_person"`
	Phone         string    `gorm:"size:60"    json:"phone"`
	Email         string    `gorm:"size:180"   json:"email"`
	Address       string    `gorm:"size:255"   json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
