package models

import "time"

type Engine struct {
	ID         uint      `gorm:"primaryKey"          json:"id"`
	SerialNo   string    `gorm:"uniqueIndex;size:80" json:"serial_no"`
	Brand      string    `gorm:"size:120"            json:"brand"`
	Model      string    `gorm:"size:120"            json:"model"`
	RatingKW   float64   `json:"rating_kw"`
	CustomerID *uint     `gorm:"index"               json:"customer_id"`
	Customer   *Customer `json:"customer,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Pump struct {
	ID          uint      `gorm:"primaryKey"          json:"id"`
	SerialNo    string    `gorm:"uniqueIndex;size:80" json:"serial_no"`
	Brand       string    `gorm:"size:120"            json:"brand"`
	Model       string    `gorm:"size:120"            json:"model"`
	FlowRateGPM float64   `json:"flow_rate_gpm"`
	HeadMeters  float64   `json:"head_meters"`
	CustomerID  *uint     `gorm:"index"               json:"customer_id"`
	Customer    *Customer `json:"customer,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
