package models

import "time"

type DailyTimeSheet struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkDate   time.Time `json:"work_date"`
	TimeIn     string    `gorm:"size:10"    json:"time_in"`
	TimeOut    string    `gorm:"size:10"    json:"time_out"`
	HoursTotal float64   `json:"hours_total"`
	Activity   string    `gorm:"size:2000"  json:"activity"`
	JobOrderID *uint     `gorm:"index"      json:"job_order_id"`

	Status string `gorm:"size:30;default:Pending" json:"status"`

	ApprovalMeta
	SignatoryMeta
	FormMeta
}

func (DailyTimeSheet) TableName() string { return "daily_time_sheets" }
