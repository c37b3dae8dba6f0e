package models

import "time"

type LeaveRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LeaveType string    `gorm:"size:40"    json:"leave_type"` // vacation | sick | emergency | unpaid
	DateFrom  time.Time `json:"date_from"`
	DateTo    time.Time `json:"date_to"`
	Reason    string    `gorm:"size:1000"  json:"reason"`

	Status string `gorm:"size:30;default:Pending" json:"status"`

	FormMeta
}

func (LeaveRequest) TableName() string { return "leave_requests" }
