package models

import "time"

// JobOrderRequest is the main work-intake form. JoNumber is the
// human-readable sequential number ("JO-0001") drawn from the job_order
// counter in the same transaction as the insert.
type JobOrderRequest struct {
	ID          uint      `gorm:"primaryKey"          json:"id"`
	JoNumber    string    `gorm:"uniqueIndex;size:20" json:"jo_number"`
	JoNumberSeq int64     `gorm:"index"               json:"jo_number_seq"`
	CustomerID  uint      `json:"customer_id"`
	Customer    *Customer `json:"customer,omitempty"`
	EngineID    *uint     `json:"engine_id"`
	PumpID      *uint     `json:"pump_id"`
	Description string    `gorm:"size:2000"           json:"description"`
	SiteAddress string    `gorm:"size:255"            json:"site_address"`
	TargetDate  time.Time `json:"target_date"`

	// business status as entered; normalized for display only
	Status string `gorm:"size:30;default:Pending" json:"status"`

	ApprovalMeta
	FormMeta
}

func (JobOrderRequest) TableName() string { return "job_order_requests" }
