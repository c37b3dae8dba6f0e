package models

import "time"

// The four report forms share the same shape: equipment reference, findings
// payload, a technician signature image stored in OSS, and signatory flags.

type EngineServiceReport struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	JobOrderID      *uint     `gorm:"index"      json:"job_order_id"`
	EngineID        uint      `gorm:"index"      json:"engine_id"`
	ServiceDate     time.Time `json:"service_date"`
	RunningHours    float64   `json:"running_hours"`
	Findings        string    `gorm:"size:4000"  json:"findings"`
	WorkPerformed   string    `gorm:"size:4000"  json:"work_performed"`
	Recommendations string    `gorm:"size:2000"  json:"recommendations"`
	SignatureURL    string    `gorm:"size:500"   json:"signature_url"`

	SignatoryMeta
	FormMeta
}

func (EngineServiceReport) TableName() string { return "engine_service_reports" }

type PumpServiceReport struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	JobOrderID      *uint     `gorm:"index"      json:"job_order_id"`
	PumpID          uint      `gorm:"index"      json:"pump_id"`
	ServiceDate     time.Time `json:"service_date"`
	SuctionPressure float64   `json:"suction_pressure"`
	DischargeHead   float64   `json:"discharge_head"`
	Findings        string    `gorm:"size:4000"  json:"findings"`
	WorkPerformed   string    `gorm:"size:4000"  json:"work_performed"`
	SignatureURL    string    `gorm:"size:500"   json:"signature_url"`

	SignatoryMeta
	FormMeta
}

func (PumpServiceReport) TableName() string { return "pump_service_reports" }

type EngineCommissioningReport struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	JobOrderID        *uint     `gorm:"index"      json:"job_order_id"`
	EngineID          uint      `gorm:"index"      json:"engine_id"`
	CommissioningDate time.Time `json:"commissioning_date"`
	LoadTestResult    string    `gorm:"size:4000"  json:"load_test_result"`
	AlarmsTested      string    `gorm:"size:2000"  json:"alarms_tested"`
	Remarks           string    `gorm:"size:2000"  json:"remarks"`
	SignatureURL      string    `gorm:"size:500"   json:"signature_url"`

	SignatoryMeta
	FormMeta
}

func (EngineCommissioningReport) TableName() string { return "engine_commissioning_reports" }

type PumpTeardownReport struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	JobOrderID     *uint     `gorm:"index"      json:"job_order_id"`
	PumpID         uint      `gorm:"index"      json:"pump_id"`
	TeardownDate   time.Time `json:"teardown_date"`
	PartsCondition string    `gorm:"size:4000"  json:"parts_condition"`
	PartsToReplace string    `gorm:"size:2000"  json:"parts_to_replace"`
	Remarks        string    `gorm:"size:2000"  json:"remarks"`
	SignatureURL   string    `gorm:"size:500"   json:"signature_url"`

	SignatoryMeta
	FormMeta
}

func (PumpTeardownReport) TableName() string { return "pump_teardown_reports" }
