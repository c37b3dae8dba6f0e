package models

// FormCounter backs sequential human-readable numbering (job orders).
// The counter is only advanced inside the transaction that inserts the
// numbered row, so a consumed value always has a matching record.
type FormCounter struct {
	ID           uint   `gorm:"primaryKey"          json:"id"`
	Name         string `gorm:"uniqueIndex;size:60" json:"name"`
	CurrentValue int64  `gorm:"default:0"           json:"current_value"`
}

const CounterJobOrder = "job_order"
