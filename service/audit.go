package service

import (
	"encoding/json"

	"github.com/Miraku17/PowerSystems-sub006/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// writeAudit records one immutable audit entry with full old/new snapshots.
// Every STATUS_CHANGE / DELETE / RESTORE mutation calls this exactly once.
func writeAudit(db *gorm.DB, table string, recordID uint, action string, oldData, newData interface{}, performedBy uint) error {
	oldJSON, err := json.Marshal(oldData)
	if err != nil {
		return err
	}
	newJSON, err := json.Marshal(newData)
	if err != nil {
		return err
	}

	entry := models.AuditLog{
		TableName:   table,
		RecordID:    recordID,
		Action:      action,
		OldData:     datatypes.JSON(oldJSON),
		NewData:     datatypes.JSON(newJSON),
		PerformedBy: performedBy,
	}
	return db.Create(&entry).Error
}
