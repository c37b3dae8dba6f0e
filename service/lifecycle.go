package service

import (
	"errors"
	"time"

	"github.com/Miraku17/PowerSystems-sub006/models"

	"gorm.io/gorm"
)

// Lifecycle implements uniform soft delete / restore over the form-table
// registry. Attached files (signatures, attachments) are left untouched on
// delete so a restore brings the record back whole.
type Lifecycle struct {
	db    *gorm.DB
	perms *Permissions
}

func NewLifecycle(db *gorm.DB) *Lifecycle {
	return &Lifecycle{db: db, perms: NewPermissions(db)}
}

func fetchRow(db *gorm.DB, table string, id uint) (map[string]interface{}, error) {
	row := map[string]interface{}{}
	res := db.Table(table).Where("id = ?", id).Take(&row)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, res.Error
	}
	return row, nil
}

// SoftDelete marks a record deleted and writes the DELETE audit entry.
// Fails when the record is already deleted or the acting user fails the
// table's delete policy.
func (l *Lifecycle) SoftDelete(formType string, id uint, actingUser uint) (map[string]interface{}, error) {
	ft, ok := LookupFormType(formType)
	if !ok {
		return nil, ErrUnknownFormType
	}

	allowed, err := l.deleteAllowed(ft, actingUser)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	old, err := fetchRow(l.db, ft.Table, id)
	if err != nil {
		return nil, err
	}
	if old["deleted_at"] != nil {
		return nil, ErrAlreadyDeleted
	}

	now := time.Now().UTC()
	res := l.db.Table(ft.Table).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": now,
		"deleted_by": actingUser,
		"updated_at": now,
	})
	if res.Error != nil {
		return nil, res.Error
	}

	updated, err := fetchRow(l.db, ft.Table, id)
	if err != nil {
		return nil, err
	}
	if err := writeAudit(l.db, ft.Table, id, models.AuditActionDelete, old, updated, actingUser); err != nil {
		return nil, err
	}
	return updated, nil
}

// Restore clears deleted_at/deleted_by and writes the RESTORE audit entry.
// Only valid from a deleted state.
func (l *Lifecycle) Restore(formType string, id uint, actingUser uint) (map[string]interface{}, error) {
	ft, ok := LookupFormType(formType)
	if !ok {
		return nil, ErrUnknownFormType
	}

	allowed, err := l.perms.HasPermission(actingUser, "form_records", "restore")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	old, err := fetchRow(l.db, ft.Table, id)
	if err != nil {
		return nil, err
	}
	if old["deleted_at"] == nil {
		return nil, ErrNotDeleted
	}

	res := l.db.Table(ft.Table).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": nil,
		"deleted_by": nil,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, res.Error
	}

	updated, err := fetchRow(l.db, ft.Table, id)
	if err != nil {
		return nil, err
	}
	if err := writeAudit(l.db, ft.Table, id, models.AuditActionRestore, old, updated, actingUser); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListDeleted returns the soft-deleted rows of a form table, newest first.
func (l *Lifecycle) ListDeleted(formType string, actingUser uint) ([]map[string]interface{}, error) {
	ft, ok := LookupFormType(formType)
	if !ok {
		return nil, ErrUnknownFormType
	}

	allowed, err := l.perms.HasPermission(actingUser, "form_records", "restore")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	var rows []map[string]interface{}
	err = l.db.Table(ft.Table).
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (l *Lifecycle) deleteAllowed(ft FormType, actingUser uint) (bool, error) {
	if ft.DeletePolicy == DeleteByLegacyRole {
		return l.perms.CheckRecordPermission(actingUser)
	}
	return l.perms.HasPermission(actingUser, "form_records", "delete")
}
