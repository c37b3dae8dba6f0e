package service

import (
	"time"

	"github.com/Miraku17/PowerSystems-sub006/models"

	"gorm.io/gorm"
)

// Workflow is the approval engine for job-order requests and daily time
// sheets: business-status updates and the two-level approval state machine,
// both branch-scoped against the creator's stored address.
type Workflow struct {
	db    *gorm.DB
	perms *Permissions
}

func NewWorkflow(db *gorm.DB) *Workflow {
	return &Workflow{db: db, perms: NewPermissions(db)}
}

func toUint(v interface{}) uint {
	switch n := v.(type) {
	case int64:
		return uint(n)
	case int32:
		return uint(n)
	case int:
		return uint(n)
	case uint:
		return n
	case float64:
		return uint(n)
	}
	return 0
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// checkBranch verifies the record creator's branch equals the acting user's
// branch. Only called when the actor's scope is branch-restricted.
func (w *Workflow) checkBranch(row map[string]interface{}, actingUser uint) error {
	creatorBranch, err := w.perms.BranchOf(toUint(row["created_by"]))
	if err != nil {
		return err
	}
	actorBranch, err := w.perms.BranchOf(actingUser)
	if err != nil {
		return err
	}
	if creatorBranch != actorBranch {
		return ErrDifferentBranch
	}
	return nil
}

func (w *Workflow) authorize(row map[string]interface{}, actingUser uint) error {
	scope, err := w.perms.GetScope(actingUser, "approvals", "edit")
	if err != nil {
		return err
	}
	if scope == ScopeNone {
		return ErrPermissionDenied
	}
	if scope == ScopeBranch {
		return w.checkBranch(row, actingUser)
	}
	return nil
}

// UpdateStatus sets the business status of a record, normalizing the raw
// value for display, and writes one STATUS_CHANGE audit entry.
func (w *Workflow) UpdateStatus(formType string, id uint, rawStatus string, actingUser uint) (map[string]interface{}, error) {
	ft, ok := LookupFormType(formType)
	if !ok {
		return nil, ErrUnknownFormType
	}
	if rawStatus == "" {
		return nil, ErrInvalidStatus
	}

	old, err := fetchRow(w.db, ft.Table, id)
	if err != nil {
		return nil, err
	}
	if old["deleted_at"] != nil {
		return nil, ErrNotFound
	}

	if err := w.authorize(old, actingUser); err != nil {
		return nil, err
	}

	newStatus := NormalizeStatus(rawStatus)
	res := w.db.Table(ft.Table).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, res.Error
	}

	err = writeAudit(w.db, ft.Table, id, models.AuditActionStatusChange,
		map[string]interface{}{"status": old["status"]},
		map[string]interface{}{"status": newStatus},
		actingUser)
	if err != nil {
		return nil, err
	}
	return fetchRow(w.db, ft.Table, id)
}

// Approve advances a pending record one level. Level-1 approvers act on
// pending_level_1, level-2 approvers on pending_level_2; an override
// position acts on either. Super-admin approval still walks the chain one
// step at a time so both signature slots get filled.
func (w *Workflow) Approve(formType string, id uint, actingUser uint, notes string) (map[string]interface{}, error) {
	return w.decide(formType, id, actingUser, notes, true)
}

// Reject moves a record from either pending state to the terminal rejected
// state, recording the decision on the level it was pending at.
func (w *Workflow) Reject(formType string, id uint, actingUser uint, notes string) (map[string]interface{}, error) {
	return w.decide(formType, id, actingUser, notes, false)
}

func (w *Workflow) decide(formType string, id uint, actingUser uint, notes string, approve bool) (map[string]interface{}, error) {
	ft, ok := LookupFormType(formType)
	if !ok {
		return nil, ErrUnknownFormType
	}
	if !ft.HasApproval {
		return nil, ErrNotApprovable
	}

	old, err := fetchRow(w.db, ft.Table, id)
	if err != nil {
		return nil, err
	}
	if old["deleted_at"] != nil {
		return nil, ErrNotFound
	}

	if err := w.authorize(old, actingUser); err != nil {
		return nil, err
	}

	level, override, err := w.perms.ApprovalLevel(actingUser)
	if err != nil {
		return nil, err
	}

	current := toString(old["approval_status"])
	var pendingLevel int
	switch current {
	case models.ApprovalPendingLevel1:
		pendingLevel = 1
	case models.ApprovalPendingLevel2:
		pendingLevel = 2
	default:
		return nil, ErrInvalidTransition
	}
	if !override && level != pendingLevel {
		return nil, ErrWrongLevel
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{"updated_at": now}
	next := models.ApprovalRejected
	if approve {
		if pendingLevel == 1 {
			next = models.ApprovalPendingLevel2
		} else {
			next = models.ApprovalApproved
		}
	}
	updates["approval_status"] = next

	if pendingLevel == 1 {
		updates["level_1_approved_by"] = actingUser
		updates["level_1_approved_at"] = now
		if notes != "" {
			updates["level_1_notes"] = notes
		}
	} else {
		updates["level_2_approved_by"] = actingUser
		updates["level_2_approved_at"] = now
		if notes != "" {
			updates["level_2_notes"] = notes
		}
	}

	res := w.db.Table(ft.Table).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	err = writeAudit(w.db, ft.Table, id, models.AuditActionStatusChange,
		map[string]interface{}{"approval_status": current},
		map[string]interface{}{"approval_status": next},
		actingUser)
	if err != nil {
		return nil, err
	}
	return fetchRow(w.db, ft.Table, id)
}
