package service

import (
	"errors"

	"github.com/Miraku17/PowerSystems-sub006/models"

	"gorm.io/gorm"
)

type Scope string

const (
	ScopeNone   Scope = ""
	ScopeGlobal Scope = "global"
	ScopeBranch Scope = "branch"
)

// Permissions resolves position-based grants. Read-only: a missing position
// or a missing grant is an ordinary denial, never an error.
type Permissions struct {
	db *gorm.DB
}

func NewPermissions(db *gorm.DB) *Permissions { return &Permissions{db: db} }

// GetScope returns the scope granted to the user's position for
// (module, action), or ScopeNone when nothing is granted.
func (p *Permissions) GetScope(userID uint, module, action string) (Scope, error) {
	var user models.User
	if err := p.db.Select("id", "position_id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScopeNone, nil
		}
		return ScopeNone, err
	}
	if user.PositionID == nil {
		return ScopeNone, nil
	}

	type row struct{ Scope string }
	var rows []row
	err := p.db.Raw(`
		SELECT pp.scope FROM position_permissions pp
		JOIN permissions perm ON perm.id = pp.permission_id
		WHERE pp.position_id = ? AND perm.module = ? AND perm.action = ?`,
		*user.PositionID, module, action).Scan(&rows).Error
	if err != nil {
		return ScopeNone, err
	}
	if len(rows) == 0 {
		return ScopeNone, nil
	}
	if rows[0].Scope == string(ScopeBranch) {
		return ScopeBranch, nil
	}
	return ScopeGlobal, nil
}

func (p *Permissions) HasPermission(userID uint, module, action string) (bool, error) {
	scope, err := p.GetScope(userID, module, action)
	if err != nil {
		return false, err
	}
	return scope != ScopeNone, nil
}

// ApprovalLevel returns the approval level of the user's position and
// whether the position can override any pending level.
func (p *Permissions) ApprovalLevel(userID uint) (int, bool, error) {
	type row struct {
		ApprovalLevel int
		IsOverride    bool
	}
	var rows []row
	err := p.db.Raw(`
		SELECT pos.approval_level, pos.is_override FROM positions pos
		JOIN users u ON u.position_id = pos.id
		WHERE u.id = ?`, userID).Scan(&rows).Error
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0].ApprovalLevel, rows[0].IsOverride, nil
}

// CheckRecordPermission is the legacy authorization path kept for the older
// tables: a flat admin role grants everything, everyone else is denied.
func (p *Permissions) CheckRecordPermission(userID uint) (bool, error) {
	var user models.User
	if err := p.db.Select("id", "role").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == "admin", nil
}

// VisibilityFilter narrows a list query by the user's view scope for the
// module: global sees everything, branch sees records created in the same
// branch, no grant falls back to the user's own submissions.
func (p *Permissions) VisibilityFilter(q *gorm.DB, module string, userID uint) (*gorm.DB, error) {
	scope, err := p.GetScope(userID, module, "view")
	if err != nil {
		return nil, err
	}
	switch scope {
	case ScopeGlobal:
		return q, nil
	case ScopeBranch:
		branch, err := p.BranchOf(userID)
		if err != nil {
			return nil, err
		}
		return q.Where("created_by IN (SELECT id FROM users WHERE address = ?)", branch), nil
	default:
		return q.Where("created_by = ?", userID), nil
	}
}

// BranchOf returns the stored address (branch) of a user.
func (p *Permissions) BranchOf(userID uint) (string, error) {
	var user models.User
	if err := p.db.Select("id", "address").First(&user, userID).Error; err != nil {
		return "", err
	}
	return user.Address, nil
}
