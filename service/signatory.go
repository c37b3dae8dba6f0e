package service

import (
	"time"

	"gorm.io/gorm"
)

// Signatory implements the per-record signatory flag toggle. The check is
// an identity match against the record's designated signatory column, not a
// permission check: an admin cannot flip someone else's flag.
type Signatory struct {
	db *gorm.DB
}

func NewSignatory(db *gorm.DB) *Signatory { return &Signatory{db: db} }

// ToggleFlag sets {field}_checked on an allow-listed report table, provided
// the acting user is the record's {field}_user_id.
func (s *Signatory) ToggleFlag(table string, recordID uint, field string, checked bool, actingUser uint) (map[string]interface{}, error) {
	if !SignatoryTableAllowed(table) {
		return nil, ErrTableNotAllowed
	}
	if field != "noted_by" && field != "approved_by" {
		return nil, ErrInvalidField
	}

	row, err := fetchRow(s.db, table, recordID)
	if err != nil {
		return nil, err
	}
	if row["deleted_at"] != nil {
		return nil, ErrNotFound
	}

	designated := row[field+"_user_id"]
	if designated == nil || toUint(designated) != actingUser {
		return nil, ErrNotSignatory
	}

	res := s.db.Table(table).Where("id = ?", recordID).Updates(map[string]interface{}{
		field + "_checked": checked,
		"updated_at":       time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, res.Error
	}

	return fetchRow(s.db, table, recordID)
}
