package service

import (
	"gorm.io/gorm"
)

// NextJobOrderSeq draws the next job-order sequence value. Call it inside
// the transaction that inserts the numbered row so a consumed value always
// has a matching record.
//
// Three strategies, tried in order; each fallback is strictly less
// concurrency-safe than the one before it, so the ordering must not change:
//
//  1. atomic counter bump on form_counters (UPDATE .. RETURNING)
//  2. raw sequence introspection on the table's id sequence
//  3. max existing value + 1
func NextJobOrderSeq(tx *gorm.DB) (int64, error) {
	var seq int64

	res := tx.Raw(`
		UPDATE form_counters SET current_value = current_value + 1
		WHERE name = ? RETURNING current_value`, "job_order").Scan(&seq)
	if res.Error == nil && res.RowsAffected > 0 && seq > 0 {
		return seq, nil
	}

	res = tx.Raw(`SELECT nextval(pg_get_serial_sequence('job_order_requests', 'id'))`).Scan(&seq)
	if res.Error == nil && seq > 0 {
		return seq, nil
	}

	res = tx.Raw(`SELECT COALESCE(MAX(jo_number_seq), 0) + 1 FROM job_order_requests`).Scan(&seq)
	if res.Error != nil {
		return 0, res.Error
	}
	return seq, nil
}
