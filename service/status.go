package service

import "strings"

// canonicalStatuses is the display set for business statuses. Raw values
// arrive in mixed case and hyphenation ("in-progress", "PENDING", ...).
var canonicalStatuses = []string{"Pending", "In-Progress", "Close", "Cancelled"}

// NormalizeStatus maps a raw status onto its canonical display form with a
// case-insensitive lookup. Unrecognized values pass through unchanged; they
// are kept visible rather than silently dropped.
func NormalizeStatus(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, canon := range canonicalStatuses {
		if strings.EqualFold(trimmed, canon) {
			return canon
		}
	}
	return raw
}
