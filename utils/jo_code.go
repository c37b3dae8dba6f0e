package utils

import "fmt"

// FormatJobOrderNumber renders a counter value as the human-readable
// job order number, e.g. 1 -> "JO-0001". Values past 9999 widen naturally.
func FormatJobOrderNumber(seq int64) string {
	return fmt.Sprintf("JO-%04d", seq)
}
