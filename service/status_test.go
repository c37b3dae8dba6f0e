package service

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"in-progress", "In-Progress"},
		{"IN-PROGRESS", "In-Progress"},
		{"Pending", "Pending"},
		{"pending", "Pending"},
		{"PENDING", "Pending"},
		{"close", "Close"},
		{"cancelled", "Cancelled"},
		{"  pending  ", "Pending"},
		// unrecognized raw values pass through unchanged
		{"foo", "foo"},
		{"in progress", "in progress"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeStatus(tc.raw); got != tc.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
