package utils

import "testing"

func TestFormatJobOrderNumber(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "JO-0001"},
		{2, "JO-0002"},
		{42, "JO-0042"},
		{9999, "JO-9999"},
		{12345, "JO-12345"},
	}

	for _, tc := range cases {
		if got := FormatJobOrderNumber(tc.seq); got != tc.want {
			t.Errorf("FormatJobOrderNumber(%d) = %q, want %q", tc.seq, got, tc.want)
		}
	}
}
