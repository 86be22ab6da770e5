package timeutil

import "testing"

func TestFormatCountdown(t *testing.T) {
	testCases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{899, "14:59"},
		{-3, "00:00"},
	}

	for _, tc := range testCases {
		if got := FormatCountdown(tc.seconds); got != tc.want {
			t.Errorf(
				"FormatCountdown(%d) = %q, want %q",
				tc.seconds, got, tc.want,
			)
		}
	}
}

func TestFormatCumulative(t *testing.T) {
	testCases := []struct {
		minutes int
		want    string
	}{
		{0, "0 m"},
		{25, "25 m"},
		{59, "59 m"},
		{60, "1 h 0 m"},
		{100, "1 h 40 m"},
		{250, "4 h 10 m"},
	}

	for _, tc := range testCases {
		if got := FormatCumulative(tc.minutes); got != tc.want {
			t.Errorf(
				"FormatCumulative(%d) = %q, want %q",
				tc.minutes, got, tc.want,
			)
		}
	}
}
