// Package timeutil provides helpers for formatting countdown and
// cumulative time values.
package timeutil

import (
	"fmt"
	"math"
)

const minutesInAnHour = 60

// SecsToMinsAndSecs splits a seconds value into whole minutes and leftover
// seconds.
func SecsToMinsAndSecs(seconds int) (mins, secs int) {
	if seconds < 0 {
		seconds = 0
	}

	mins = seconds / 60
	secs = seconds % 60

	return
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatCountdown renders a seconds value as "MM:SS".
func FormatCountdown(seconds int) string {
	mins, secs := SecsToMinsAndSecs(seconds)

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatCumulative renders a minutes value as "H h M m", omitting the hour
// component when it is zero.
func FormatCumulative(minutes int) string {
	hrs, mins := MinsToHoursAndMins(minutes)

	if hrs == 0 {
		return fmt.Sprintf("%d m", mins)
	}

	return fmt.Sprintf("%d h %d m", hrs, mins)
}
