package markethours

import "time"

// Working hours for analysis runs, inclusive on both ends (05:00–21:59).
const (
	OpenHour  = 5
	CloseHour = 21
)

// US market holidays on which no analysis is sent.
var holidays = []string{
	"2024-01-01", "2024-01-15", "2024-02-19", "2024-03-29",
	"2024-05-27", "2024-07-04", "2024-09-02", "2024-11-28",
	"2024-12-25",
}

var holidaySet map[string]bool

func init() {
	holidaySet = make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h] = true
	}
}

// IsHoliday reports whether t falls on a market holiday.
func IsHoliday(t time.Time) bool {
	return holidaySet[t.Format("2006-01-02")]
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ShouldAnalyze reports whether an analysis run may go out at t: a weekday,
// not a holiday, within working hours.
func ShouldAnalyze(t time.Time) bool {
	if IsHoliday(t) || IsWeekend(t) {
		return false
	}
	h := t.Hour()
	return h >= OpenHour && h <= CloseHour
}
