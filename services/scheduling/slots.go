package scheduling

import (
	"fmt"
	"time"

	"github.com/Sridhar1233sri/consultancy/utils"
)

const (
	dateLayout    = "2006-01-02"
	clockLayout   = "15:04"
	minutesPerDay = 24 * 60
)

// GridConfig describes the clinic's daily schedule grid.
type GridConfig struct {
	OpenHour    int // first bookable hour, e.g. 9 for 09:00
	CloseHour   int // end of business, e.g. 18 for 18:00
	SlotMinutes int // slot granularity, e.g. 60
}

// Slots returns the ordered candidate slot start times for one day, in
// minutes from midnight. A trailing window shorter than SlotMinutes is
// dropped rather than offered as a partial slot.
func (g GridConfig) Slots() []int {
	open := g.OpenHour * 60
	end := g.CloseHour * 60

	var starts []int
	for start := open; start+g.SlotMinutes <= end; start += g.SlotMinutes {
		starts = append(starts, start)
	}
	return starts
}

// ParseClock converts "HH:MM" into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, &utils.InvalidInputError{Field: "time", Reason: fmt.Sprintf("%q is not in HH:MM form", s)}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &utils.InvalidInputError{Field: "date", Reason: fmt.Sprintf("%q is not in YYYY-MM-DD form", s)}
	}
	return t, nil
}
