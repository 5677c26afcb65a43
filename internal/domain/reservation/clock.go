package reservation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

// TimePattern matches a 12-hour clock time such as "7:30 PM" or "07:30pm".
var TimePattern = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):([0-5][0-9])\s?(AM|PM)$`)

const DateLayout = "2006-01-02"

// ParseTimeOfDay returns the 24-hour hour and minute of a 12-hour time string.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	m := TimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, httperr.ErrBusinessf(
			CodeInvalidTime,
			"Time must be in HH:MM AM/PM format (e.g., 7:30 PM)",
		)
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	pm := strings.EqualFold(m[3], "PM")
	switch {
	case hour == 12 && !pm:
		hour = 0
	case hour != 12 && pm:
		hour += 12
	}

	return hour, minute, nil
}

// HourOf returns only the hour component (0-23) of a 12-hour time string.
func HourOf(s string) (int, error) {
	h, _, err := ParseTimeOfDay(s)
	return h, err
}

// MinutesOf returns minutes since midnight.
func MinutesOf(s string) (int, error) {
	h, m, err := ParseTimeOfDay(s)
	return h*60 + m, err
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns midnight of that
// calendar day in loc. For RFC 3339 input the day is the one written in the
// input's own offset.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, httperr.ErrBusinessf(CodeInvalidDate, "Date must be a valid date")
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// DayOf truncates t to midnight of its calendar day in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// IsTodayOrLater reports whether day is not before the current day in loc.
func IsTodayOrLater(day, now time.Time, loc *time.Location) bool {
	return !DayOf(day, loc).Before(DayOf(now, loc))
}
