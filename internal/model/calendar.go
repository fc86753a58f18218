package model

import (
	"fmt"
	"strings"
)

// Calendar is a calendar model dates are reckoned in.
type Calendar int

const (
	Gregorian Calendar = iota
	Julian
)

// Calendars returns all calendars in the order they are offered for selection.
func Calendars() []Calendar { return []Calendar{Gregorian, Julian} }

// String returns the calendar's identifier, e.g. "gregorian".
func (c Calendar) String() string {
	switch c {
	case Gregorian:
		return "gregorian"
	case Julian:
		return "julian"
	default:
		return fmt.Sprintf("calendar(%d)", int(c))
	}
}

// MessageKey is the key by which the calendar's localized name is requested.
func (c Calendar) MessageKey() string { return "valueview-calendar-" + c.String() }

// CalendarFromString returns the calendar for the given identifier.
func CalendarFromString(s string) (Calendar, error) {
	for _, c := range Calendars() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return Gregorian, fmt.Errorf("unknown calendar '%s'", s)
}

// gregorianReformJDN is the julian day number of 1582-10-15 (Gregorian), the
// first day the Gregorian calendar was in use.
const gregorianReformJDN = 2299161

// calendarFor returns the calendar conventionally used for the given julian
// day number.
func calendarFor(jdn int) Calendar {
	if jdn < gregorianReformJDN {
		return Julian
	}
	return Gregorian
}
