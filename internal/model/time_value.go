// Package model holds the values edited in the TUI: a point in time given at
// some precision and reckoned in some calendar.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeValue is a point in time together with the precision it is given at.
//
// The date is held in the (proleptic) Gregorian calendar, whatever calendar
// it is shown in. A nil Calendar means the calendar is chosen automatically
// (see EffectiveCalendar).
type TimeValue struct {
	Date      Date
	Time      Timestamp
	Precision Precision
	Calendar  *Calendar
}

var timeValueRegex = regexp.MustCompile(`^(\d{1,4})(?:-(\d{2})(?:-(\d{2})(?:[T ](\d{2})(?::(\d{2})(?::(\d{2}))?)?)?)?)?$`)

// ParseTimeValue parses a time value of the form
//
//	YYYY[-MM[-DD[THH[:MM[:SS]]]]]
//
// as reckoned in the given calendar. Without a calendar, the date is reckoned
// in the calendar in use at the time.
// The precision is inferred from the most precise component given.
func ParseTimeValue(s string, cal *Calendar) (TimeValue, error) {
	s = strings.TrimSpace(s)
	parsed := timeValueRegex.FindStringSubmatch(s)
	if parsed == nil {
		return TimeValue{}, fmt.Errorf("time value '%s' does not match YYYY[-MM[-DD[THH[:MM[:SS]]]]]", s)
	}

	components := []int{0, 1, 1, 0, 0, 0}
	given := 0
	for i := range components {
		if parsed[i+1] == "" {
			break
		}
		n, err := strconv.Atoi(parsed[i+1])
		if err != nil {
			return TimeValue{}, fmt.Errorf("could not convert component '%s' of '%s': %w", parsed[i+1], s, err)
		}
		components[i] = n
		given++
	}

	date := Date{Year: components[0], Month: components[1], Day: components[2]}
	reckoning, err := reckoningFor(date, cal)
	if err != nil {
		return TimeValue{}, fmt.Errorf("could not parse '%s': %w", s, err)
	}
	if !date.Valid(reckoning) {
		return TimeValue{}, fmt.Errorf("day %s (from '%s') not valid in %s calendar", date.ToString(), s, reckoning)
	}
	clock := Timestamp{Hour: components[3], Minute: components[4], Second: components[5]}
	if !clock.Legal() {
		return TimeValue{}, fmt.Errorf("time %s (from '%s') not legal", clock.ToString(), s)
	}

	return TimeValue{
		Date:      date.In(reckoning, Gregorian),
		Time:      clock,
		Precision: []Precision{Year, Month, Day, Hour, Minute, Second}[given-1],
		Calendar:  cal,
	}, nil
}

// reckoningFor returns the calendar a written date is reckoned in. Without an
// explicit calendar, dates before the Gregorian reform are Julian dates and all
// others are Gregorian dates; the days skipped by the reform do not exist.
func reckoningFor(d Date, cal *Calendar) (Calendar, error) {
	if cal != nil {
		return *cal, nil
	}
	if d.ToJDN(Julian) < gregorianReformJDN {
		return Julian, nil
	}
	if d.ToJDN(Gregorian) < gregorianReformJDN {
		return Gregorian, fmt.Errorf("day %s skipped by the gregorian reform", d.ToString())
	}
	return Gregorian, nil
}

// EffectiveCalendar returns the calendar the value is shown in: the explicit
// calendar if set, otherwise the Julian calendar for dates before the
// Gregorian reform and the Gregorian calendar for all others.
func (v TimeValue) EffectiveCalendar() Calendar {
	if v.Calendar != nil {
		return *v.Calendar
	}
	return calendarFor(v.Date.ToJDN(Gregorian))
}

// String formats the value at its precision, in its effective calendar.
func (v TimeValue) String() string {
	cal := v.EffectiveCalendar()
	d := v.Date.In(Gregorian, cal)

	var s string
	switch v.Precision {
	case Millennium:
		s = fmt.Sprintf("millennium %d", (d.Year-1)/1000+1)
	case Century:
		s = fmt.Sprintf("century %d", (d.Year-1)/100+1)
	case Decade:
		s = fmt.Sprintf("%ds", d.Year/10*10)
	case Year:
		s = fmt.Sprintf("%04d", d.Year)
	case Month:
		s = fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	case Day:
		s = d.ToString()
	case Hour:
		s = fmt.Sprintf("%sT%02d", d.ToString(), v.Time.Hour)
	case Minute:
		s = fmt.Sprintf("%sT%02d:%02d", d.ToString(), v.Time.Hour, v.Time.Minute)
	default:
		s = d.ToString() + "T" + v.Time.ToString()
	}

	if v.Calendar != nil || cal == Julian {
		s += " (" + cal.String() + ")"
	}
	return s
}
