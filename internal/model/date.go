package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// Date is a calendar date. Which calendar it is reckoned in is not part of
// the date itself.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Valid reports whether the date exists in the given calendar.
func (d Date) Valid(cal Calendar) bool {
	// verify month
	if d.Month < 1 ||
		d.Month > 12 {
		return false
	}

	if d.Day < 1 ||
		d.Day > d.GetLastOfMonth(cal).Day {
		return false
	}

	return true
}

var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// DateFromString parses a date in YYYY-MM-DD format, validated against the
// given calendar.
func DateFromString(s string, cal Calendar) (Date, error) {
	parsed := dateRegex.FindStringSubmatch(s)
	if len(parsed) < 4 {
		return Date{}, fmt.Errorf("not enough int matches in day string '%s'", s)
	}

	year, errY := strconv.Atoi(parsed[1])
	month, errM := strconv.Atoi(parsed[2])
	day, errD := strconv.Atoi(parsed[3])
	tmp := Date{year, month, day}

	switch {
	case errY != nil, errM != nil, errD != nil:
		return Date{}, fmt.Errorf("could not convert string '%s' (assuming YYYY-MM-DD format) to integers", s)
	case !tmp.Valid(cal):
		return Date{}, fmt.Errorf("day %s (from string '%s') not valid in %s calendar", tmp.ToString(), s, cal)
	default:
		return tmp, nil
	}
}

func lastDaysOfMonth() map[int]int {
	return map[int]int{
		1:  31,
		2:  28,
		3:  31,
		4:  30,
		5:  31,
		6:  30,
		7:  31,
		8:  31,
		9:  30,
		10: 31,
		11: 30,
		12: 31,
	}
}

// GetLastOfMonth returns the last date of the month of the receiver.
func (d Date) GetLastOfMonth(cal Calendar) Date {
	var lastDay int

	switch {
	case d.Month == 2 && d.isLeapYear(cal):
		lastDay = 29
	default:
		lastDay = lastDaysOfMonth()[d.Month]
	}

	return Date{Year: d.Year, Month: d.Month, Day: lastDay}
}

func (d Date) isLeapYear(cal Calendar) bool {
	if cal == Julian {
		return d.Year%4 == 0
	}
	return d.Year%4 == 0 && (!(d.Year%100 == 0) || d.Year%400 == 0)
}

// IsBefore reports whether date a is before date b, both reckoned in the same
// calendar.
func (a Date) IsBefore(b Date) bool {
	switch {
	case a.Year != b.Year:
		return a.Year < b.Year
	case a.Month != b.Month:
		return a.Month < b.Month
	default:
		return a.Day < b.Day
	}
}

// ToJDN returns the julian day number of the date, reckoned in the given
// calendar. Only dates after 4801 BC are supported.
func (d Date) ToJDN(cal Calendar) int {
	a := (14 - d.Month) / 12
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3

	jdn := d.Day + (153*m+2)/5 + 365*y + y/4
	if cal == Julian {
		return jdn - 32083
	}
	return jdn - y/100 + y/400 - 32045
}

// DateFromJDN returns the date of the given julian day number, reckoned in
// the given calendar.
func DateFromJDN(jdn int, cal Calendar) Date {
	var b, c int
	if cal == Julian {
		c = jdn + 32082
	} else {
		a := jdn + 32044
		b = (4*a + 3) / 146097
		c = a - 146097*b/4
	}

	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	return Date{
		Year:  100*b + d - 4800 + m/10,
		Month: m + 3 - 12*(m/10),
		Day:   e - (153*m+2)/5 + 1,
	}
}

// In converts the date from one calendar to another.
func (d Date) In(from, to Calendar) Date {
	if from == to {
		return d
	}
	return DateFromJDN(d.ToJDN(from), to)
}
