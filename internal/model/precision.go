package model

import (
	"fmt"
	"strings"
)

// Precision is the granularity a time value is given at.
type Precision int

const (
	Second Precision = iota
	Minute
	Hour
	Day
	Month
	Year
	Decade
	Century
	Millennium
)

var precisionNames = map[Precision]string{
	Second:     "second",
	Minute:     "minute",
	Hour:       "hour",
	Day:        "day",
	Month:      "month",
	Year:       "year",
	Decade:     "decade",
	Century:    "century",
	Millennium: "millennium",
}

// RotatablePrecisions are the precisions offered for selection. Values with
// other precisions can still be parsed and shown.
func RotatablePrecisions() []Precision {
	return []Precision{Minute, Hour, Day, Month, Year, Decade, Century}
}

// Rotatable reports whether the precision is one of RotatablePrecisions.
func (p Precision) Rotatable() bool { return p >= Minute && p <= Century }

func (p Precision) String() string {
	if name, ok := precisionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("precision(%d)", int(p))
}

// MessageKey is the key by which the precision's localized name is requested.
func (p Precision) MessageKey() string { return "valueview-precision-" + p.String() }

// PrecisionFromString returns the precision for the given identifier.
func PrecisionFromString(s string) (Precision, error) {
	for p, name := range precisionNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return Second, fmt.Errorf("unknown precision '%s'", s)
}
