package model

import (
	"fmt"
)

// Timestamp is a time of day.
type Timestamp struct {
	Hour, Minute, Second int
}

func (t Timestamp) ToString() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t Timestamp) Legal() bool {
	return (t.Hour < 24 && t.Minute < 60 && t.Second < 60) && (t.Hour >= 0 && t.Minute >= 0 && t.Second >= 0)
}
