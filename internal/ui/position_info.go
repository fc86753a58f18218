package ui

import (
	"github.com/ja-he/valueview/internal/rotator"
)

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}

// RotatorPanePositionInfo provides information on a position in a rotator
// pane: the section (if any) and whether the position is on the rotator's
// menu.
//
// Click performs a click on the rotator at the position.
type RotatorPanePositionInfo struct {
	Section rotator.SectionKind
	OnMenu  bool
	Click   func() bool
}
