package ui

import (
	"fmt"

	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/styling"
)

// Pane is a UI pane.
//
// Panes can focus other panes, in fact one of any number of "child" panes.
// Thus they can be structured as a tree and any node in this tree can be asked
// whether it HasFocus, and what it Focusses; generally, to answer whether a
// pane HasFocus, it would consult its parent whether the parent HasFocus and
// which pane it Focusses.
//
// In this tree of panes, a pane should generally have a parent, which can be
// set with SetParent; an exception would be the root pane of the tree.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)

	FocusNext()
	FocusPrev()
}

// OverlayPane is a pane that draws parts of itself over top of its siblings,
// e.g. a drop-down menu. Overlays are drawn after all regular drawing.
type OverlayPane interface {
	DrawOverlay()
	OverlayContains(x, y int) bool
}

// PaneQuerier are the querying member functions of a pane.
//
// E.g. letting a child access its parent, this allows limiting the childs
// access.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneType is the type of the bottommost meaningful UI pane.
type PaneType int

const (
	_ PaneType = iota
	// NoPane describes anything that is not on a meaningful UI Pane, perhaps in
	// padding space.
	NoPane
	// RotatorPaneType represents a pane holding a single list rotator.
	RotatorPaneType
	// StatusPaneType represents a status pane (or status bar).
	StatusPaneType
	// LogPaneType represents a log pane.
	LogPaneType
	// HelpPaneType represents a help popup.
	HelpPaneType
)

// ToString returns the name of this pane type as a string, primarily for
// debugging and logging purposes.
func (t PaneType) ToString() string {
	switch t {
	case NoPane:
		return "NoPane"
	case RotatorPaneType:
		return "RotatorPaneType"
	case StatusPaneType:
		return "StatusPaneType"
	case LogPaneType:
		return "LogPaneType"
	case HelpPaneType:
		return "HelpPaneType"
	}
	return "[UNKNOWN]"
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane". Panes guaranteed to be
// assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and dimensions,
	// but limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos represents the position of a mouse cursor on the UI's
// x-y-plane, which has its origin 0,0 in the top left.
type MouseCursorPos struct {
	X, Y int
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is a position of the text cursor.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
