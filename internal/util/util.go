// Package util holds small helpers shared by the UI packages.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rect is a rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// NewRect constructs a Rect, e.g. from a pane's Dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the position lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// TruncateAt truncates the string to the given display width.
func TruncateAt(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// PadCenter centers the string within the given display width, truncating it
// if it is wider.
func PadCenter(s string, width int) string {
	s = TruncateAt(s, width)
	space := width - runewidth.StringWidth(s)
	left := space / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", space-left)
}
