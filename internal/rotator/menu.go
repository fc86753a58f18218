package rotator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCustomEntryPresent is returned when inserting a custom entry into a menu
// that already holds one.
var ErrCustomEntryPresent = errors.New("menu already holds a custom entry")

// ErrUnknownHandle is returned when removing a custom entry by a handle that
// does not (or no longer) refer to an entry of the menu.
var ErrUnknownHandle = errors.New("unknown menu entry handle")

// MenuEntry is a single entry of the drop-down menu.
type MenuEntry[V comparable] struct {
	Value  V
	Label  string
	Active bool
	Custom bool
}

// MenuHandle refers to a custom entry inserted into a menu.
type MenuHandle struct {
	id uint64
}

// Valid reports whether the handle refers to an entry at all.
func (h MenuHandle) Valid() bool { return h.id != 0 }

type menuEntry[V comparable] struct {
	MenuEntry[V]
	handle uint64
}

// Menu is the drop-down menu listing all values of a rotator for direct
// selection.
//
// It is anchored to the curr section (via the anchor function) and positioned
// relative to it according to its Position, which is mirrored in a
// right-to-left context.
type Menu[V comparable] struct {
	entries   []*menuEntry[V]
	visible   bool
	focussed  int
	position  Position
	isRtl     func() bool
	measure   func(string) int
	anchor    func() (x, y, w, h int)
	minWidth  int
	hasCustom bool
	lastID    uint64

	x, y, w, h int
}

func newMenu[V comparable](
	items []Item[V],
	position Position,
	isRtl func() bool,
	measure func(string) int,
	anchor func() (x, y, w, h int),
) *Menu[V] {
	m := &Menu[V]{
		position: position,
		isRtl:    isRtl,
		measure:  measure,
		anchor:   anchor,
		focussed: -1,
	}
	for _, item := range items {
		m.entries = append(m.entries, &menuEntry[V]{MenuEntry: MenuEntry[V]{Value: item.Value, Label: item.Label, Custom: item.Custom}})
	}
	m.Refresh()
	return m
}

// Entries returns (copies of) the menu's entries in order.
func (m *Menu[V]) Entries() []MenuEntry[V] {
	result := make([]MenuEntry[V], len(m.entries))
	for i, e := range m.entries {
		result[i] = e.MenuEntry
	}
	return result
}

// Len returns the number of entries.
func (m *Menu[V]) Len() int { return len(m.entries) }

// MarkActive marks the entry holding the given value as active and clears the
// active state of all other entries.
func (m *Menu[V]) MarkActive(v V) {
	for _, e := range m.entries {
		e.Active = e.Value == v
	}
}

// Active returns the value of the active entry, if any.
func (m *Menu[V]) Active() (V, bool) {
	for _, e := range m.entries {
		if e.Active {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// InsertCustom inserts a custom entry for the item at the given index.
// Only a single custom entry may be present at a time.
func (m *Menu[V]) InsertCustom(item Item[V], index int) (MenuHandle, error) {
	if m.hasCustom {
		return MenuHandle{}, ErrCustomEntryPresent
	}
	if index < 0 || index > len(m.entries) {
		return MenuHandle{}, fmt.Errorf("cannot insert menu entry at %d into menu of length %d: %w", index, len(m.entries), ErrIndexOutOfRange)
	}
	m.lastID++
	entry := &menuEntry[V]{
		MenuEntry: MenuEntry[V]{Value: item.Value, Label: item.Label, Custom: true},
		handle:    m.lastID,
	}
	m.entries = append(m.entries, nil)
	copy(m.entries[index+1:], m.entries[index:])
	m.entries[index] = entry
	m.hasCustom = true
	if m.focussed >= index {
		m.focussed++
	}
	m.Refresh()
	return MenuHandle{id: entry.handle}, nil
}

// RemoveCustom removes the custom entry the handle refers to.
func (m *Menu[V]) RemoveCustom(h MenuHandle) error {
	if !h.Valid() {
		return ErrUnknownHandle
	}
	for i, e := range m.entries {
		if e.handle == h.id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.hasCustom = false
			switch {
			case m.focussed == i:
				m.focussed = -1
			case m.focussed > i:
				m.focussed--
			}
			m.Refresh()
			return nil
		}
	}
	return ErrUnknownHandle
}

// SetMinWidth sets the width the menu has at least, e.g. to match the width of
// the section it is anchored to.
func (m *Menu[V]) SetMinWidth(w int) {
	m.minWidth = w
	m.Refresh()
}

// Refresh recomputes the menu's geometry. It has to be called after changes
// to the entries or to the anchor's geometry.
func (m *Menu[V]) Refresh() {
	w := m.minWidth
	for _, e := range m.entries {
		if ew := m.measure(e.Label) + 2; ew > w {
			w = ew
		}
	}
	m.w, m.h = w, len(m.entries)

	position := m.position
	if m.isRtl() {
		position = position.Flipped()
	}
	ax, ay, aw, ah := m.anchor()
	atX, atY := anchorPoint(position.At, ax, ay, aw, ah)
	myX, myY := anchorPoint(position.My, 0, 0, m.w, m.h)
	m.x, m.y = atX-myX, atY-myY
}

// anchorPoint resolves an alignment descriptor such as "left top" to a point
// of the given rectangle.
func anchorPoint(descriptor string, x, y, w, h int) (int, int) {
	px, py := x, y
	for _, segment := range strings.Fields(descriptor) {
		switch {
		case strings.HasPrefix(segment, "left"):
			px = x
		case strings.HasPrefix(segment, "right"):
			px = x + w
		case strings.HasPrefix(segment, "top"):
			py = y
		case strings.HasPrefix(segment, "bottom"):
			py = y + h
		case strings.HasPrefix(segment, "center"):
			px = x + w/2
		}
	}
	return px, py
}

// Dimensions returns the menu's (cached) geometry.
func (m *Menu[V]) Dimensions() (x, y, w, h int) { return m.x, m.y, m.w, m.h }

// Contains reports whether the given position lies within the menu.
// A hidden menu contains nothing.
func (m *Menu[V]) Contains(x, y int) bool {
	return m.visible && x >= m.x && x < m.x+m.w && y >= m.y && y < m.y+m.h
}

// EntryAt returns the entry at the given position.
func (m *Menu[V]) EntryAt(x, y int) (MenuEntry[V], bool) {
	if !m.Contains(x, y) {
		return MenuEntry[V]{}, false
	}
	return m.entries[y-m.y].MenuEntry, true
}

// Show shows the menu, focussing the active entry.
func (m *Menu[V]) Show() {
	m.visible = true
	m.focussed = -1
	for i, e := range m.entries {
		if e.Active {
			m.focussed = i
		}
	}
	m.Refresh()
}

// Hide hides the menu.
func (m *Menu[V]) Hide() { m.visible = false }

// Toggle shows the menu if it is hidden and hides it otherwise.
func (m *Menu[V]) Toggle() {
	if m.visible {
		m.Hide()
	} else {
		m.Show()
	}
}

// Visible reports whether the menu is shown.
func (m *Menu[V]) Visible() bool { return m.visible }

// FocusNext moves the keyboard focus to the next entry, wrapping around.
func (m *Menu[V]) FocusNext() {
	if len(m.entries) == 0 {
		return
	}
	m.focussed = (m.focussed + 1) % len(m.entries)
}

// FocusPrev moves the keyboard focus to the previous entry, wrapping around.
func (m *Menu[V]) FocusPrev() {
	if len(m.entries) == 0 {
		return
	}
	if m.focussed < 0 {
		m.focussed = len(m.entries) - 1
		return
	}
	m.focussed = (m.focussed - 1 + len(m.entries)) % len(m.entries)
}

// Focussed returns the keyboard-focussed entry, if any.
func (m *Menu[V]) Focussed() (MenuEntry[V], bool) {
	if m.focussed < 0 || m.focussed >= len(m.entries) {
		return MenuEntry[V]{}, false
	}
	return m.entries[m.focussed].MenuEntry, true
}

// FocussedIndex returns the index of the keyboard-focussed entry, or -1.
func (m *Menu[V]) FocussedIndex() int { return m.focussed }
