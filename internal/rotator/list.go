// Package rotator implements the list rotator, a widget that rotates through
// an ordered list of labeled values.
//
// The previous and next value (relative to the current one) are shown next to
// the current value and can be clicked to rotate to them, which is animated.
// Activating the current value opens a drop-down menu from which any value can
// be selected directly. An additional "auto" section allows signalling that no
// value has been chosen explicitly.
package rotator

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by the mutating List operations for indices
// that are not consistent with the list's length.
var ErrIndexOutOfRange = errors.New("index out of range")

// Item is a single value of a rotator together with the label it is shown by.
//
// Custom marks values that are not part of the predefined values but were
// injected (e.g. because they are held by an upstream value owner).
type Item[V comparable] struct {
	Value  V
	Label  string
	Custom bool
}

// List is the ordered list of values a rotator rotates through.
//
// No two items may share a value; this is not enforced by List.
type List[V comparable] struct {
	items []Item[V]
}

// NewList returns a new list containing (a copy of) the given items.
func NewList[V comparable](items []Item[V]) *List[V] {
	l := &List[V]{items: make([]Item[V], len(items))}
	copy(l.items, items)
	return l
}

// Len returns the number of items in the list.
func (l *List[V]) Len() int { return len(l.items) }

// At returns the item at the given index.
// Panics, if the index is out of range.
func (l *List[V]) At(i int) Item[V] { return l.items[i] }

// IndexOf returns the index of the first item holding the given value, and
// whether such an item exists at all.
func (l *List[V]) IndexOf(v V) (int, bool) {
	for i := range l.items {
		if l.items[i].Value == v {
			return i, true
		}
	}
	return 0, false
}

// Insert inserts the item at the given index, moving all following items back
// by one. The index may equal the length of the list, appending the item.
func (l *List[V]) Insert(item Item[V], index int) (int, error) {
	if index < 0 || index > len(l.items) {
		return 0, fmt.Errorf("cannot insert at %d into list of length %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	l.items = append(l.items, Item[V]{})
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
	return index, nil
}

// RemoveAt removes the item at the given index.
func (l *List[V]) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("cannot remove at %d from list of length %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Items returns a copy of the items.
func (l *List[V]) Items() []Item[V] {
	result := make([]Item[V], len(l.items))
	copy(result, l.items)
	return result
}

// Labels returns the labels of all items, in order.
func (l *List[V]) Labels() []string {
	labels := make([]string, len(l.items))
	for i := range l.items {
		labels[i] = l.items[i].Label
	}
	return labels
}
