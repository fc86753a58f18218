package input

import (
	"errors"
	"fmt"

	"github.com/ja-he/valueview/internal/control/action"
)

// ErrConflictingMapping is returned when a key sequence is a prefix of another
// sequence mapped to an action (or equal to it), as it could never be
// completed.
var ErrConflictingMapping = errors.New("conflicting key mapping")

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-g     -> first            "gg" -> first
//	+-e     -> last             "ge" -> last
//	l       -> next             "l"  -> next
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input or advanced along a sequence.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether the tree is in the middle of a sequence, in
// which case it ought to take priority over other processors.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// ConstructInputTree construct a Tree for the given mappings of input
// sequence strings to actions.
// If the given mapping is invalid, this returns an error.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := NewNode()

	for mapping, a := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec: %w", err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped to '%s'", a.Explain())
		}

		current := root
		for i, key := range sequence {
			next, ok := current.Children[key]
			last := i == len(sequence)-1
			switch {
			case !ok && last:
				next = NewLeaf(a)
				current.Children[key] = next
			case !ok:
				next = NewNode()
				current.Children[key] = next
			case next.Action != nil || last:
				return nil, fmt.Errorf("sequence '%s': %w", mapping, ErrConflictingMapping)
			}
			current = next
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// ConstructInputTreeFromConfig constructs a Tree for mappings as found in a
// config file, which refer to actions of the given set by name.
func ConstructInputTreeFromConfig(
	spec map[Keyspec]Actionspec,
	actions action.Set,
) (*Tree, error) {
	resolved := make(map[Keyspec]action.Action, len(spec))
	for keyspec, actionspec := range spec {
		a, err := actions.Lookup(string(actionspec))
		if err != nil {
			return nil, fmt.Errorf("mapping for '%s': %w", keyspec, err)
		}
		resolved[keyspec] = a
	}
	return ConstructInputTree(resolved)
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
