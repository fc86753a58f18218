// Package action provides the actions input is mapped to.
package action

// Action is something that can be done in response to input, e.g. rotating
// to the next value.
type Action interface {
	// Do performs the action.
	Do()

	// Undoable reports whether the action can be undone.
	Undoable() bool

	// Undo undoes the action, if it is undoable.
	Undo()

	// Explain returns a short explanation of the action, e.g. for a help
	// display.
	Explain() string
}
