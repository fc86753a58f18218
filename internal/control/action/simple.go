package action

// Simple implements the Action interface.
// It models a simple, non-undoable action as a func() which is called on Do.
type Simple struct {
	action  func()
	explain func() string
}

// Do performs this simple action.
func (a *Simple) Do() {
	a.action()
}

// Undoable always returns false, a simple action cannot be undone.
func (a *Simple) Undoable() bool { return false }

// Undo does nothing.
func (a *Simple) Undo() {}

// Explain returns the explanation for this simple action.
// The explanation is produced anew on every call, so that it may reflect
// state, e.g. "enable" vs. "disable" for a toggle.
func (a *Simple) Explain() string {
	if a.explain == nil {
		return ""
	}
	return a.explain()
}

// NewSimple returns a pointer to a new simple action, which stores the given
// action function and the given explainer to use when prompted with Do or
// Explain respectively.
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}

// Static returns an explainer always giving the same explanation.
func Static(explanation string) func() string {
	return func() string { return explanation }
}
