package action

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAction is returned when looking up an action by a name no action
// is registered under.
var ErrUnknownAction = errors.New("unknown action")

// Set is a set of actions by name, as they are referred to in key mappings.
type Set map[string]Action

// Lookup returns the action registered under the given name.
func (s Set) Lookup(name string) (Action, error) {
	a, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("'%s': %w", name, ErrUnknownAction)
	}
	return a, nil
}

// Names returns the names of all actions in the set, sorted.
func (s Set) Names() []string {
	result := make([]string, 0, len(s))
	for name := range s {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
