package action_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ja-he/valueview/internal/control/action"
)

func TestSimpleInterface(t *testing.T) {

	t.Run("Do(/Undo)", func(t *testing.T) {
		calls := 0
		s := action.NewSimple(action.Static("counts"), func() { calls++ })
		s.Do()
		s.Do()
		if calls != 2 {
			t.Error("expected two calls, got", calls)
		}

		s.Undo()
		if calls != 2 {
			t.Error("undo did something?!")
		}
		if s.Undoable() {
			t.Error("simple action claims to be undoable")
		}
	})

	t.Run("Explain", func(t *testing.T) {
		disabled := false
		s := action.NewSimple(func() string {
			if disabled {
				return "enable"
			}
			return "disable"
		}, func() { disabled = !disabled })
		if s.Explain() != "disable" {
			t.Error("initial explanation wrong:", s.Explain())
		}
		s.Do()
		if s.Explain() != "enable" {
			t.Error("explanation does not follow state:", s.Explain())
		}

		if action.NewSimple(nil, func() {}).Explain() != "" {
			t.Error("expected empty explanation without explainer")
		}
	})

}

func TestSet(t *testing.T) {
	next := action.NewSimple(action.Static("next"), func() {})
	set := action.Set{
		"next": next,
		"prev": action.NewSimple(action.Static("prev"), func() {}),
	}

	a, err := set.Lookup("next")
	if err != nil || a != action.Action(next) {
		t.Error("lookup of registered action failed:", err)
	}
	if _, err := set.Lookup("sideways"); !errors.Is(err, action.ErrUnknownAction) {
		t.Error("expected ErrUnknownAction, got", err)
	}
	if !reflect.DeepEqual(set.Names(), []string{"next", "prev"}) {
		t.Error("unexpected names", set.Names())
	}
}
