package extender_test

import (
	"testing"
	"time"

	"github.com/ja-he/valueview/internal/rotator"
	"github.com/ja-he/valueview/internal/rotator/extender"
)

type testHost struct {
	mounted []*rotator.Widget[string]
}

func (h *testHost) Mount(w *rotator.Widget[string]) { h.mounted = append(h.mounted, w) }

// upstream is a minimal owner of a value, as e.g. the editor of a composite
// value would be.
type upstream struct {
	value   *rotator.Item[string]
	changes []*string
}

func (u *upstream) get() *rotator.Item[string] { return u.value }

func (u *upstream) set(v *string) {
	u.changes = append(u.changes, v)
	if v == nil {
		u.value = nil
	} else {
		u.value = &rotator.Item[string]{Value: *v}
	}
}

func values() []rotator.Item[string] {
	return []rotator.Item[string]{
		{Value: "day", Label: "day"},
		{Value: "month", Label: "month"},
		{Value: "year", Label: "year"},
	}
}

func setup(t *testing.T, u *upstream) (*extender.Listrotator[string], *rotator.ManualScheduler, *testHost) {
	t.Helper()
	s := rotator.NewManualScheduler()
	opts := rotator.DefaultOptions[string](nil, nil)
	opts.Scheduler = s
	l, err := extender.New(values(), u.set, u.get, opts)
	if err != nil {
		t.Fatal("could not construct extender:", err.Error())
	}
	t.Cleanup(l.Destroy)
	h := &testHost{}
	l.Init(h)
	return l, s, h
}

func TestInit(t *testing.T) {
	u := &upstream{}
	l, _, h := setup(t, u)
	if len(h.mounted) != 1 || h.mounted[0] != l.Rotator {
		t.Error("rotator not mounted into host")
	}
	if !l.Rotator.Sections().WidthsInitialized() {
		t.Error("widths not initialized on init")
	}
	if l.GetValue() != nil {
		t.Error("expected no value while in auto state")
	}
}

func TestValueChange(t *testing.T) {

	t.Run("selection reported upstream", func(t *testing.T) {
		u := &upstream{}
		l, s, _ := setup(t, u)
		l.Rotator.Next()
		s.Advance(time.Second)
		if len(u.changes) != 1 || u.changes[0] == nil || *u.changes[0] != "month" {
			t.Fatal("expected change to 'month', got", u.changes)
		}
		if v := l.GetValue(); v == nil || *v != "month" {
			t.Error("expected value 'month' right after selection, got", v)
		}
	})

	t.Run("selection of upstream value not reported", func(t *testing.T) {
		u := &upstream{value: &rotator.Item[string]{Value: "month"}}
		l, s, _ := setup(t, u)
		l.Rotator.Next()
		s.Advance(time.Second)
		if len(u.changes) != 0 {
			t.Error("reported value upstream already holds:", u.changes)
		}
	})

	t.Run("auto reported as nil", func(t *testing.T) {
		u := &upstream{}
		l, s, _ := setup(t, u)
		l.Rotator.Next()
		s.Advance(time.Second)
		l.Rotator.SelectAuto()
		if len(u.changes) != 2 || u.changes[1] != nil {
			t.Fatal("expected auto reported as nil, got", u.changes)
		}
		if l.GetValue() != nil {
			t.Error("expected no value after auto")
		}
		if u.value != nil {
			t.Error("upstream still holds a value")
		}
	})

	t.Run("auto not reported without upstream value", func(t *testing.T) {
		u := &upstream{}
		l, _, _ := setup(t, u)
		l.Rotator.Activate(nil)
		l.Rotator.SelectAuto()
		if len(u.changes) != 0 {
			t.Error("reported auto although upstream holds no value:", u.changes)
		}
	})

}

func TestDraw(t *testing.T) {

	t.Run("absent upstream value", func(t *testing.T) {
		u := &upstream{}
		l, _, _ := setup(t, u)
		l.Draw()
		if l.Rotator.Value() != "day" || !l.Rotator.AutoActive() {
			t.Error("draw without upstream value changed the rotator")
		}
	})

	t.Run("follows upstream while auto", func(t *testing.T) {
		u := &upstream{value: &rotator.Item[string]{Value: "year"}}
		l, s, _ := setup(t, u)
		l.Draw()
		if l.Rotator.Value() != "year" {
			t.Errorf("expected 'year', got '%s'", l.Rotator.Value())
		}
		if !l.Rotator.AutoActive() || l.GetValue() != nil {
			t.Error("following upstream left the auto state")
		}
		if s.Pending() != 0 {
			t.Error("following upstream animated")
		}
	})

	t.Run("keeps explicit value", func(t *testing.T) {
		u := &upstream{}
		l, s, _ := setup(t, u)
		l.Rotator.Next()
		s.Advance(time.Second)
		u.value = &rotator.Item[string]{Value: "year"}
		l.Draw()
		if l.Rotator.Value() != "month" {
			t.Errorf("draw overrode explicitly chosen value, got '%s'", l.Rotator.Value())
		}
	})

	t.Run("custom value", func(t *testing.T) {
		u := &upstream{value: &rotator.Item[string]{Value: "decade", Label: "decade", Custom: true}}
		l, _, _ := setup(t, u)
		l.Draw()
		if len(l.Rotator.Items()) != 4 || l.Rotator.Menu().Len() != 4 {
			t.Fatal("custom value not injected")
		}
		if l.Rotator.Value() != "decade" {
			t.Errorf("expected custom value current, got '%s'", l.Rotator.Value())
		}
		if l.Rotator.AutoActive() {
			t.Error("custom value shown in auto state")
		}
		if v := l.GetValue(); v == nil || *v != "decade" {
			t.Error("expected value 'decade', got", v)
		}

		l.Draw()
		if len(l.Rotator.Items()) != 4 {
			t.Error("custom value injected twice")
		}

		u.value = &rotator.Item[string]{Value: "year"}
		l.Draw()
		if len(l.Rotator.Items()) != 3 || l.Rotator.Menu().Len() != 3 {
			t.Error("custom value not removed")
		}
		for i, item := range l.Rotator.Items() {
			if item != values()[i] {
				t.Error("list not restored after removing custom value:", l.Rotator.Items())
			}
		}
		if v := l.GetValue(); v == nil || *v != "year" {
			t.Error("expected rotator to follow upstream off the removed custom value, got", v)
		}
		if len(u.changes) != 0 {
			t.Error("following upstream reported a change:", u.changes)
		}
	})

	t.Run("custom value dropped upstream", func(t *testing.T) {
		u := &upstream{value: &rotator.Item[string]{Value: "decade", Label: "decade", Custom: true}}
		l, _, _ := setup(t, u)
		l.Draw()
		u.value = nil
		l.Draw()
		if len(l.Rotator.Items()) != 3 {
			t.Error("custom value not removed")
		}
		if !l.Rotator.AutoActive() || l.GetValue() != nil {
			t.Error("expected auto state once upstream holds no value, got", l.GetValue())
		}
		if len(u.changes) != 0 {
			t.Error("following upstream reported a change:", u.changes)
		}
	})

	t.Run("custom value not current", func(t *testing.T) {
		u := &upstream{value: &rotator.Item[string]{Value: "decade", Label: "decade", Custom: true}}
		l, s, _ := setup(t, u)
		l.Draw()
		l.Rotator.Prev()
		s.Advance(time.Second)
		if len(u.changes) != 1 || u.changes[0] == nil || *u.changes[0] != "year" {
			t.Fatal("expected change to 'year', got", u.changes)
		}
		l.Draw()
		if l.Rotator.Value() != "year" || len(l.Rotator.Items()) != 3 {
			t.Error("unexpected state after leaving the custom value:", l.Rotator.Value(), l.Rotator.Items())
		}
	})

}

func TestDestroy(t *testing.T) {
	u := &upstream{}
	l, s, _ := setup(t, u)
	l.Rotator.Next()
	l.Destroy()
	s.Advance(time.Second)
	if len(u.changes) != 0 {
		t.Error("destroyed extender reported value")
	}
	l.Draw()
	l.Destroy()
	if !l.Rotator.Destroyed() {
		t.Error("rotator not destroyed")
	}
}
