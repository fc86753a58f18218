package rotator_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/ja-he/valueview/internal/rotator"
)

func TestManualScheduler(t *testing.T) {
	s := rotator.NewManualScheduler()
	calls := []string{}
	record := func(name string) func() { return func() { calls = append(calls, name) } }

	s.AfterFunc(20*time.Millisecond, record("second"))
	s.AfterFunc(10*time.Millisecond, record("first"))
	s.AfterFunc(20*time.Millisecond, record("third"))
	s.AfterFunc(10*time.Millisecond, func() {
		calls = append(calls, "first-nested")
		s.AfterFunc(5*time.Millisecond, record("nested"))
		s.AfterFunc(50*time.Millisecond, record("late"))
	})

	s.Advance(5 * time.Millisecond)
	if len(calls) != 0 {
		t.Error("called before due:", calls)
	}
	s.Advance(15 * time.Millisecond)
	expected := []string{"first", "first-nested", "nested", "second", "third"}
	if !reflect.DeepEqual(calls, expected) {
		t.Error("expected", expected, "got", calls)
	}
	if s.Pending() != 1 {
		t.Error("expected one pending function, got", s.Pending())
	}
	s.Advance(40 * time.Millisecond)
	if calls[len(calls)-1] != "late" || s.Pending() != 0 {
		t.Error("late function not called")
	}
}

func TestLoopScheduler(t *testing.T) {

	t.Run("posts into the loop", func(t *testing.T) {
		callbacks := make(chan func(), 1)
		done := make(chan struct{})
		defer close(done)
		s := rotator.NewLoopScheduler(callbacks, done)

		called := false
		s.AfterFunc(time.Millisecond, func() { called = true })
		select {
		case f := <-callbacks:
			if called {
				t.Fatal("called off the loop")
			}
			f()
		case <-time.After(time.Second):
			t.Fatal("nothing posted")
		}
		if !called {
			t.Error("posted function is not the scheduled one")
		}
	})

	t.Run("drops when done", func(t *testing.T) {
		callbacks := make(chan func())
		done := make(chan struct{})
		s := rotator.NewLoopScheduler(callbacks, done)
		close(done)
		s.AfterFunc(0, func() {})
		select {
		case <-callbacks:
			t.Error("posted after done")
		case <-time.After(20 * time.Millisecond):
		}
	})

}
