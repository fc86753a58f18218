package rotator_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ja-he/valueview/internal/rotator"
)

func abc() []rotator.Item[string] {
	return []rotator.Item[string]{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B"},
		{Value: "c", Label: "C"},
	}
}

func TestList(t *testing.T) {

	t.Run("IndexOf", func(t *testing.T) {
		l := rotator.NewList(abc())
		if i, ok := l.IndexOf("c"); !ok || i != 2 {
			t.Error("expected 'c' at index 2, got", i, ok)
		}
		if _, ok := l.IndexOf("x"); ok {
			t.Error("found value not in list")
		}
	})

	t.Run("copies items", func(t *testing.T) {
		items := abc()
		l := rotator.NewList(items)
		items[0].Label = "changed"
		if l.At(0).Label != "A" {
			t.Error("list shares backing array with given items")
		}
	})

	t.Run("Insert", func(t *testing.T) {
		l := rotator.NewList(abc())
		index, err := l.Insert(rotator.Item[string]{Value: "x", Label: "X"}, 1)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if index != 1 {
			t.Error("unexpected index", index)
		}
		expected := []string{"A", "X", "B", "C"}
		if !reflect.DeepEqual(l.Labels(), expected) {
			t.Error("expected", expected, "got", l.Labels())
		}

		if _, err := l.Insert(rotator.Item[string]{Value: "y"}, l.Len()); err != nil {
			t.Error("appending failed:", err.Error())
		}
		if _, err := l.Insert(rotator.Item[string]{Value: "z"}, l.Len()+1); !errors.Is(err, rotator.ErrIndexOutOfRange) {
			t.Error("expected out of range error, got", err)
		}
		if _, err := l.Insert(rotator.Item[string]{Value: "z"}, -1); !errors.Is(err, rotator.ErrIndexOutOfRange) {
			t.Error("expected out of range error, got", err)
		}
	})

	t.Run("RemoveAt", func(t *testing.T) {
		l := rotator.NewList(abc())
		if err := l.RemoveAt(1); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !reflect.DeepEqual(l.Labels(), []string{"A", "C"}) {
			t.Error("unexpected labels after removal", l.Labels())
		}
		if err := l.RemoveAt(2); !errors.Is(err, rotator.ErrIndexOutOfRange) {
			t.Error("expected out of range error, got", err)
		}
	})

	t.Run("insert and remove round trip", func(t *testing.T) {
		l := rotator.NewList(abc())
		before := l.Items()
		index, err := l.Insert(rotator.Item[string]{Value: "x", Label: "X", Custom: true}, l.Len())
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if err := l.RemoveAt(index); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !reflect.DeepEqual(before, l.Items()) {
			t.Error("list changed by round trip:", before, "!=", l.Items())
		}
	})

}
