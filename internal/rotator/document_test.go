package rotator_test

import (
	"testing"

	"github.com/ja-he/valueview/internal/rotator"
)

func TestDocumentListener(t *testing.T) {
	if rotator.LiveRotators() != 0 || rotator.DocumentListenerInstalled() {
		t.Fatal("rotators left over from other tests")
	}

	opts := rotator.DefaultOptions(abc(), nil)
	opts.Scheduler = rotator.NewManualScheduler()

	w1, err := rotator.NewWidget(opts)
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	if !rotator.DocumentListenerInstalled() {
		t.Error("listener not installed for first rotator")
	}
	w2, err := rotator.NewWidget(opts)
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	if rotator.LiveRotators() != 2 {
		t.Error("expected two live rotators, got", rotator.LiveRotators())
	}

	w1.Destroy()
	if !rotator.DocumentListenerInstalled() {
		t.Error("listener removed while a rotator is still live")
	}
	w2.Destroy()
	if rotator.DocumentListenerInstalled() || rotator.LiveRotators() != 0 {
		t.Error("listener not removed after last rotator was destroyed")
	}
}

func TestOutsideClick(t *testing.T) {
	upper, _, _ := newTestWidget(t, abc(), nil)
	lower, _, _ := newTestWidget(t, abc(), nil)
	upper.Layout(0, 0)
	lower.Layout(0, 10)
	upper.ShowMenu()
	lower.ShowMenu()

	// in the upper rotator's menu
	rotator.DispatchDocumentClick(13, 2)
	if !upper.Menu().Visible() {
		t.Error("click into menu dismissed it")
	}
	if lower.Menu().Visible() {
		t.Error("click outside of rotator did not dismiss its menu")
	}

	// on the upper rotator's next section
	rotator.DispatchDocumentClick(18, 0)
	if upper.Menu().Visible() {
		t.Error("click outside of curr section and menu did not dismiss the menu")
	}

	upper.ShowMenu()
	rotator.DispatchDocumentClick(13, 0)
	if !upper.Menu().Visible() {
		t.Error("click on curr section dismissed the menu")
	}
}
