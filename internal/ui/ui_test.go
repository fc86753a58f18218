package ui_test

import (
	"testing"

	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/ui"
)

type textCall struct {
	x, y, w, h int
	text       string
}

type recordingRenderer struct {
	texts []textCall
	boxes [][4]int
}

func (r *recordingRenderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	r.boxes = append(r.boxes, [4]int{x, y, w, h})
}
func (r *recordingRenderer) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	r.texts = append(r.texts, textCall{x, y, w, h, text})
}

func TestConstrainedRenderer(t *testing.T) {
	style := styling.StyleFromHex("#ffffff", "#000000")

	t.Run("box within bounds is unchanged", func(t *testing.T) {
		r := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(r, func() (int, int, int, int) { return 0, 0, 10, 5 })
		cr.DrawBox(1, 1, 3, 2, style)
		if len(r.boxes) != 1 || r.boxes[0] != [4]int{1, 1, 3, 2} {
			t.Error("unexpected boxes", r.boxes)
		}
	})

	t.Run("box is truncated", func(t *testing.T) {
		r := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(r, func() (int, int, int, int) { return 2, 2, 4, 4 })
		cr.DrawBox(0, 3, 10, 10, style)
		if len(r.boxes) != 1 || r.boxes[0] != [4]int{2, 3, 4, 3} {
			t.Error("unexpected boxes", r.boxes)
		}
	})

	t.Run("box outside is dropped", func(t *testing.T) {
		r := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(r, func() (int, int, int, int) { return 2, 2, 4, 4 })
		cr.DrawBox(10, 2, 3, 1, style)
		if len(r.boxes) != 0 {
			t.Error("unexpected boxes", r.boxes)
		}
	})

	t.Run("text left of constraint is clipped", func(t *testing.T) {
		r := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(r, func() (int, int, int, int) { return 5, 0, 4, 1 })
		cr.DrawText(3, 0, 6, 1, style, "Monday")
		if len(r.texts) != 1 {
			t.Fatal("expected one text draw, got", r.texts)
		}
		if r.texts[0] != (textCall{5, 0, 4, 1, "nday"}) {
			t.Error("unexpected text draw", r.texts[0])
		}
	})

	t.Run("text entirely left of constraint is dropped", func(t *testing.T) {
		r := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(r, func() (int, int, int, int) { return 5, 0, 4, 1 })
		cr.DrawText(0, 0, 3, 1, style, "Mon")
		if len(r.texts) != 0 {
			t.Error("unexpected text draws", r.texts)
		}
	})
}

type fakeCursor struct {
	shown *ui.CursorLocation
}

func (c *fakeCursor) HideCursor()                    { c.shown = nil }
func (c *fakeCursor) ShowCursor(l ui.CursorLocation) { c.shown = &l }

func TestCursorWrangler(t *testing.T) {
	c := &fakeCursor{}
	w := ui.NewCursorWrangler(c)

	w.Put(ui.CursorLocation{X: 1, Y: 2}, "a")
	w.Enact()
	if c.shown == nil || *c.shown != (ui.CursorLocation{X: 1, Y: 2}) {
		t.Fatal("cursor not shown at requested location")
	}

	w.Put(ui.CursorLocation{X: 3, Y: 4}, "b")
	w.Delete("a")
	if l, ok := w.Location(); !ok || l != (ui.CursorLocation{X: 3, Y: 4}) {
		t.Error("deletion by superseded requester removed cursor")
	}

	w.Delete("b")
	w.Enact()
	if c.shown != nil {
		t.Error("cursor still shown after deletion")
	}
}
