package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/tui"
)

func newSimulation(t *testing.T, w, h int) (tcell.SimulationScreen, *tui.ScreenHandler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	handler, err := tui.NewScreenHandlerFor(screen)
	if err != nil {
		t.Fatal("could not initialize simulation screen:", err.Error())
	}
	t.Cleanup(handler.Fini)
	screen.SetSize(w, h)
	return screen, handler
}

func row(screen tcell.SimulationScreen, y, w int) string {
	result := []rune{}
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		result = append(result, r)
	}
	return string(result)
}

func TestDrawText(t *testing.T) {
	style := styling.StyleFromHex("#ffffff", "#000000")

	t.Run("wraps at width", func(t *testing.T) {
		screen, handler := newSimulation(t, 10, 3)
		handler.DrawText(1, 0, 3, 2, style, "abcdefgh")
		handler.Show()
		if r := row(screen, 0, 10); r != " abc      " {
			t.Errorf("unexpected first row '%s'", r)
		}
		if r := row(screen, 1, 10); r != " def      " {
			t.Errorf("unexpected second row '%s'", r)
		}
		if r := row(screen, 2, 10); r != "          " {
			t.Errorf("unexpected third row '%s'", r)
		}
	})

	t.Run("zero dimensions draw nothing", func(t *testing.T) {
		screen, handler := newSimulation(t, 4, 1)
		handler.DrawText(0, 0, 0, 1, style, "abcd")
		handler.Show()
		if r := row(screen, 0, 4); r != "    " {
			t.Errorf("unexpected row '%s'", r)
		}
	})
}

func TestDrawBox(t *testing.T) {
	screen, handler := newSimulation(t, 4, 2)
	box := styling.StyleFromHex("#000000", "#ff0000")
	handler.DrawText(0, 0, 4, 2, box, "xxxxxxxx")
	handler.DrawBox(1, 0, 2, 2, box)
	handler.Show()
	if r := row(screen, 0, 4); r != "x  x" {
		t.Errorf("unexpected row '%s'", r)
	}
	_, _, s, _ := screen.GetContent(1, 1)
	_, expected, _ := box.AsTcell().Decompose()
	if _, bg, _ := s.Decompose(); bg != expected {
		t.Error("box not drawn in the style's background")
	}
	if _, _, w, h := handler.Dimensions(); w != 4 || h != 2 {
		t.Error("unexpected dimensions", w, h)
	}
}
