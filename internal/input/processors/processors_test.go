package processors_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/valueview/internal/control/action"
	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/input/processors"
)

func TestModalInputProcessor(t *testing.T) {
	l := input.Key{Key: tcell.KeyRune, Ch: 'l'}
	j := input.Key{Key: tcell.KeyRune, Ch: 'j'}
	esc := input.Key{Key: tcell.KeyESC}

	t.Run("CapturesInput", func(t *testing.T) {
		base := dummySIP{}
		m := processors.NewModalInputProcessor(&base)
		if m.CapturesInput() {
			t.Error("claims to capture input, initially")
		}
		base.captures = true
		if !m.CapturesInput() {
			t.Error("does not capture input, despite its base processor doing so")
		}
		m.ApplyModalOverlay(&dummySIP{})
		if m.CapturesInput() {
			t.Error("captures input, despite its overlay not capturing")
		}
		m.ApplyModalOverlay(input.CapturingOverlayWrap(&dummySIP{}))
		if !m.CapturesInput() {
			t.Error("does not capture input, despite its capturing overlay")
		}
	})

	t.Run("overlays", func(t *testing.T) {
		rotator := dummySIP{inputs: map[input.Key]bool{l: true}}
		menu := dummySIP{inputs: map[input.Key]bool{j: true, esc: true}}
		m := processors.NewModalInputProcessor(&rotator)

		check := func(msg string, expected [3]bool) {
			t.Helper()
			actual := [3]bool{m.ProcessInput(l), m.ProcessInput(j), m.ProcessInput(esc)}
			if actual != expected {
				t.Error(msg, "check failed:", expected, "!=", actual)
			}
		}

		check("base", [3]bool{true, false, false})
		if m.Overlaid() {
			t.Error("claims to be overlaid initially")
		}

		if index := m.ApplyModalOverlay(&menu); index != 0 {
			t.Error("unexpected overlay index", index)
		}
		check("menu", [3]bool{false, true, true})
		if !m.Overlaid() {
			t.Error("does not claim to be overlaid")
		}

		if err := m.PopModalOverlay(); err != nil {
			t.Error("unexpected error:", err.Error())
		}
		check("base again", [3]bool{true, false, false})
		if err := m.PopModalOverlay(); !errors.Is(err, processors.ErrNoOverlay) {
			t.Error("expected ErrNoOverlay, got", err)
		}

		m.ApplyModalOverlay(&menu)
		second := m.ApplyModalOverlay(&rotator)
		m.ApplyModalOverlay(&menu)
		m.PopModalOverlays(1000)
		check("no-op pop", [3]bool{false, true, true})
		m.PopModalOverlays(second)
		check("down to first overlay", [3]bool{false, true, true})
		m.PopModalOverlays(0)
		check("down to base", [3]bool{true, false, false})
	})

	t.Run("with trees", func(t *testing.T) {
		rotated := 0
		closed := false
		base, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"l": action.NewSimple(action.Static("next"), func() { rotated++ }),
		})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		m := processors.NewModalInputProcessor(base)

		var overlayIndex uint
		menu, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<esc>": action.NewSimple(action.Static("close menu"), func() { closed = true; m.PopModalOverlays(overlayIndex) }),
		})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		overlayIndex = m.ApplyModalOverlay(input.CapturingOverlayWrap(menu))

		if m.ProcessInput(l) || rotated != 0 {
			t.Error("base mapping applied while menu overlay is present")
		}
		if !m.ProcessInput(esc) || !closed {
			t.Error("menu not closed")
		}
		if !m.ProcessInput(l) || rotated != 1 {
			t.Error("base mapping not applied after menu overlay was removed")
		}
		if help := m.GetHelp(); len(help) != 1 || help["l"] != "next" {
			t.Error("unexpected help", help)
		}
	})

}

type dummySIP struct {
	captures bool
	inputs   map[input.Key]bool
	help     map[string]string
}

func (d *dummySIP) CapturesInput() bool           { return d.captures }
func (d *dummySIP) ProcessInput(k input.Key) bool { return d.inputs[k] }
func (d *dummySIP) GetHelp() input.Help           { return d.help }
