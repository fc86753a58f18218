package panes_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/valueview/internal/config"
	"github.com/ja-he/valueview/internal/control/action"
	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/input/processors"
	"github.com/ja-he/valueview/internal/potatolog"
	"github.com/ja-he/valueview/internal/rotator"
	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/tui"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/ui/panes"
)

// With a title width of 5 and labels of width 1 the rotator in the first row
// is laid out as
//   title [0,5) auto [6,12) prev [12,17) curr [17,22) next [22,27)
// with its menu below curr at [17,22)x[1,4).
const (
	titleWidth = 5
	currLabelX = 19
	nextLabelX = 24
	nextIconX  = 26
	menuLabelX = 18
)

type fixture struct {
	screen     tcell.SimulationScreen
	handler    *tui.ScreenHandler
	stylesheet styling.Stylesheet
	scheduler  *rotator.ManualScheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	handler, err := tui.NewScreenHandlerFor(screen)
	if err != nil {
		t.Fatal("could not initialize simulation screen:", err.Error())
	}
	t.Cleanup(handler.Fini)
	screen.SetSize(40, 10)

	stylesheet, err := styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
	if err != nil {
		t.Fatal("could not build stylesheet:", err.Error())
	}
	return &fixture{screen: screen, handler: handler, stylesheet: *stylesheet, scheduler: rotator.NewManualScheduler()}
}

func (f *fixture) cell(x, y int) rune {
	r, _, _, _ := f.screen.GetContent(x, y)
	return r
}

func (f *fixture) fg(x, y int) tcell.Color {
	_, _, style, _ := f.screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

func fgOf(s styling.DrawStyling) tcell.Color {
	fg, _, _ := s.AsTcell().Decompose()
	return fg
}

func (f *fixture) widget(t *testing.T) *rotator.Widget[string] {
	t.Helper()
	opts := rotator.DefaultOptions([]rotator.Item[string]{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B"},
		{Value: "c", Label: "C"},
	}, nil)
	opts.Scheduler = f.scheduler
	opts.Animation.Duration = 100 * time.Millisecond
	opts.Animation.FrameInterval = 50 * time.Millisecond
	w, err := rotator.NewWidget(opts)
	if err != nil {
		t.Fatal("could not construct rotator:", err.Error())
	}
	t.Cleanup(w.Destroy)
	return w
}

func (f *fixture) rotatorPane(t *testing.T, row int, inputProcessor input.ModalInputProcessor, menuInput input.SimpleInputProcessor) (*panes.RotatorPane[string], *rotator.Widget[string]) {
	t.Helper()
	p := panes.NewRotatorPane[string](
		ui.NewConstrainedRenderer(f.handler, func() (int, int, int, int) { return 0, row, 40, 1 }),
		f.handler,
		func() (int, int, int, int) { return 0, row, 40, 1 },
		f.stylesheet,
		func() string { return "prio" },
		titleWidth,
		nil,
		inputProcessor,
		menuInput,
		nil,
	)
	w := f.widget(t)
	p.Mount(w)
	return p, w
}

func TestRotatorPaneDraw(t *testing.T) {

	t.Run("title and sections", func(t *testing.T) {
		f := newFixture(t)
		p, _ := f.rotatorPane(t, 0, nil, nil)
		p.Draw()
		f.handler.Show()

		for x, expected := range map[int]rune{
			0:          'p',
			7:          'a',
			12:         ' ',
			currLabelX: 'A',
			nextLabelX: 'B',
			nextIconX:  '▸',
		} {
			if actual := f.cell(x, 0); actual != expected {
				t.Errorf("expected '%c' at %d, got '%c'", expected, x, actual)
			}
		}
	})

	t.Run("menu overlay", func(t *testing.T) {
		f := newFixture(t)
		p, w := f.rotatorPane(t, 0, nil, nil)
		p.Draw()
		p.DrawOverlay()
		f.handler.Show()
		if f.cell(menuLabelX, 1) != ' ' {
			t.Error("hidden menu was drawn")
		}

		w.ShowMenu()
		p.Draw()
		p.DrawOverlay()
		f.handler.Show()
		for i, expected := range []rune{'A', 'B', 'C'} {
			if actual := f.cell(menuLabelX, 1+i); actual != expected {
				t.Errorf("expected menu entry '%c' in row %d, got '%c'", expected, 1+i, actual)
			}
		}
		if !p.OverlayContains(menuLabelX, 2) || p.OverlayContains(menuLabelX, 5) {
			t.Error("unexpected overlay bounds")
		}
	})

	t.Run("animated label is shifted and faded", func(t *testing.T) {
		f := newFixture(t)
		p, w := f.rotatorPane(t, 0, nil, nil)
		w.Rotate("b")
		f.scheduler.Advance(50 * time.Millisecond)
		p.Draw()
		f.handler.Show()

		if f.cell(currLabelX-1, 0) != 'A' {
			t.Error("expected curr label shifted left by one cell halfway through the rotation")
		}
		fg := f.fg(currLabelX-1, 0)
		if fg == fgOf(f.stylesheet.Section) || fg == fgOf(f.stylesheet.SectionActive) {
			t.Error("expected label faded halfway through the rotation")
		}

		f.scheduler.Advance(50 * time.Millisecond)
		p.Draw()
		f.handler.Show()
		if f.cell(currLabelX, 0) != 'B' {
			t.Error("expected 'B' in curr after settling")
		}
	})

	t.Run("position info", func(t *testing.T) {
		f := newFixture(t)
		p, w := f.rotatorPane(t, 0, nil, nil)
		p.Draw()

		info, ok := p.GetPositionInfo(nextLabelX, 0).(*ui.RotatorPanePositionInfo)
		if !ok {
			t.Fatal("expected rotator pane position info")
		}
		if info.Section != rotator.SectionNext || info.OnMenu {
			t.Error("unexpected position info", info.Section, info.OnMenu)
		}
		if !info.Click() {
			t.Error("click on next section not applied")
		}
		f.scheduler.Advance(time.Second)
		if w.Value() != "b" {
			t.Errorf("expected 'b' after clicking next, got '%s'", w.Value())
		}
	})
}

func TestRotatorPaneInput(t *testing.T) {
	f := newFixture(t)

	var w *rotator.Widget[string]
	base, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"l":       action.NewSimple(action.Static("next"), func() { w.Next() }),
		"<space>": action.NewSimple(action.Static("toggle menu"), func() { w.ToggleMenu() }),
	})
	if err != nil {
		t.Fatal(err.Error())
	}
	menu, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"j":    action.NewSimple(action.Static("menu down"), func() { w.Menu().FocusNext() }),
		"<cr>": action.NewSimple(action.Static("select"), func() { w.SelectFocussed() }),
	})
	if err != nil {
		t.Fatal(err.Error())
	}
	p, widget := f.rotatorPane(t, 0, processors.NewModalInputProcessor(base), menu)
	w = widget

	key := func(k input.Key) bool { return p.ProcessInput(k) }
	space := input.Key{Key: tcell.KeyRune, Ch: ' '}
	l := input.Key{Key: tcell.KeyRune, Ch: 'l'}
	j := input.Key{Key: tcell.KeyRune, Ch: 'j'}
	enter := input.Key{Key: tcell.KeyEnter}

	if !key(space) || !w.Menu().Visible() {
		t.Fatal("menu not shown")
	}
	if !p.CapturesInput() || !p.Overlaid() {
		t.Error("expected menu overlay to capture input")
	}
	if key(l) {
		t.Error("rotator mapping applied while menu shown")
	}
	if !key(j) || !key(enter) {
		t.Fatal("menu mappings not applied")
	}
	if w.Value() != "b" || w.Menu().Visible() {
		t.Error("expected 'b' selected and menu hidden, got", w.Value(), w.Menu().Visible())
	}
	if !key(l) {
		t.Error("rotator mapping not applied after menu was hidden")
	}
	if p.Overlaid() {
		t.Error("menu overlay left applied")
	}

	// menu shown by click rather than key
	p.Draw()
	w.Click(currLabelX, 0)
	if !p.CapturesInput() {
		t.Error("menu shown by click does not capture input")
	}
}

func TestRootPane(t *testing.T) {
	f := newFixture(t)

	first, w1 := f.rotatorPane(t, 0, nil, nil)
	second, _ := f.rotatorPane(t, 2, nil, nil)
	main := panes.NewWrapperPane([]ui.Pane{first, second}, []ui.Pane{first, second}, processors.NewModalInputProcessor(input.EmptyTree()))

	showLog, showHelp := false, false
	status := panes.NewStatusPane(
		ui.NewConstrainedRenderer(f.handler, func() (int, int, int, int) { return 0, 9, 40, 1 }),
		func() (int, int, int, int) { return 0, 9, 40, 1 },
		f.stylesheet,
		func() string { return "summary" },
		func() string { return "-- NORMAL --" },
	)
	logPane := panes.NewLogPane(f.handler, func() (int, int, int, int) { return 0, 0, 40, 9 }, f.stylesheet, func() bool { return showLog }, func() string { return "LOG" }, potatolog.NewMemoryLogReaderWriter(0))
	help := panes.NewHelpPane(f.handler, func() (int, int, int, int) { return 0, 0, 40, 9 }, f.stylesheet, func() bool { return showHelp }, processors.NewModalInputProcessor(input.EmptyTree()))

	root := panes.NewRootPane(f.handler, ui.NewCursorWrangler(f.handler), f.handler.Dimensions, main, status, logPane, help, processors.NewModalInputProcessor(input.EmptyTree()))
	root.Draw()

	t.Run("focus", func(t *testing.T) {
		if !first.HasFocus() || second.HasFocus() {
			t.Error("expected first rotator pane focussed")
		}
		root.FocusNext()
		if first.HasFocus() || !second.HasFocus() {
			t.Error("expected second rotator pane focussed")
		}
		root.FocusNext()
		if !first.HasFocus() {
			t.Error("expected focus to wrap around")
		}
		showHelp = true
		if first.HasFocus() || root.Focusses() != help.Identify() {
			t.Error("expected help to take focus")
		}
		showHelp = false
	})

	t.Run("status bar", func(t *testing.T) {
		root.Draw()
		if f.cell(1, 9) != 's' {
			t.Error("status summary not drawn")
		}
	})

	t.Run("menu overlay takes precedence in position info", func(t *testing.T) {
		w1.ShowMenu()
		root.Draw()
		info, ok := root.GetPositionInfo(menuLabelX, 2).(*ui.RotatorPanePositionInfo)
		if !ok || !info.OnMenu {
			t.Fatal("expected position on the first rotator's menu")
		}
		if !info.Click() || w1.Value() != "b" {
			t.Error("expected click on the menu to select 'b'")
		}
		if _, ok := root.GetPositionInfo(menuLabelX, 5).(*ui.NoPanePositionInfo); !ok {
			t.Error("expected no pane at empty position")
		}
	})

	t.Run("help drawn over top", func(t *testing.T) {
		help.Content = input.Help{"q": "quit"}
		showHelp = true
		defer func() { showHelp = false }()
		root.Draw()
		if f.cell(20, 1) != 'q' {
			t.Error("expected help mapping drawn")
		}
	})
}
