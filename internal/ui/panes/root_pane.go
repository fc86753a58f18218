package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/util"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	mainPane   ui.Pane
	statusPane ui.Pane
	logPane    ui.Pane
	helpPane   ui.Pane

	inputProcessor input.ModalInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	activePanes := p.getCurrentlyActivePanesInOrder()

	// go through panes in reverse order (topmost drawn to bottommost drawn)
	for i := len(activePanes) - 1; i >= 0; i-- {
		pane := activePanes[i]
		if overlay, ok := pane.(ui.OverlayPane); ok && overlay.OverlayContains(x, y) {
			return pane.GetPositionInfo(x, y)
		}
		if util.NewRect(pane.Dimensions()).Contains(x, y) {
			return pane.GetPositionInfo(x, y)
		}
	}

	return &ui.NoPanePositionInfo{}
}

func (p *RootPane) getCurrentlyActivePanesInOrder() []ui.Pane {
	active := []ui.Pane{p.statusPane, p.mainPane}
	for _, pane := range []ui.Pane{p.logPane, p.helpPane} {
		if pane.IsVisible() {
			active = append(active, pane)
		}
	}
	return active
}

// IsVisible returns true, the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	for _, pane := range p.getCurrentlyActivePanesInOrder() {
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// Undraw undraws all subpanes.
func (p *RootPane) Undraw() {
	p.renderer.Clear()
	for _, pane := range []ui.Pane{p.mainPane, p.statusPane, p.logPane, p.helpPane} {
		pane.Undraw()
	}
	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	if p.focussedPane().CapturesInput() {
		return true
	}
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {
	if p.inputProcessor.CapturesInput() {
		return p.inputProcessor.ProcessInput(key)
	} else if p.focussedPane().CapturesInput() {
		return p.focussedPane().ProcessInput(key)
	}

	if p.focussedPane().ProcessInput(key) {
		return true
	}
	return p.inputProcessor.ProcessInput(key)
}

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true, the root pane always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID {
	return p.focussedPane().Identify()
}

// FocusNext moves the focus within the main pane.
func (p *RootPane) FocusNext() { p.mainPane.FocusNext() }

// FocusPrev moves the focus within the main pane.
func (p *RootPane) FocusPrev() { p.mainPane.FocusPrev() }

func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.logPane.IsVisible():
		return p.logPane
	default:
		return p.mainPane
	}
}

// SetParent panics, the root pane has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// Overlaid reports whether the root's own input processor is overlaid.
func (p *RootPane) Overlaid() bool { return p.inputProcessor.Overlaid() }

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}

	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}

	return result
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	mainPane ui.Pane,
	statusPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		mainPane:       mainPane,
		statusPane:     statusPane,
		logPane:        logPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())

	for _, pane := range []ui.Pane{mainPane, statusPane, logPane, helpPane} {
		pane.SetParent(rootPane)
	}

	return rootPane
}
