package panes

import (
	"math"

	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/util"
)

// Composite is a generic wrapper pane without any rendering logic of its
// own.
type Composite struct {
	ui.BasePane

	drawables   []ui.Pane
	focussables []ui.Pane

	FocussedPane ui.Pane
}

// Draw draws this pane by drawing all its subpanes, followed by the overlays
// of those subpanes that have any.
// Absent subpanes this draws nothing.
func (p *Composite) Draw() {
	for _, drawable := range p.drawables {
		if drawable.IsVisible() {
			drawable.Draw()
		}
	}
	p.DrawOverlay()
}

// DrawOverlay draws the overlays of the subpanes.
func (p *Composite) DrawOverlay() {
	for _, drawable := range p.drawables {
		if overlay, ok := drawable.(ui.OverlayPane); ok && drawable.IsVisible() {
			overlay.DrawOverlay()
		}
	}
}

// OverlayContains reports whether any of the subpanes' overlays contains the
// position.
func (p *Composite) OverlayContains(x, y int) bool {
	return p.overlayAt(x, y) != nil
}

func (p *Composite) overlayAt(x, y int) ui.Pane {
	for i := len(p.drawables) - 1; i >= 0; i-- {
		drawable := p.drawables[i]
		if overlay, ok := drawable.(ui.OverlayPane); ok && drawable.IsVisible() && overlay.OverlayContains(x, y) {
			return drawable
		}
	}
	return nil
}

// Undraw calls undraw on each drawable in the composite.
func (p *Composite) Undraw() {
	for _, drawable := range p.drawables {
		drawable.Undraw()
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *Composite) Dimensions() (x, y, w, h int) {
	if len(p.drawables) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := 0, 0
	for _, drawable := range p.drawables {
		dx, dy, dw, dh := drawable.Dimensions()
		minX = min(minX, dx)
		minY = min(minY, dy)
		maxX = max(maxX, dx+dw)
		maxY = max(maxY, dy+dh)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// GetPositionInfo returns information on a requested position in this pane.
// Overlays take precedence over the regular contents of the subpanes.
func (p *Composite) GetPositionInfo(x, y int) ui.PositionInfo {
	if pane := p.overlayAt(x, y); pane != nil {
		return pane.GetPositionInfo(x, y)
	}
	for _, pane := range p.drawables {
		if pane.IsVisible() && util.NewRect(pane.Dimensions()).Contains(x, y) {
			return pane.GetPositionInfo(x, y)
		}
	}
	return &ui.NoPanePositionInfo{}
}

// FocusNext focusses the next visible focussable in the composite, wrapping
// around.
func (p *Composite) FocusNext() { p.moveFocus(+1) }

// FocusPrev focusses the previous visible focussable in the composite,
// wrapping around.
func (p *Composite) FocusPrev() { p.moveFocus(-1) }

func (p *Composite) moveFocus(delta int) {
	n := len(p.focussables)
	for i := range p.focussables {
		if p.FocussedPane == p.focussables[i] {
			for step := 1; step < n; step++ {
				candidate := p.focussables[((i+delta*step)%n+n)%n]
				if candidate.IsVisible() {
					p.FocussedPane = candidate
					return
				}
			}
			return
		}
	}
}

// EnsureFocusIsOnVisible moves the focus to the first visible focussable, if
// the focussed pane is not visible.
func (p *Composite) EnsureFocusIsOnVisible() {
	if p.FocussedPane != nil && p.FocussedPane.IsVisible() {
		return
	}
	for i := range p.focussables {
		if p.focussables[i].IsVisible() {
			p.FocussedPane = p.focussables[i]
			return
		}
	}
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *Composite) CapturesInput() bool {
	childCaptures := p.FocussedPane != nil && p.FocussedPane.CapturesInput()
	selfCaptures := p.InputProcessor != nil && p.InputProcessor.CapturesInput()
	return childCaptures || selfCaptures
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *Composite) ProcessInput(key input.Key) bool {
	if p.InputProcessor != nil && p.InputProcessor.CapturesInput() {
		return p.InputProcessor.ProcessInput(key)
	} else if p.FocussedPane != nil && p.FocussedPane.CapturesInput() {
		return p.FocussedPane.ProcessInput(key)
	} else {
		return (p.FocussedPane != nil && p.FocussedPane.ProcessInput(key)) || (p.InputProcessor != nil && p.InputProcessor.ProcessInput(key))
	}
}

// HasFocus indicates, whether this composite pane has focus.
func (p *Composite) HasFocus() bool {
	return p.Parent != nil && p.Parent.HasFocus() && p.Parent.Focusses() == p.Identify()
}

// Focusses returns the ID of the pane focussed by this composite.
func (p *Composite) Focusses() ui.PaneID {
	if p.FocussedPane == nil {
		return ui.NonePaneID
	}
	return p.FocussedPane.Identify()
}

// SetParent sets the parent of this composite pane.
func (p *Composite) SetParent(parent ui.PaneQuerier) { p.Parent = parent }

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *Composite) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.InputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *Composite) PopModalOverlay() error {
	return p.InputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *Composite) PopModalOverlays(index uint) {
	p.InputProcessor.PopModalOverlays(index)
}

// Overlaid reports whether the composite's own input processor is overlaid.
func (p *Composite) Overlaid() bool {
	return p.InputProcessor != nil && p.InputProcessor.Overlaid()
}

// GetHelp returns the input help map for this processor.
func (p *Composite) GetHelp() input.Help {
	result := input.Help{}

	if p.InputProcessor != nil {
		for k, v := range p.InputProcessor.GetHelp() {
			result[k] = v
		}
	}
	if p.FocussedPane != nil {
		for k, v := range p.FocussedPane.GetHelp() {
			result[k] = v
		}
	}

	return result
}

// NewWrapperPane constructs and returns a new Composite.
func NewWrapperPane(
	drawables []ui.Pane,
	focussables []ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *Composite {
	p := &Composite{
		focussables: focussables,
		drawables:   drawables,
		BasePane: ui.BasePane{
			InputProcessor: inputProcessor,
			ID:             ui.GeneratePaneID(),
		},
	}
	if len(p.focussables) > 0 {
		p.FocussedPane = p.focussables[0]
	}
	for _, focussable := range p.focussables {
		focussable.SetParent(p)
	}
	return p
}
