package panes

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/util"
)

// StatusPane is a status bar that displays a summary of the edited values and
// the current input mode.
type StatusPane struct {
	ui.LeafPane

	summary func() string
	mode    func() string
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	modeStr := p.mode()
	modeWidth := runewidth.StringWidth(modeStr)
	p.Renderer.DrawText(x+w-modeWidth-2, y+h-1, modeWidth, 1, bgStyleEmph.DarkenedBG(10).Italicized(), modeStr)

	summaryWidth := max(w-modeWidth-4, 0)
	p.Renderer.DrawText(x+1, y, summaryWidth, 1, bgStyle, util.TruncateAt(p.summary(), summaryWidth))
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	summary func() string,
	mode func() string,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		summary: summary,
		mode:    mode,
	}
}
