package panes

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/util"
)

// PerfPane is an ephemeral pane used for showing debug info during normal
// usage: render and input processing times and the intervals at which
// animation frames actually arrive.
type PerfPane struct {
	ui.LeafPane

	renderTime          util.MetricsGetter
	eventProcessingTime util.MetricsGetter
	frameInterval       util.MetricsGetter
}

// Draw draws this pane.
func (p *PerfPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dims()
	lastWidth := len(" render time: ....... xs ")
	avgWidth := w - lastWidth

	defaultStyle := p.Stylesheet.Status
	p.Renderer.DrawBox(x, y, w, h, defaultStyle)

	rows := []struct {
		name   string
		metric util.MetricsGetter
	}{
		{"render", p.renderTime},
		{"input ", p.eventProcessingTime},
		{"frame ", p.frameInterval},
	}
	for i, row := range rows {
		if i >= h {
			break
		}
		last, avg := row.metric.GetLast(), row.metric.Avg()
		p.Renderer.DrawText(x, y+i, lastWidth, 1, deviationStyle(last, avg), fmt.Sprintf(" %s time: % 7d µs ", row.name, last))
		p.Renderer.DrawText(x+lastWidth, y+i, avgWidth, 1, defaultStyle, fmt.Sprintf(" %s avg ~ % 7d µs", row.name, avg))
	}
}

// deviationStyle is the more saturated the further last exceeds avg.
func deviationStyle(last, avg uint64) styling.DrawStyling {
	bad := colorful.Color{R: 1.0, G: 0.8, B: 0.8}
	hue, _, ltn := bad.Hsl()

	sat := float64(0)
	if last > avg && avg > 0 {
		sat = math.Min(float64(last-avg)/float64(avg), 1.0)
	}
	return styling.StyleFromColors(
		colorful.Hsl(0, 0, 0), // black
		colorful.Hsl(hue, sat, ltn),
	)
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *PerfPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.NoPanePositionInfo{}
}

// NewPerfPane constructs and returns a new PerfPane.
func NewPerfPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	renderTime util.MetricsGetter,
	eventProcessingTime util.MetricsGetter,
	frameInterval util.MetricsGetter,
) *PerfPane {
	return &PerfPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		renderTime:          renderTime,
		eventProcessingTime: eventProcessingTime,
		frameInterval:       frameInterval,
	}
}
