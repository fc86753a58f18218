package panes

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/rotator"
	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/util"
)

// RotatorPane shows a single list rotator next to its title.
//
// The rotator is mounted into the pane (see Mount), which makes the pane a
// host for an extender.Listrotator. The rotator's menu is drawn as an overlay
// and, while it is shown, the menu's input processor is applied as a
// capturing overlay to the pane's input processor.
type RotatorPane[V comparable] struct {
	ui.LeafPane

	widget *rotator.Widget[V]

	title      func() string
	titleWidth int
	isRtl      func() bool
	beforeDraw func()

	overlayRenderer ui.ConstrainedRenderer
	cursor          ui.CursorLocationRequestHandler

	menuInput   input.SimpleInputProcessor
	menuOverlay *uint

	log zerolog.Logger
}

// Mount mounts the given rotator into the pane.
func (p *RotatorPane[V]) Mount(w *rotator.Widget[V]) {
	p.widget = w
	p.log = p.log.With().Str("rotator", w.ID()).Logger()
	p.log.Debug().Msg("mounted rotator")
}

// Widget returns the mounted rotator, if any.
func (p *RotatorPane[V]) Widget() *rotator.Widget[V] { return p.widget }

// MenuShown reports whether the mounted rotator's menu is shown.
func (p *RotatorPane[V]) MenuShown() bool {
	return p.widget != nil && p.widget.Menu().Visible()
}

// BeforeDraw sets a function to be called at the start of every draw, e.g. to
// reconcile the rotator with the value it edits.
func (p *RotatorPane[V]) BeforeDraw(f func()) { p.beforeDraw = f }

// Draw draws the title and the rotator's sections.
func (p *RotatorPane[V]) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	if p.widget == nil {
		p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.Normal.DefaultDimmed(), "(no rotator)")
		return
	}
	if p.beforeDraw != nil {
		p.beforeDraw()
	}

	titleStyle := p.Stylesheet.Normal
	if p.HasFocus() {
		titleStyle = titleStyle.Bolded()
	}
	title := util.TruncateAt(p.title(), p.titleWidth)
	if p.isRtl() {
		p.widget.Layout(x, y)
		_, _, rotatorW, _ := p.widget.Sections().Dimensions()
		p.Renderer.DrawText(x+rotatorW+1, y, p.titleWidth, 1, titleStyle, title)
	} else {
		p.Renderer.DrawText(x, y, p.titleWidth, 1, titleStyle, title)
		p.widget.Layout(x+p.titleWidth+1, y)
	}

	for _, s := range p.widget.Sections().Sections() {
		p.drawSection(s)
	}

	p.placeCursor()
}

func (p *RotatorPane[V]) drawSection(s *rotator.Section[V]) {
	if s.Hidden {
		return
	}
	sections := p.widget.Sections()
	style := p.sectionStyle(s)
	p.Renderer.DrawBox(s.X, s.Y, s.W, 1, style)

	if s.Kind == rotator.SectionAuto {
		p.Renderer.DrawText(s.X+1, s.Y, s.W-2, 1, style, s.Label)
		return
	}

	if s.Kind != rotator.SectionCurr {
		iconX := s.X
		if s.X > sections.Curr.X {
			iconX = s.X + s.W - 1
		}
		p.Renderer.DrawText(iconX, s.Y, 1, 1, style, string(sections.Icon(s.Kind)))
	}

	// the label is shifted while animated, but must not leave its section
	labelWidth := sections.LabelWidth(s)
	labelRenderer := ui.NewConstrainedRenderer(p.Renderer, func() (int, int, int, int) {
		return s.X + 1, s.Y, s.W - 2, 1
	})
	labelRenderer.DrawText(
		s.X+2+s.Node.Offset(), s.Y, labelWidth, 1,
		style.Faded(s.Node.Opacity),
		util.PadCenter(s.Label, labelWidth),
	)
}

func (p *RotatorPane[V]) sectionStyle(s *rotator.Section[V]) styling.DrawStyling {
	switch {
	case s.Kind == rotator.SectionAuto && s.Active:
		return p.Stylesheet.AutoActive
	case s.Kind == rotator.SectionAuto && s.Hover:
		return p.Stylesheet.SectionHover
	case s.Kind == rotator.SectionAuto:
		return p.Stylesheet.Auto
	case s.Disabled:
		return p.Stylesheet.SectionDisabled
	case s.Active:
		return p.Stylesheet.SectionActive
	case s.Hover:
		return p.Stylesheet.SectionHover
	default:
		return p.Stylesheet.Section
	}
}

// DrawOverlay draws the rotator's menu, if it is shown.
func (p *RotatorPane[V]) DrawOverlay() {
	if p.widget == nil || !p.widget.Menu().Visible() {
		return
	}
	menu := p.widget.Menu()
	x, y, w, _ := menu.Dimensions()
	for i, entry := range menu.Entries() {
		style := p.Stylesheet.Menu
		switch {
		case i == menu.FocussedIndex():
			style = p.Stylesheet.MenuFocussed
		case entry.Active:
			style = p.Stylesheet.MenuActive
		case entry.Custom:
			style = p.Stylesheet.MenuCustom
		}
		p.overlayRenderer.DrawBox(x, y+i, w, 1, style)
		p.overlayRenderer.DrawText(x+1, y+i, w-2, 1, style, entry.Label)
	}
}

// OverlayContains reports whether the rotator's menu is shown and contains
// the position.
func (p *RotatorPane[V]) OverlayContains(x, y int) bool {
	return p.widget != nil && p.widget.Menu().Contains(x, y)
}

func (p *RotatorPane[V]) placeCursor() {
	if p.cursor == nil {
		return
	}
	if !p.HasFocus() {
		p.cursor.Delete(p.requesterID())
		return
	}
	menu := p.widget.Menu()
	if menu.Visible() && menu.FocussedIndex() >= 0 {
		x, y, _, _ := menu.Dimensions()
		p.cursor.Put(ui.CursorLocation{X: x, Y: y + menu.FocussedIndex()}, p.requesterID())
		return
	}
	curr := p.widget.Sections().Curr
	p.cursor.Put(ui.CursorLocation{X: curr.X + 1, Y: curr.Y}, p.requesterID())
}

func (p *RotatorPane[V]) requesterID() string {
	return fmt.Sprintf("rotator-pane-%d", p.Identify())
}

// Undraw removes the pane's cursor request.
func (p *RotatorPane[V]) Undraw() {
	if p.cursor != nil {
		p.cursor.Delete(p.requesterID())
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *RotatorPane[V]) GetPositionInfo(x, y int) ui.PositionInfo {
	info := &ui.RotatorPanePositionInfo{Click: func() bool { return false }}
	if p.widget == nil {
		return info
	}
	if s := p.widget.Sections().SectionAt(x, y); s != nil {
		info.Section = s.Kind
	}
	info.OnMenu = p.widget.Menu().Contains(x, y)
	info.Click = func() bool { return p.widget.Click(x, y) }
	return info
}

// Hover updates the rotator's hover state for a mouse cursor at the given
// position.
func (p *RotatorPane[V]) Hover(x, y int) {
	if p.widget != nil {
		p.widget.Hover(x, y)
	}
}

// CapturesInput returns whether the pane captures input, which it does while
// the rotator's menu is shown.
func (p *RotatorPane[V]) CapturesInput() bool {
	p.syncMenuOverlay()
	return p.LeafPane.CapturesInput()
}

// ProcessInput attempts to process the provided input, with the menu's
// mappings taking precedence while the menu is shown.
func (p *RotatorPane[V]) ProcessInput(key input.Key) bool {
	p.syncMenuOverlay()
	applied := p.LeafPane.ProcessInput(key)
	p.syncMenuOverlay()
	return applied
}

// GetHelp returns the input help map for this processor.
func (p *RotatorPane[V]) GetHelp() input.Help {
	p.syncMenuOverlay()
	return p.LeafPane.GetHelp()
}

// syncMenuOverlay applies the menu's input processor while the menu is shown
// and removes it once it is hidden, however the menu was shown or hidden.
func (p *RotatorPane[V]) syncMenuOverlay() {
	if p.widget == nil || p.InputProcessor == nil || p.menuInput == nil {
		return
	}
	visible := p.widget.Menu().Visible()
	switch {
	case visible && p.menuOverlay == nil:
		index := p.InputProcessor.ApplyModalOverlay(input.CapturingOverlayWrap(p.menuInput))
		p.menuOverlay = &index
		p.log.Trace().Uint("overlay", index).Msg("applied menu input overlay")
	case !visible && p.menuOverlay != nil:
		p.InputProcessor.PopModalOverlays(*p.menuOverlay)
		p.log.Trace().Uint("overlay", *p.menuOverlay).Msg("removed menu input overlay")
		p.menuOverlay = nil
	}
}

// NewRotatorPane constructs and returns a new RotatorPane, to be mounted a
// rotator into.
//
// The overlay renderer is used for the menu, which extends beyond the pane's
// dimensions.
func NewRotatorPane[V comparable](
	renderer ui.ConstrainedRenderer,
	overlayRenderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	title func() string,
	titleWidth int,
	isRtl func() bool,
	inputProcessor input.ModalInputProcessor,
	menuInput input.SimpleInputProcessor,
	cursor ui.CursorLocationRequestHandler,
) *RotatorPane[V] {
	p := &RotatorPane[V]{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		title:           title,
		titleWidth:      titleWidth,
		isRtl:           isRtl,
		overlayRenderer: overlayRenderer,
		cursor:          cursor,
		menuInput:       menuInput,
	}
	if p.isRtl == nil {
		p.isRtl = rotator.RTL(false)
	}
	p.log = log.With().Str("component", "rotator-pane").Uint("pane", uint(p.Identify())).Logger()
	return p
}
