package panes

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/ui"
)

// A HelpPane is a pane that displays a help popup.
// For example, it could display a list of key mappings and their actions.
type HelpPane struct {
	ui.LeafPane

	Content input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 20
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	content := make([]mappingAndAction, 0, len(p.Content))
	for mapping, action := range p.Content {
		content = append(content, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].action == content[j].action {
			return content[i].mapping < content[j].mapping
		}
		return content[i].action < content[j].action
	})

	for row, mapping := range content {
		if row >= h-2*border {
			break
		}
		keysWidth := runewidth.StringWidth(mapping.mapping)
		p.Renderer.DrawText(keyOffset+maxKeyWidth-keysWidth, y+border+row, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), mapping.mapping)
		p.Renderer.DrawText(descriptionOffset, y+border+row, w-descriptionOffset+x-border, 1, p.Stylesheet.Help.Italicized(), mapping.action)
	}
}

type mappingAndAction = struct {
	mapping string
	action  string
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
) *HelpPane {
	p := &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
	}
	p.InputProcessor = inputProcessor
	return p
}
