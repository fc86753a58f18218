package panes

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/valueview/internal/potatolog"
	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	row := 2

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	titleWidth := runewidth.StringWidth(title)
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w/2-titleWidth/2), y, titleWidth, 1, p.Stylesheet.LogTitleBox, title)

	const levelLen = len(" error ")
	const extraDataIndentWidth = levelLen + 1

	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]
		col := x

		level := stringField(entry, "level")
		p.Renderer.DrawText(col, y+row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))
		col += extraDataIndentWidth

		for _, field := range []struct {
			key   string
			style styling.DrawStyling
		}{
			{"message", p.Stylesheet.LogDefault},
			{"caller", p.Stylesheet.LogEntryLocation},
			{"time", p.Stylesheet.LogEntryTime},
		} {
			value := stringField(entry, field.key)
			if value == "" {
				continue
			}
			p.Renderer.DrawText(col, y+row, x+w-col, 1, field.style, value)
			col += runewidth.StringWidth(value) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "caller", "message", "time", "level":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				break
			}
			col := x + extraDataIndentWidth
			p.Renderer.DrawText(col, y+row, w, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(col+len(k)+2, y+row, w, 1, p.Stylesheet.LogEntryLocation, stringField(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

func stringField(entry potatolog.LogEntry, key string) string {
	v, ok := entry[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				Visible: condition,
				ID:      ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
