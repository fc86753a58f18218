// Package control holds the state shared between the TUI controller and the
// actions it binds to keys.
package control

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ja-he/valueview/internal/model"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/util"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

// ControlData is the state of the TUI: the values being edited and what is
// shown.
type ControlData struct {
	CursorPos ui.MouseCursorPos

	EnvData EnvData

	// Value is the edited time value. Its precision is reset to
	// ParsedPrecision when the precision is set to "auto".
	Value           model.TimeValue
	ParsedPrecision model.Precision

	// Lists holds the value chosen per configured list; lists without an
	// entry are set to "auto".
	Lists map[string]string

	ShowLog   bool
	ShowHelp  bool
	ShowDebug bool

	RenderTimes          util.MetricsHandler
	EventProcessingTimes util.MetricsHandler
	FrameIntervals       util.MetricsHandler

	MouseMode bool
}

// NewControlData returns the state for editing the given value.
func NewControlData(envData EnvData, value model.TimeValue, lists map[string]string) *ControlData {
	t := ControlData{
		EnvData:         envData,
		Value:           value,
		ParsedPrecision: value.Precision,
		Lists:           map[string]string{},
	}
	for name, v := range lists {
		t.Lists[name] = v
	}
	return &t
}

// Summary summarizes the edited values in a single line.
func (d *ControlData) Summary() string {
	parts := []string{d.Value.String()}

	names := make([]string, 0, len(d.Lists))
	for name := range d.Lists {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", name, d.Lists[name]))
	}

	return strings.Join(parts, " | ")
}
