package config

import (
	"github.com/ja-he/valueview/internal/input"
)

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	margins := [2]int{-2, 2}
	deferInit := false
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Rotator: Rotator{
			Margins:       &margins,
			Duration:      "150ms",
			FrameInterval: "30ms",
			DeferInit:     &deferInit,
			Menu:          &MenuPosition{My: "left top", At: "left bottom"},
			Locale:        "en",
		},
		Lists: []ValueList{
			{
				Name: "priority",
				Values: []ValueItem{
					{Value: "low", Label: "low"},
					{Value: "normal", Label: "normal"},
					{Value: "high", Label: "high"},
					{Value: "urgent", Label: "urgent"},
				},
			},
			{
				Name: "weekday",
				Values: []ValueItem{
					{Value: "mon", Label: "Monday"},
					{Value: "tue", Label: "Tuesday"},
					{Value: "wed", Label: "Wednesday"},
					{Value: "thu", Label: "Thursday"},
					{Value: "fri", Label: "Friday"},
					{Value: "sat", Label: "Saturday"},
					{Value: "sun", Label: "Sunday"},
				},
			},
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the default key mappings.
func DefaultKeys() input.InputConfig {
	return input.InputConfig{
		Rotator: map[input.Keyspec]input.Actionspec{
			"h":       "prev",
			"<left>":  "prev",
			"l":       "next",
			"<right>": "next",
			"<cr>":    "toggle-menu",
			"<space>": "toggle-menu",
			"a":       "auto",
			"d":       "toggle-disabled",
			"<tab>":   "focus-next",
			"<s-tab>": "focus-prev",
			"?":       "toggle-help",
			"W":       "toggle-log",
			"P":       "toggle-perf",
			"q":       "quit",
		},
		Menu: map[input.Keyspec]input.Actionspec{
			"j":      "menu-down",
			"<down>": "menu-down",
			"k":      "menu-up",
			"<up>":   "menu-up",
			"<cr>":   "menu-select",
			"<esc>":  "menu-close",
			"q":      "menu-close",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			Section:           Styling{Fg: "#f0f0f0", Bg: "#303030", Style: &FontStyle{}},
			SectionHover:      Styling{Fg: "#ffffff", Bg: "#505050", Style: &FontStyle{}},
			SectionActive:     Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			SectionDisabled:   Styling{Fg: "#808080", Bg: "#202020", Style: &FontStyle{}},
			Auto:              Styling{Fg: "#c0c0c0", Bg: "#202020", Style: &FontStyle{Italic: true}},
			AutoActive:        Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true, Italic: true}},
			Menu:              Styling{Fg: "#f0f0f0", Bg: "#404040", Style: &FontStyle{}},
			MenuActive:        Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			MenuFocussed:      Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
			MenuCustom:        Styling{Fg: "#fff0cc", Bg: "#404040", Style: &FontStyle{Italic: true}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		}
	} else {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Section:           Styling{Fg: "#202020", Bg: "#f0f0f0", Style: &FontStyle{}},
			SectionHover:      Styling{Fg: "#000000", Bg: "#dddddd", Style: &FontStyle{}},
			SectionActive:     Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			SectionDisabled:   Styling{Fg: "#aaaaaa", Bg: "#f8f8f8", Style: &FontStyle{}},
			Auto:              Styling{Fg: "#404040", Bg: "#f8f8f8", Style: &FontStyle{Italic: true}},
			AutoActive:        Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true, Italic: true}},
			Menu:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			MenuActive:        Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			MenuFocussed:      Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{}},
			MenuCustom:        Styling{Fg: "#cc8f00", Bg: "#f0f0f0", Style: &FontStyle{Italic: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		}
	}
}
