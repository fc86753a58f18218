package styling

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	configpkg "github.com/ja-he/valueview/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	Section         DrawStyling
	SectionHover    DrawStyling
	SectionActive   DrawStyling
	SectionDisabled DrawStyling

	Auto       DrawStyling
	AutoActive DrawStyling

	Menu         DrawStyling
	MenuActive   DrawStyling
	MenuFocussed DrawStyling
	MenuCustom   DrawStyling

	Status DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config configpkg.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		target *DrawStyling
		source configpkg.Styling
	}{
		{"normal", &stylesheet.Normal, config.Normal},
		{"section", &stylesheet.Section, config.Section},
		{"section-hover", &stylesheet.SectionHover, config.SectionHover},
		{"section-active", &stylesheet.SectionActive, config.SectionActive},
		{"section-disabled", &stylesheet.SectionDisabled, config.SectionDisabled},
		{"auto", &stylesheet.Auto, config.Auto},
		{"auto-active", &stylesheet.AutoActive, config.AutoActive},
		{"menu", &stylesheet.Menu, config.Menu},
		{"menu-active", &stylesheet.MenuActive, config.MenuActive},
		{"menu-focussed", &stylesheet.MenuFocussed, config.MenuFocussed},
		{"menu-custom", &stylesheet.MenuCustom, config.MenuCustom},
		{"status", &stylesheet.Status, config.Status},
		{"log-default", &stylesheet.LogDefault, config.LogDefault},
		{"log-title-box", &stylesheet.LogTitleBox, config.LogTitleBox},
		{"log-entry-type-error", &stylesheet.LogEntryTypeError, config.LogEntryTypeError},
		{"log-entry-type-warn", &stylesheet.LogEntryTypeWarn, config.LogEntryTypeWarn},
		{"log-entry-type-info", &stylesheet.LogEntryTypeInfo, config.LogEntryTypeInfo},
		{"log-entry-type-debug", &stylesheet.LogEntryTypeDebug, config.LogEntryTypeDebug},
		{"log-entry-type-trace", &stylesheet.LogEntryTypeTrace, config.LogEntryTypeTrace},
		{"log-entry-location", &stylesheet.LogEntryLocation, config.LogEntryLocation},
		{"log-entry-time", &stylesheet.LogEntryTime, config.LogEntryTime},
		{"help", &stylesheet.Help, config.Help},
	} {
		styling, err := StyleFromConfig(entry.source)
		if err != nil {
			return nil, fmt.Errorf("invalid styling '%s': %w", entry.name, err)
		}
		*entry.target = styling
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a styling from a config styling.
func StyleFromConfig(config configpkg.Styling) (DrawStyling, error) {
	fg, err := colorful.Hex(config.Fg)
	if err != nil {
		return nil, fmt.Errorf("foreground color '%s': %w", config.Fg, err)
	}
	bg, err := colorful.Hex(config.Bg)
	if err != nil {
		return nil, fmt.Errorf("background color '%s': %w", config.Bg, err)
	}

	styling := StyleFromColors(fg, bg)
	if config.Style != nil {
		styling.bold = config.Style.Bold
		styling.italic = config.Style.Italic
		styling.underlined = config.Style.Underlined
	}
	return styling, nil
}
