package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/rotator"
)

// Config is the configuration data as present in a config file at
// '${VALUEVIEW_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Rotator    Rotator           `yaml:"rotator"`
	Lists      []ValueList       `yaml:"lists"`
	Keys       input.InputConfig `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	Section           Styling `yaml:"section"`
	SectionHover      Styling `yaml:"section-hover"`
	SectionActive     Styling `yaml:"section-active"`
	SectionDisabled   Styling `yaml:"section-disabled"`
	Auto              Styling `yaml:"auto"`
	AutoActive        Styling `yaml:"auto-active"`
	Menu              Styling `yaml:"menu"`
	MenuActive        Styling `yaml:"menu-active"`
	MenuFocussed      Styling `yaml:"menu-focussed"`
	MenuCustom        Styling `yaml:"menu-custom"`
	Status            Styling `yaml:"status"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
	Help              Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Rotator holds the options for list rotators.
//
// Durations are given in the format understood by time.ParseDuration, e.g.
// "150ms".
type Rotator struct {
	Margins       *[2]int       `yaml:"margins,omitempty"`
	Duration      string        `yaml:"duration,omitempty"`
	FrameInterval string        `yaml:"frame-interval,omitempty"`
	DeferInit     *bool         `yaml:"defer-init,omitempty"`
	Menu          *MenuPosition `yaml:"menu,omitempty"`

	// Locale is the language labels are shown in, as a BCP 47 tag.
	Locale string `yaml:"locale,omitempty"`

	// Rtl forces the right-to-left layout on or off; if unset, it is derived
	// from the locale.
	Rtl *bool `yaml:"rtl,omitempty"`
}

// MenuPosition positions a rotator's menu relative to its current section,
// e.g. My "left top" At "left bottom".
type MenuPosition struct {
	My string `yaml:"my"`
	At string `yaml:"at"`
}

// A ValueList is a named list of values a rotator can rotate through.
type ValueList struct {
	Name   string      `yaml:"name"`
	Values []ValueItem `yaml:"values"`
}

// A ValueItem is a value of a list with its label.
// The label can be given directly or by a message key to be localized.
type ValueItem struct {
	Value    string `yaml:"value"`
	Label    string `yaml:"label,omitempty"`
	LabelKey string `yaml:"label-key,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Dark:
		defaultConfig = Default(Dark)
	case Light:
		defaultConfig = Default(Light)
	}

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)
	if _, err := result.Rotator.AnimationOptions(); err != nil {
		return defaultConfig, err
	}
	for _, list := range result.Lists {
		if len(list.Values) == 0 {
			return defaultConfig, fmt.Errorf("list '%s': %w", list.Name, rotator.ErrNoValues)
		}
	}

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)
	result.Rotator = base.Rotator.augmentWith(augment.Rotator)

	if len(augment.Lists) > 0 {
		result.Lists = augment.Lists
	}

	result.Keys.Rotator = mergeKeys(base.Keys.Rotator, augment.Keys.Rotator)
	result.Keys.Menu = mergeKeys(base.Keys.Menu, augment.Keys.Menu)

	return result
}

func mergeKeys(base, augment map[input.Keyspec]input.Actionspec) map[input.Keyspec]input.Actionspec {
	result := make(map[input.Keyspec]input.Actionspec, len(base)+len(augment))
	for k, a := range base {
		result[k] = a
	}
	for k, a := range augment {
		if a == "" {
			delete(result, k)
		} else {
			result[k] = a
		}
	}
	return result
}

func (base Rotator) augmentWith(augment Rotator) Rotator {
	result := base
	if augment.Margins != nil {
		result.Margins = augment.Margins
	}
	if augment.Duration != "" {
		result.Duration = augment.Duration
	}
	if augment.FrameInterval != "" {
		result.FrameInterval = augment.FrameInterval
	}
	if augment.DeferInit != nil {
		result.DeferInit = augment.DeferInit
	}
	if augment.Menu != nil {
		result.Menu = augment.Menu
	}
	if augment.Locale != "" {
		result.Locale = augment.Locale
	}
	if augment.Rtl != nil {
		result.Rtl = augment.Rtl
	}
	return result
}

// AnimationOptions returns the rotator animation options described by this
// config.
func (r Rotator) AnimationOptions() (rotator.AnimationOptions, error) {
	result := rotator.AnimationOptions{}
	if r.Margins != nil {
		result.Margins = *r.Margins
		result.Static = result.Margins == [2]int{}
	}
	if r.Duration != "" {
		d, err := time.ParseDuration(r.Duration)
		if err != nil {
			return result, fmt.Errorf("could not parse rotator duration '%s': %w", r.Duration, err)
		}
		if d < 0 {
			return result, fmt.Errorf("rotator duration '%s' is negative", r.Duration)
		}
		result.Duration = d
		if d == 0 {
			result.Duration = rotator.NoDuration
		}
	}
	if r.FrameInterval != "" {
		d, err := time.ParseDuration(r.FrameInterval)
		if err != nil {
			return result, fmt.Errorf("could not parse rotator frame interval '%s': %w", r.FrameInterval, err)
		}
		if d <= 0 {
			return result, fmt.Errorf("rotator frame interval '%s' is not positive", r.FrameInterval)
		}
		result.FrameInterval = d
	}
	return result, nil
}

// MenuOptions returns the rotator menu options described by this config.
func (r Rotator) MenuOptions() rotator.MenuOptions {
	if r.Menu == nil {
		return rotator.MenuOptions{}
	}
	return rotator.MenuOptions{Position: rotator.Position{My: r.Menu.My, At: r.Menu.At}}
}

// Items returns the list's values as rotator items, labelled via the given
// label provider where a label key is given.
func (l ValueList) Items(labels rotator.LabelProvider) []rotator.Item[string] {
	result := make([]rotator.Item[string], 0, len(l.Values))
	for _, v := range l.Values {
		label := v.Label
		if label == "" {
			label = v.Value
		}
		if v.LabelKey != "" && labels != nil {
			label = labels.MsgOrString(v.LabelKey, label)
		}
		result = append(result, rotator.Item[string]{Value: v.Value, Label: label})
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Section.overwriteIfDefined(augment.Section)
	result.SectionHover.overwriteIfDefined(augment.SectionHover)
	result.SectionActive.overwriteIfDefined(augment.SectionActive)
	result.SectionDisabled.overwriteIfDefined(augment.SectionDisabled)
	result.Auto.overwriteIfDefined(augment.Auto)
	result.AutoActive.overwriteIfDefined(augment.AutoActive)
	result.Menu.overwriteIfDefined(augment.Menu)
	result.MenuActive.overwriteIfDefined(augment.MenuActive)
	result.MenuFocussed.overwriteIfDefined(augment.MenuFocussed)
	result.MenuCustom.overwriteIfDefined(augment.MenuCustom)
	result.Status.overwriteIfDefined(augment.Status)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		if s.Style == nil {
			s.Style = &FontStyle{}
		}
		s.Style.Bold = augment.Style.Bold
		s.Style.Italic = augment.Style.Italic
		s.Style.Underlined = augment.Style.Underlined
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
