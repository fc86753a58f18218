package rotator

import (
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// ErrNoValues is returned when attempting to construct a rotator without any
// values.
var ErrNoValues = errors.New("list of values required to initialize list rotator")

// ErrNoScheduler is returned when attempting to construct a rotator without a
// scheduler for its animation frames.
var ErrNoScheduler = errors.New("scheduler required to initialize list rotator")

// NoDuration as an animation duration settles rotations in a single frame
// without delay.
const NoDuration time.Duration = -1

// AutoMessageKey is the message key by which the label of the "auto" section
// is requested from a LabelProvider.
const AutoMessageKey = "valueview-listrotator-auto"

// LabelProvider supplies localized strings.
type LabelProvider interface {
	// MsgOrString returns the message for the key, or fallback if there is
	// none.
	MsgOrString(key, fallback string) string
}

// Position describes how the menu is positioned relative to the current
// section, e.g. My "left top" At "left bottom" aligns the menu's top left
// corner with the current section's bottom left corner.
type Position struct {
	My string
	At string
}

// Flipped returns the position mirrored horizontally.
func (p Position) Flipped() Position {
	flip := func(s string) string {
		segments := strings.Split(s, " ")
		for i, segment := range segments {
			if strings.Contains(segment, "left") {
				segments[i] = strings.Replace(segment, "left", "right", 1)
			} else {
				segments[i] = strings.Replace(segment, "right", "left", 1)
			}
		}
		return strings.Join(segments, " ")
	}
	return Position{My: flip(p.My), At: flip(p.At)}
}

// MenuOptions are the options for the drop-down menu.
type MenuOptions struct {
	Position Position
}

// AnimationOptions parameterize the rotation animation.
type AnimationOptions struct {
	// Margins are the offsets (in cells) the labels are shifted by when
	// rotating. The first value applies to the left, the second to the right
	// side of a label. They are reversed when rotating backwards and when in
	// a right-to-left context.
	// Zero margins count as unset; use Static for labels that only fade.
	Margins [2]int

	// Static keeps the labels in place while rotating, so they only fade.
	Static bool

	// Duration is the duration of a single rotation. Zero counts as unset;
	// use NoDuration for rotations that settle immediately.
	Duration time.Duration

	// FrameInterval is the time between two animation frames.
	FrameInterval time.Duration
}

// Messages are the (localized) strings used by the rotator.
type Messages struct {
	Auto string
}

// Options are the options for constructing a rotator.
type Options[V comparable] struct {
	// Values to rotate through. Must not be empty.
	Values []Item[V]

	Menu      MenuOptions
	Animation AnimationOptions

	// DeferInit defers measuring the section widths until InitWidths is
	// called explicitly.
	DeferInit bool

	Messages Messages

	// IsRtl reports whether the rotator is shown in a right-to-left context.
	IsRtl func() bool

	// Scheduler schedules animation frames and must call back on the
	// goroutine the rotator is used from (see LoopScheduler). Required.
	Scheduler Scheduler

	// OnFrame is called whenever the widget's appearance changed due to an
	// animation frame, e.g. to request a redraw.
	OnFrame func()

	// Measure measures the display width of a label.
	Measure func(string) int
}

// DefaultOptions returns the default options for the given values.
//
// The label for the "auto" section is requested from the given label
// provider, which may be nil.
func DefaultOptions[V comparable](values []Item[V], labels LabelProvider) Options[V] {
	autoLabel := "auto"
	if labels != nil {
		autoLabel = labels.MsgOrString(AutoMessageKey, autoLabel)
	}
	return Options[V]{
		Values: values,
		Menu: MenuOptions{
			Position: Position{My: "left top", At: "left bottom"},
		},
		Animation: AnimationOptions{
			Margins:       [2]int{-2, 2},
			Duration:      150 * time.Millisecond,
			FrameInterval: 30 * time.Millisecond,
		},
		DeferInit: false,
		Messages:  Messages{Auto: autoLabel},
		IsRtl:     func() bool { return false },
		Measure:   runewidth.StringWidth,
	}
}

// RTL returns a right-to-left predicate with a fixed answer.
func RTL(rtl bool) func() bool { return func() bool { return rtl } }

// completed fills unset options with their defaults.
func (o Options[V]) completed() Options[V] {
	defaults := DefaultOptions(o.Values, nil)
	if o.Menu.Position.My == "" && o.Menu.Position.At == "" {
		o.Menu.Position = defaults.Menu.Position
	}
	switch {
	case o.Animation.Static:
		o.Animation.Margins = [2]int{}
	case o.Animation.Margins == [2]int{}:
		o.Animation.Margins = defaults.Animation.Margins
	}
	switch {
	case o.Animation.Duration == 0:
		o.Animation.Duration = defaults.Animation.Duration
	case o.Animation.Duration < 0:
		o.Animation.Duration = 0
	}
	if o.Animation.FrameInterval <= 0 {
		o.Animation.FrameInterval = defaults.Animation.FrameInterval
	}
	if o.Messages.Auto == "" {
		o.Messages.Auto = defaults.Messages.Auto
	}
	if o.IsRtl == nil {
		o.IsRtl = defaults.IsRtl
	}
	if o.OnFrame == nil {
		o.OnFrame = func() {}
	}
	if o.Measure == nil {
		o.Measure = defaults.Measure
	}
	return o
}
