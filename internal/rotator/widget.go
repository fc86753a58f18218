package rotator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Widget is a list rotator, composed of a rotation engine, the sections it
// drives and a drop-down menu.
type Widget[V comparable] struct {
	id string

	list     *List[V]
	engine   *Engine[V]
	sections *SectionView[V]
	menu     *Menu[V]

	customHandle MenuHandle
	customIndex  int

	destroyed bool

	log zerolog.Logger
}

// NewWidget constructs a new rotator from the given options, set to the first
// of the values. The rotator starts out with the auto section being active.
//
// Options not set are filled with defaults (see DefaultOptions), except for
// the scheduler, which has to be given.
func NewWidget[V comparable](opts Options[V]) (*Widget[V], error) {
	if len(opts.Values) == 0 {
		return nil, ErrNoValues
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	opts = opts.completed()

	w := &Widget[V]{
		id:   "listrotator-" + uuid.NewString(),
		list: NewList(opts.Values),
	}
	w.log = log.With().Str("source", "rotator").Str("id", w.id).Logger()

	w.sections = newSectionView[V](opts.Messages.Auto, opts.IsRtl, opts.Measure)
	w.menu = newMenu(w.list.Items(), opts.Menu.Position, opts.IsRtl, opts.Measure, func() (int, int, int, int) {
		curr := w.sections.Curr
		return curr.X, curr.Y, curr.W, 1
	})
	w.engine = newEngine(w.sections, w.menu, opts)
	w.engine.Initialize(w.list, w.list.At(0).Value)

	if !opts.DeferInit {
		w.InitWidths()
	}

	document.register(w)
	w.log.Debug().Int("values", w.list.Len()).Bool("defer-init", opts.DeferInit).Msg("created rotator")
	return w, nil
}

// ID returns the rotator's unique identifier.
func (w *Widget[V]) ID() string { return w.id }

// Engine returns the rotator's rotation engine.
func (w *Widget[V]) Engine() RotationEngine[V] { return w.engine }

// Sections returns the rotator's sections.
func (w *Widget[V]) Sections() *SectionView[V] { return w.sections }

// Menu returns the rotator's drop-down menu.
func (w *Widget[V]) Menu() *Menu[V] { return w.menu }

// Items returns (a copy of) the values the rotator rotates through.
func (w *Widget[V]) Items() []Item[V] { return w.list.Items() }

// Value returns the current value.
func (w *Widget[V]) Value() V { return w.engine.Value() }

// SetValue jumps to the given value without animating.
func (w *Widget[V]) SetValue(v V) V { return w.engine.SetValue(v) }

// Next rotates to the next value, leaving the auto state.
func (w *Widget[V]) Next() { w.engine.Next() }

// Prev rotates to the previous value, leaving the auto state.
func (w *Widget[V]) Prev() { w.engine.Prev() }

// Rotate rotates to the given value.
func (w *Widget[V]) Rotate(v V) { w.engine.Rotate(v) }

// Animating reports whether a rotation is being animated.
func (w *Widget[V]) Animating() bool { return w.engine.Animating() }

// OnSelected registers a callback for whenever a value is selected, be it by
// rotating to it or by selecting it from the menu.
func (w *Widget[V]) OnSelected(f func(V)) { w.engine.OnSelected(f) }

// OnAuto registers a callback for whenever the auto option is selected.
func (w *Widget[V]) OnAuto(f func()) { w.engine.OnAuto(f) }

// InitWidths measures all labels and reserves the maximum width needed in each
// section, which is necessary unless the rotator was constructed with
// DeferInit.
func (w *Widget[V]) InitWidths() {
	w.sections.InitWidths(w.list.Labels())
	w.menu.SetMinWidth(w.sections.Curr.W)
}

// Layout places the rotator at the given position.
func (w *Widget[V]) Layout(x, y int) {
	w.sections.Layout(x, y)
	w.menu.SetMinWidth(w.sections.Curr.W)
}

// Activate marks the given section as active (the curr section, if nil).
// Activating the curr section leaves the auto state.
func (w *Widget[V]) Activate(section *Section[V]) { w.sections.Activate(section) }

// Deactivate clears the active state of both the curr and the auto section.
func (w *Widget[V]) Deactivate() { w.sections.Deactivate() }

// AutoActive reports whether the rotator is set to "auto", meaning the current
// value has not been chosen explicitly.
func (w *Widget[V]) AutoActive() bool { return w.sections.AutoActive() }

// SelectAuto selects the auto option, unless it is active already.
func (w *Widget[V]) SelectAuto() {
	if w.AutoActive() {
		return
	}
	w.sections.Activate(w.sections.Auto)
	w.engine.emitAuto()
}

// ToggleMenu shows the menu if it is hidden and hides it otherwise.
func (w *Widget[V]) ToggleMenu() {
	w.menu.Toggle()
	w.sections.Activate(nil)
}

// ShowMenu shows the menu.
func (w *Widget[V]) ShowMenu() {
	w.menu.Show()
	w.sections.Activate(nil)
}

// HideMenu hides the menu.
func (w *Widget[V]) HideMenu() {
	w.menu.Hide()
	w.sections.Activate(nil)
}

// Select selects the given value as if chosen from the menu: it jumps to the
// value without animating, notifies of the selection and hides the menu.
func (w *Widget[V]) Select(v V) {
	w.engine.emitSelected(w.engine.SetValue(v))
	w.menu.Hide()
}

// SelectFocussed selects the menu's keyboard-focussed entry, if any.
func (w *Widget[V]) SelectFocussed() {
	entry, ok := w.menu.Focussed()
	if !ok {
		return
	}
	w.Select(entry.Value)
}

// Disable disables the prev, curr, and next sections.
func (w *Widget[V]) Disable() { w.sections.Disable() }

// Enable enables the prev, curr, and next sections.
func (w *Widget[V]) Enable() { w.sections.Enable() }

// Disabled reports whether the rotator is disabled.
func (w *Widget[V]) Disabled() bool { return w.sections.Curr.Disabled }

// Click handles a click at the given position. It returns whether the click
// hit the rotator (or its menu).
func (w *Widget[V]) Click(x, y int) bool {
	if w.destroyed {
		return false
	}
	if entry, ok := w.menu.EntryAt(x, y); ok {
		w.Select(entry.Value)
		return true
	}

	section := w.sections.SectionAt(x, y)
	if section == nil {
		return false
	}
	if section.Disabled {
		w.log.Trace().Str("section", section.Kind.ToString()).Msg("ignoring click on disabled section")
		return true
	}
	switch section.Kind {
	case SectionAuto:
		w.SelectAuto()
	case SectionPrev:
		w.Prev()
	case SectionCurr:
		w.ToggleMenu()
	case SectionNext:
		w.Next()
	}
	return true
}

// Hover updates the hover state for a mouse cursor at the given position.
func (w *Widget[V]) Hover(x, y int) {
	w.sections.SetHover(w.sections.SectionAt(x, y))
}

func (w *Widget[V]) claimsClick(x, y int) bool {
	return w.sections.Curr.Contains(x, y) || w.menu.Contains(x, y)
}

func (w *Widget[V]) dismissMenu() { w.menu.Hide() }

// InsertCustom inserts a custom value at the given index, both into the list
// of values and into the menu. Only a single custom value may be present at a
// time.
func (w *Widget[V]) InsertCustom(item Item[V], index int) (MenuHandle, error) {
	if w.customHandle.Valid() {
		return MenuHandle{}, ErrCustomEntryPresent
	}
	item.Custom = true
	index, err := w.list.Insert(item, index)
	if err != nil {
		return MenuHandle{}, fmt.Errorf("could not insert custom value: %w", err)
	}
	handle, err := w.menu.InsertCustom(item, index)
	if err != nil {
		_ = w.list.RemoveAt(index)
		return MenuHandle{}, fmt.Errorf("could not insert custom menu entry: %w", err)
	}
	w.customHandle, w.customIndex = handle, index
	w.afterSplice()
	return handle, nil
}

// RemoveCustom removes the custom value the handle refers to.
func (w *Widget[V]) RemoveCustom(h MenuHandle) error {
	if !h.Valid() || h != w.customHandle {
		return ErrUnknownHandle
	}
	if err := w.menu.RemoveCustom(h); err != nil {
		return err
	}
	if err := w.list.RemoveAt(w.customIndex); err != nil {
		return fmt.Errorf("could not remove custom value: %w", err)
	}
	w.customHandle, w.customIndex = MenuHandle{}, 0
	w.afterSplice()
	return nil
}

func (w *Widget[V]) afterSplice() {
	w.engine.Refresh()
	if w.sections.WidthsInitialized() {
		w.InitWidths()
	}
}

// Destroy tears the rotator down. Pending animations are dropped and the
// rotator stops taking part in outside-click handling.
func (w *Widget[V]) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.engine.destroy()
	w.menu.Hide()
	document.unregister(w.id)
	w.log.Debug().Msg("destroyed rotator")
}

// Destroyed reports whether the rotator has been destroyed.
func (w *Widget[V]) Destroyed() bool { return w.destroyed }
