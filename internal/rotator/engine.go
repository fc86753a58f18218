package rotator

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RotationEngine is the state machine of a rotator: it tracks the current
// value, derives its neighbors and performs (animated) rotations between
// values.
type RotationEngine[V comparable] interface {
	// Initialize sets the engine to the given list of values and the given
	// initial value (or the first value, if the initial value is not in the
	// list), without animating.
	Initialize(list *List[V], initial V)

	// Value returns the current value.
	Value() V

	// SetValue jumps to the given value without animating and returns it.
	// If the value already is the current value, nothing happens.
	SetValue(v V) V

	// Next rotates to the value following the current one, if any.
	Next()

	// Prev rotates to the value preceding the current one, if any.
	Prev()

	// Rotate performs an animated rotation to the given value.
	Rotate(target V)

	// RotatingTo returns the value currently being rotated to, if any.
	RotatingTo() (V, bool)
}

// transition is a single animated rotation.
type transition[V comparable] struct {
	target  V
	margins [2]int
}

// Engine implements RotationEngine, driving a SectionView and a Menu.
type Engine[V comparable] struct {
	list     *List[V]
	sections *SectionView[V]
	menu     *Menu[V]

	animation AnimationOptions
	isRtl     func() bool
	scheduler Scheduler
	onFrame   func()

	initialized bool
	current     V
	rotatingTo  *V

	// transitions are performed one after another; the first one is the one
	// being animated
	transitions []*transition[V]

	// activateOnSelected, when set, activates the curr section on the next
	// selection
	activateOnSelected bool

	onSelected []func(V)
	onAuto     []func()

	destroyed bool

	log zerolog.Logger
}

var _ RotationEngine[string] = &Engine[string]{}

func newEngine[V comparable](sections *SectionView[V], menu *Menu[V], opts Options[V]) *Engine[V] {
	return &Engine[V]{
		sections:  sections,
		menu:      menu,
		animation: opts.Animation,
		isRtl:     opts.IsRtl,
		scheduler: opts.Scheduler,
		onFrame:   opts.OnFrame,
		log:       log.With().Str("source", "rotator-engine").Logger(),
	}
}

// Initialize sets the engine to the given list and initial value.
func (e *Engine[V]) Initialize(list *List[V], initial V) {
	e.list = list
	index, ok := list.IndexOf(initial)
	if !ok {
		e.log.Debug().Interface("value", initial).Msg("initial value not in list, defaulting to first")
	}
	e.render(index)
	e.initialized = true
}

// Value returns the current value.
func (e *Engine[V]) Value() V { return e.current }

// SetValue jumps to the given value without animating and returns it.
//
// A value that is not in the list leads to the first value of the list being
// shown (the given value is still returned).
func (e *Engine[V]) SetValue(v V) V {
	if e.initialized && v == e.current {
		return e.current
	}
	index, ok := e.list.IndexOf(v)
	if !ok {
		e.log.Debug().Interface("value", v).Msg("value not in list, defaulting to first")
	}
	e.render(index)
	e.initialized = true
	return v
}

// Refresh re-derives the sections from the list, e.g. after the list has been
// changed.
func (e *Engine[V]) Refresh() {
	index, ok := e.list.IndexOf(e.current)
	if !ok {
		e.log.Debug().Interface("value", e.current).Msg("current value no longer in list, defaulting to first")
	}
	e.render(index)
}

func (e *Engine[V]) render(index int) {
	e.current = e.list.At(index).Value
	e.sections.render(e.list, index)
	e.menu.MarkActive(e.current)
}

// Next rotates to the value following the current one. While a rotation is
// in progress, this is relative to the value being rotated to.
func (e *Engine[V]) Next() { e.step(+1) }

// Prev rotates to the value preceding the current one. While a rotation is in
// progress, this is relative to the value being rotated to.
func (e *Engine[V]) Prev() { e.step(-1) }

func (e *Engine[V]) step(delta int) {
	from := e.current
	if e.rotatingTo != nil {
		from = *e.rotatingTo
	}
	index, _ := e.list.IndexOf(from)
	targetIndex := index + delta
	if targetIndex < 0 || targetIndex >= e.list.Len() {
		e.log.Trace().Int("index", index).Int("delta", delta).Msg("no neighbor to rotate to")
		return
	}

	e.activateOnSelected = true
	e.Rotate(e.list.At(targetIndex).Value)
	e.sections.Activate(nil)
}

// RotatingTo returns the value being rotated to, if any.
func (e *Engine[V]) RotatingTo() (V, bool) {
	if e.rotatingTo == nil {
		var zero V
		return zero, false
	}
	return *e.rotatingTo, true
}

// Animating reports whether any rotation is being animated.
func (e *Engine[V]) Animating() bool { return len(e.transitions) > 0 }

// Rotate performs an animated rotation to the target value.
//
// If a rotation to a different value is still in progress, it is superseded:
// it is still animated to its end, but has no effect, and the rotation to the
// target is animated after it.
func (e *Engine[V]) Rotate(target V) {
	if e.destroyed {
		return
	}
	if (e.rotatingTo != nil && *e.rotatingTo == target) || (e.rotatingTo == nil && target == e.current) {
		e.log.Trace().Interface("target", target).Msg("rotation in progress or done already")
		return
	}

	// Whichever of the target and the current value comes first in the list
	// decides the direction; neither being found counts as before.
	beforeCurrent := true
	for i := 0; i < e.list.Len(); i++ {
		v := e.list.At(i).Value
		if v == target {
			break
		}
		if v == e.current {
			beforeCurrent = false
			break
		}
	}

	margins := e.animation.Margins
	if beforeCurrent {
		margins[0], margins[1] = margins[1], margins[0]
	}
	if e.isRtl() {
		margins[0], margins[1] = margins[1], margins[0]
	}

	t := &transition[V]{target: target, margins: margins}
	e.rotatingTo = &t.target
	e.transitions = append(e.transitions, t)
	e.log.Debug().Interface("target", target).Bool("before-current", beforeCurrent).Int("queued", len(e.transitions)).Msg("rotating")
	if len(e.transitions) == 1 {
		e.animate(t)
	}
}

// animate schedules the frames of the transition, the last of which finishes
// it.
func (e *Engine[V]) animate(t *transition[V]) {
	frames := int(e.animation.Duration / e.animation.FrameInterval)
	if frames < 1 {
		frames = 1
	}
	at := func(i int) time.Duration {
		return e.animation.Duration * time.Duration(i) / time.Duration(frames)
	}

	var frame func(i int)
	frame = func(i int) {
		if e.destroyed {
			return
		}
		progress := float64(i) / float64(frames)
		for _, node := range e.sections.labelNodes() {
			node.MarginLeft = float64(t.margins[0]) * progress
			node.MarginRight = float64(t.margins[1]) * progress
			node.Opacity = 1 - progress
		}
		if i == frames {
			e.finish(t)
		} else {
			e.scheduler.AfterFunc(at(i+1)-at(i), func() { frame(i + 1) })
		}
		e.onFrame()
	}
	e.scheduler.AfterFunc(at(1), func() { frame(1) })
}

func (e *Engine[V]) finish(t *transition[V]) {
	e.transitions = e.transitions[1:]
	for _, node := range e.sections.labelNodes() {
		node.reset()
	}

	if e.rotatingTo == nil || *e.rotatingTo != t.target {
		e.log.Debug().Interface("target", t.target).Msg("rotation superseded, not selecting")
	} else {
		e.rotatingTo = nil
		e.emitSelected(e.SetValue(t.target))
	}

	if len(e.transitions) > 0 && !e.destroyed {
		e.animate(e.transitions[0])
	}
}

// OnSelected registers a callback for whenever a value is selected.
func (e *Engine[V]) OnSelected(f func(V)) { e.onSelected = append(e.onSelected, f) }

// OnAuto registers a callback for whenever the auto option is selected.
func (e *Engine[V]) OnAuto(f func()) { e.onAuto = append(e.onAuto, f) }

func (e *Engine[V]) emitSelected(v V) {
	if e.activateOnSelected {
		e.activateOnSelected = false
		e.sections.Activate(nil)
	}
	e.log.Debug().Interface("value", v).Msg("selected")
	for _, f := range e.onSelected {
		f(v)
	}
}

func (e *Engine[V]) emitAuto() {
	e.log.Debug().Msg("auto selected")
	for _, f := range e.onAuto {
		f()
	}
}

func (e *Engine[V]) destroy() {
	e.destroyed = true
	e.transitions = nil
	e.rotatingTo = nil
	e.onSelected = nil
	e.onAuto = nil
}
