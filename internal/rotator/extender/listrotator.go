// Package extender connects list rotators to an upstream owner of the value
// they edit, such as the editor of a composite value that holds one rotator
// per component.
package extender

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/valueview/internal/rotator"
)

// Host is what a rotator is mounted into, e.g. a pane of a TUI.
type Host[V comparable] interface {
	Mount(w *rotator.Widget[V])
}

// Listrotator bridges a rotator and an upstream value owner.
//
// Values selected in the rotator are reported upstream via the value-change
// callback (nil meaning "auto"), while on every Draw the rotator is
// reconciled with the upstream value. An upstream value that is not one of
// the rotator's values (flagged Custom) is shown as a custom entry for as
// long as upstream holds it.
type Listrotator[V comparable] struct {
	Rotator *rotator.Widget[V]

	onValueChange    func(*V)
	getUpstreamValue func() *rotator.Item[V]

	customHandle rotator.MenuHandle
	customValue  V
	hasCustom    bool

	log zerolog.Logger
}

// New constructs a rotator for the given values, with the widths of its
// sections only measured on Init.
func New[V comparable](
	values []rotator.Item[V],
	onValueChange func(*V),
	getUpstreamValue func() *rotator.Item[V],
	opts rotator.Options[V],
) (*Listrotator[V], error) {
	opts.Values = values
	opts.DeferInit = true
	w, err := rotator.NewWidget(opts)
	if err != nil {
		return nil, err
	}
	return &Listrotator[V]{
		Rotator:          w,
		onValueChange:    onValueChange,
		getUpstreamValue: getUpstreamValue,
		log:              log.With().Str("source", "listrotator-extender").Str("rotator", w.ID()).Logger(),
	}, nil
}

// Init subscribes to the rotator's notifications and mounts it into the host.
func (l *Listrotator[V]) Init(host Host[V]) {
	l.Rotator.OnSelected(func(v V) {
		if l.onValueChange == nil {
			return
		}
		upstream := l.getUpstreamValue()
		if upstream == nil || upstream.Value != v {
			l.log.Debug().Interface("value", v).Msg("reporting selected value upstream")
			l.onValueChange(&v)
		}
	})
	l.Rotator.OnAuto(func() {
		if l.onValueChange == nil {
			return
		}
		if l.getUpstreamValue() != nil {
			l.log.Debug().Msg("reporting auto upstream")
			l.onValueChange(nil)
		}
	})

	host.Mount(l.Rotator)
	l.Rotator.InitWidths()
}

// Draw reconciles the rotator with the upstream value. It is meant to be
// called whenever the host redraws.
func (l *Listrotator[V]) Draw() {
	if l.getUpstreamValue == nil {
		return
	}

	// the custom value being current when it is removed leaves the rotator
	// on a value nobody chose, so it has to follow upstream
	onRemovedCustom := false
	if l.hasCustom {
		onRemovedCustom = l.Rotator.Value() == l.customValue
		if err := l.Rotator.RemoveCustom(l.customHandle); err != nil {
			l.log.Error().Err(err).Msg("could not remove custom entry")
		}
		var zero V
		l.customHandle, l.customValue, l.hasCustom = rotator.MenuHandle{}, zero, false
	}

	upstream := l.getUpstreamValue()
	if upstream == nil {
		if onRemovedCustom && !l.Rotator.AutoActive() {
			l.Rotator.Activate(l.Rotator.Sections().Auto)
		}
		return
	}

	if upstream.Custom {
		handle, err := l.Rotator.InsertCustom(*upstream, len(l.Rotator.Items()))
		if err != nil {
			l.log.Error().Err(err).Interface("value", upstream.Value).Msg("could not insert custom entry")
		} else {
			l.customHandle, l.customValue, l.hasCustom = handle, upstream.Value, true
		}
	}

	if l.Rotator.AutoActive() || l.hasCustom || onRemovedCustom {
		l.Rotator.SetValue(upstream.Value)
		if l.hasCustom {
			l.Rotator.Menu().Refresh()
			l.Rotator.Activate(nil)
		}
	}
}

// GetValue returns the rotator's current value, or nil if it is set to auto.
func (l *Listrotator[V]) GetValue() *V {
	if l.Rotator == nil || l.Rotator.AutoActive() {
		return nil
	}
	v := l.Rotator.Value()
	return &v
}

// Destroy destroys the rotator and releases the callbacks.
func (l *Listrotator[V]) Destroy() {
	if l.Rotator != nil {
		l.Rotator.Destroy()
	}
	l.onValueChange = nil
	l.getUpstreamValue = nil
}
