package ui

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

// CursorWrangler handles requests to place a (text/terminal) cursor on the
// screen, e.g. on the focussed menu entry of a rotator.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	desiredLocation     *CursorLocation
	mostRecentRequester string
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{cc: controller}
}

// Put places the cursor at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation != nil && w.mostRecentRequester != requesterID {
		log.Debug().Msgf("'%s' puts cursor at %s, overriding '%s' (at %s)", requesterID, l.String(), w.mostRecentRequester, w.desiredLocation.String())
	}

	w.desiredLocation = &l
	w.mostRecentRequester = requesterID
}

// Delete removes the cursor, unless another requester placed it since.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation == nil || w.mostRecentRequester != requesterID {
		return
	}

	w.desiredLocation = nil
	w.mostRecentRequester = ""
}

// Location returns the currently requested location, if any.
func (w *CursorWrangler) Location() (CursorLocation, bool) {
	w.mtx.RLock()
	defer w.mtx.RUnlock()
	if w.desiredLocation == nil {
		return CursorLocation{}, false
	}
	return *w.desiredLocation, true
}

// Enact enacts the current cursor location request via the underlying
// cursor controller.
func (w *CursorWrangler) Enact() {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.desiredLocation != nil {
		w.cc.ShowCursor(*w.desiredLocation)
	} else {
		w.cc.HideCursor()
	}
}
