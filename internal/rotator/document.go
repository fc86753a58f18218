package rotator

import (
	"sync"

	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

// dismissable is a rotator whose menu is dismissed by clicks elsewhere.
type dismissable interface {
	ID() string
	// claimsClick reports whether a click at the position should keep the
	// menu open.
	claimsClick(x, y int) bool
	dismissMenu()
}

// clickRegistry keeps track of all live rotators, to close their menus on
// clicks outside of them. Its listener is installed while there is at least
// one live rotator.
type clickRegistry struct {
	mtx       sync.Mutex
	order     []string
	members   map[string]dismissable
	listening *atomic.Bool
}

var document = &clickRegistry{
	members:   map[string]dismissable{},
	listening: atomic.NewBool(false),
}

func (r *clickRegistry) register(d dismissable) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.members[d.ID()]; ok {
		return
	}
	r.members[d.ID()] = d
	r.order = append(r.order, d.ID())
	if len(r.members) == 1 {
		r.listening.Store(true)
		log.Debug().Str("source", "rotator-document").Msg("installed outside-click listener")
	}
}

func (r *clickRegistry) unregister(id string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.members[id]; !ok {
		return
	}
	delete(r.members, id)
	for i := range r.order {
		if r.order[i] == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if len(r.members) == 0 {
		r.listening.Store(false)
		log.Debug().Str("source", "rotator-document").Msg("removed outside-click listener")
	}
}

func (r *clickRegistry) dispatch(x, y int) {
	if !r.listening.Load() {
		return
	}

	r.mtx.Lock()
	members := make([]dismissable, 0, len(r.order))
	for _, id := range r.order {
		members = append(members, r.members[id])
	}
	r.mtx.Unlock()

	for _, d := range members {
		if !d.claimsClick(x, y) {
			d.dismissMenu()
		}
	}
}

// DispatchDocumentClick informs all live rotators of a click anywhere on the
// screen. Each rotator whose curr section and menu do not contain the clicked
// position closes its menu.
//
// Hosts should call this for every click, after routing the click to the
// rotator under it (if any).
func DispatchDocumentClick(x, y int) { document.dispatch(x, y) }

// DocumentListenerInstalled reports whether the outside-click listener is
// installed, i.e. whether there are any live rotators.
func DocumentListenerInstalled() bool { return document.listening.Load() }

// LiveRotators returns the number of rotators not yet destroyed.
func LiveRotators() int {
	document.mtx.Lock()
	defer document.mtx.Unlock()
	return len(document.members)
}
