package menu

import (
	"github.com/automoto/starlancer/contract"
)

// EventKind is an interaction a node reports.
type EventKind int

const (
	EventClick EventKind = iota
	EventPress
	EventHoverStart
	EventHoverEnd
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventPress:
		return "press"
	case EventHoverStart:
		return "hoverStart"
	case EventHoverEnd:
		return "hoverEnd"
	}
	return "unknown"
}

// HandlerFunc receives the node that raised the event and the event kind.
type HandlerFunc func(n *Node, kind EventKind)

// Handler is a callback with an identity used to remove it later. Create
// handlers with Manager.NewHandler.
type Handler struct {
	id uint64
	fn HandlerFunc
}

// ID returns the handler's registration identity.
func (h Handler) ID() uint64 {
	return h.id
}

type eventKey struct {
	node NodeID
	kind EventKind
}

// registry maps (node, kind) to handlers in registration order. nextID is
// owned here and only grows; clearing entries does not reset it.
type registry struct {
	nextID  uint64
	entries map[eventKey][]Handler
}

func newRegistry() registry {
	return registry{entries: make(map[eventKey][]Handler)}
}

func (r *registry) newHandler(fn HandlerFunc) Handler {
	contract.Assert(fn != nil, "NewHandler(nil)")
	r.nextID++
	return Handler{id: r.nextID, fn: fn}
}

func (r *registry) add(key eventKey, h Handler) {
	r.entries[key] = append(r.entries[key], h)
}

func (r *registry) remove(key eventKey, id uint64) bool {
	list, ok := r.entries[key]
	if !ok {
		return false
	}
	for i, h := range list {
		if h.id != id {
			continue
		}
		// Copy rather than shift in place so an in-flight dispatch over the
		// old slice is unaffected.
		next := make([]Handler, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(r.entries, key)
		} else {
			r.entries[key] = next
		}
		return true
	}
	return false
}

func (r *registry) handlers(key eventKey) []Handler {
	return r.entries[key]
}

func (r *registry) count(key eventKey) int {
	return len(r.entries[key])
}

func (r *registry) clear() {
	r.entries = make(map[eventKey][]Handler)
}
