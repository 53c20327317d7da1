// Package modes schedules game modes with deferred transitions: a requested
// change only takes effect on a later Update, once the current mode agrees
// to exit.
package modes

import (
	"log"

	"github.com/automoto/starlancer/contract"
	"github.com/automoto/starlancer/render"
)

// Mode is one phase of the game with its own lifecycle.
type Mode interface {
	Name() string
	// Enter runs once each time the mode becomes current.
	Enter()
	Update(dt float64)
	Render(dt float64, s render.Surface)
	// Exit is polled every tick while a change away from the mode is pending.
	// Returning false keeps the mode current for another tick.
	Exit() bool
}

const none = -1

// Manager owns the registered modes and arbitrates transitions.
type Manager struct {
	modes   []Mode
	current int
	desired int
}

// NewManager returns a manager with no modes.
func NewManager() *Manager {
	return &Manager{current: none, desired: none}
}

// AddMode registers m. Names are not checked for duplicates; lookups resolve
// to the first registered match.
func (mm *Manager) AddMode(m Mode) {
	contract.Assert(m != nil, "AddMode(nil)")
	mm.modes = append(mm.modes, m)
	log.Printf("[ModeManager] registered mode %q", m.Name())
}

// ChangeMode requests a switch to the named mode. The switch happens during
// a later Update.
func (mm *Manager) ChangeMode(name string) {
	idx := mm.index(name)
	if idx == none {
		contract.NotFound("mode", name, mm.names())
	}
	if idx != mm.desired {
		log.Printf("[ModeManager] change requested: %s -> %s", mm.nameAt(mm.current), name)
	}
	mm.desired = idx
}

// Update evaluates a pending transition and then updates the current mode.
func (mm *Manager) Update(dt float64) {
	if len(mm.modes) == 0 {
		return
	}

	if mm.desired != mm.current {
		if mm.current == none || mm.modes[mm.current].Exit() {
			log.Printf("[ModeManager] %s -> %s", mm.nameAt(mm.current), mm.nameAt(mm.desired))
			mm.current = mm.desired
			if mm.current != none {
				mm.modes[mm.current].Enter()
			}
		}
	}

	contract.Assert(mm.current != none, "Update with %d modes registered but none selected", len(mm.modes))
	mm.modes[mm.current].Update(dt)
}

// Render draws the current mode. It does nothing before the first mode has
// become current.
func (mm *Manager) Render(dt float64, s render.Surface) {
	if mm.current == none {
		return
	}
	mm.modes[mm.current].Render(dt, s)
}

// Current returns the name of the current mode, or "" when there is none.
func (mm *Manager) Current() string {
	return mm.nameAt(mm.current)
}

// Desired returns the name of the requested mode, or "" when none was
// requested.
func (mm *Manager) Desired() string {
	return mm.nameAt(mm.desired)
}

// Pending reports whether a requested change has not been committed yet.
func (mm *Manager) Pending() bool {
	return mm.desired != mm.current
}

// Len returns the number of registered modes.
func (mm *Manager) Len() int {
	return len(mm.modes)
}

// Release drops every mode without calling Exit.
func (mm *Manager) Release() {
	mm.modes = nil
	mm.current = none
	mm.desired = none
}

func (mm *Manager) index(name string) int {
	for i, m := range mm.modes {
		if m.Name() == name {
			return i
		}
	}
	return none
}

func (mm *Manager) nameAt(i int) string {
	if i == none {
		return ""
	}
	return mm.modes[i].Name()
}

func (mm *Manager) names() []string {
	names := make([]string, len(mm.modes))
	for i, m := range mm.modes {
		names[i] = m.Name()
	}
	return names
}
