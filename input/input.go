// Package input snapshots mouse, touch, keyboard and gamepad state once per
// frame for the managers to read.
package input

import (
	cfg "github.com/automoto/starlancer/config"
)

// Method represents the type of input device being used
type Method int

const (
	MethodKeyboard Method = iota
	MethodXbox
	MethodPlayStation
	MethodTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// State is the input snapshot for the current tick. Action edges compare
// against the previous tick and roll forward in RollActions at the start of
// every poll. The pointer edge rolls in PostProcess after the frame has
// rendered, because buttons consume it while drawing.
type State struct {
	CursorX, CursorY int
	PointerDown      bool
	prevPointerDown  bool

	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	LastMethod Method
	Gamepads   int
}

// Provider exposes the current snapshot and the post-render reset step.
type Provider interface {
	State() *State
	PostProcess()
}

// Action returns the full ActionState for an action ID.
func (s *State) Action(id cfg.ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Pointer returns the cursor (or primary touch) position.
func (s *State) Pointer() (x, y int) {
	return s.CursorX, s.CursorY
}

// PointerJustPressed reports whether the primary button or touch went down this frame.
func (s *State) PointerJustPressed() bool {
	return s.PointerDown && !s.prevPointerDown
}

// PointerJustReleased reports whether the primary button or touch went up this frame.
func (s *State) PointerJustReleased() bool {
	return !s.PointerDown && s.prevPointerDown
}

// RollActions moves the action state into Previous and clears Current for
// resampling. Ebiten may run several updates per draw, so this happens per
// poll rather than per frame.
func (s *State) RollActions() {
	s.Previous = s.Current
	s.Current = [cfg.ActionCount]bool{}
}

// PostProcess rolls the pointer state forward. Call once per frame after the
// menus have rendered.
func (s *State) PostProcess() {
	s.prevPointerDown = s.PointerDown
}
