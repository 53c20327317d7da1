package input

import (
	"strings"

	cfg "github.com/automoto/starlancer/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller fills a State from ebiten's keyboard, mouse, touch and gamepad APIs.
type Poller struct {
	state State

	// Reusable slices to avoid per-frame allocations
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID

	// Cache controller types to avoid string allocation every frame
	controllerTypes map[ebiten.GamepadID]Method
}

// NewPoller returns a poller with an empty snapshot.
func NewPoller() *Poller {
	return &Poller{
		controllerTypes: make(map[ebiten.GamepadID]Method),
	}
}

// State returns the live snapshot.
func (p *Poller) State() *State {
	return &p.state
}

// PostProcess rolls the pointer forward; see State.PostProcess.
func (p *Poller) PostProcess() {
	p.state.PostProcess()
}

// Poll reads raw device state into the snapshot. Must run at the start of
// each update, before any mode reads input.
func (p *Poller) Poll() {
	s := &p.state
	s.RollActions()

	p.pollPointer()

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	s.Gamepads = len(p.gamepadIDs)

	analogLeft, analogRight, analogUp, analogDown, analogGpID := p.analogStickState()

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into menu directions
	if analogLeft {
		s.Current[cfg.ActionMenuLeft] = true
	}
	if analogRight {
		s.Current[cfg.ActionMenuRight] = true
	}
	if analogUp {
		s.Current[cfg.ActionMenuUp] = true
	}
	if analogDown {
		s.Current[cfg.ActionMenuDown] = true
	}
	if analogLeft || analogRight || analogUp || analogDown {
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		s.LastMethod = p.controllerType(activeGamepadID)
	} else if keyboardUsed {
		s.LastMethod = MethodKeyboard
	}
}

// pollPointer prefers an active touch over the mouse cursor.
func (p *Poller) pollPointer() {
	s := &p.state

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		s.CursorX, s.CursorY = ebiten.TouchPosition(p.touchIDs[0])
		s.PointerDown = true
		s.LastMethod = MethodTouch
		return
	}

	s.CursorX, s.CursorY = ebiten.CursorPosition()
	s.PointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// controllerType returns cached controller type, detecting on first access
func (p *Poller) controllerType(gpID ebiten.GamepadID) Method {
	if method, ok := p.controllerTypes[gpID]; ok {
		return method
	}

	method := classifyGamepad(ebiten.GamepadName(gpID))
	p.controllerTypes[gpID] = method
	return method
}

func classifyGamepad(name string) Method {
	name = strings.ToLower(name)
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		return MethodPlayStation
	}
	// Default gamepad to Xbox-style
	return MethodXbox
}

// analogStickState reads the left analog stick from all gamepads and returns
// directional states past the deadzone plus the gamepad that produced them.
func (p *Poller) analogStickState() (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}
