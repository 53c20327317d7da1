package menu

import (
	cfg "github.com/automoto/starlancer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// updateButton hit-tests the pointer against the button's screen rectangle
// and raises hover, press and click events through the manager.
func (n *Node) updateButton(ctx *RenderContext, x, y, w, h float64) {
	n.tickPulse(float32(ctx.DT))

	in := ctx.Input
	if in == nil {
		return
	}

	px, py := in.Pointer()
	fx, fy := float64(px), float64(py)
	inside := fx >= x && fx < x+w && fy >= y && fy < y+h

	if inside != n.hovered {
		n.hovered = inside
		if inside {
			n.startPulse(cfg.Menu.HoverScale)
			ctx.Manager.TriggerEvent(n, EventHoverStart)
		} else {
			n.startPulse(1)
			ctx.Manager.TriggerEvent(n, EventHoverEnd)
		}
	}

	if inside && in.PointerJustPressed() {
		n.pressed = true
		ctx.Manager.TriggerEvent(n, EventPress)
	}

	if in.PointerJustReleased() {
		clicked := n.pressed && inside
		n.pressed = false
		if clicked {
			ctx.Manager.TriggerEvent(n, EventClick)
		}
	}
}

func (n *Node) startPulse(to float32) {
	n.pulse = gween.New(n.scale, to, cfg.Menu.HoverDuration, ease.OutQuad)
}

func (n *Node) tickPulse(dt float32) {
	if n.pulse == nil {
		return
	}
	v, done := n.pulse.Update(dt)
	n.scale = v
	if done {
		n.pulse = nil
	}
}
