package menu

import (
	"github.com/automoto/starlancer/input"
	"github.com/automoto/starlancer/render"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TextureProvider resolves textures by name and knows the asset directory.
type TextureProvider interface {
	Texture(name string) *ebiten.Image
	AssetPath() string
}

// RenderContext is what a node sees while it draws.
type RenderContext struct {
	DT       float64
	Surface  render.Surface
	Textures TextureProvider
	// Input may be nil, in which case buttons do not react.
	Input   *input.State
	Manager *Manager
}

// Render draws the active page scaled from its design resolution to the
// surface size. It does nothing when no page is active.
func (m *Manager) Render(dt float64, surface render.Surface, textures TextureProvider, in *input.State) {
	if m.active == nil {
		return
	}

	sw, sh := surface.Size()
	sx := float64(sw) / m.active.Width
	sy := float64(sh) / m.active.Height

	ctx := &RenderContext{
		DT:       dt,
		Surface:  surface,
		Textures: textures,
		Input:    in,
		Manager:  m,
	}
	m.active.render(ctx, 0, 0, sx, sy)
}

// render draws n at offset + local*scale and recurses with the new offset.
// Every descendant shares the page's scale.
func (n *Node) render(ctx *RenderContext, ox, oy, sx, sy float64) {
	if n.Hidden {
		return
	}

	x := ox + n.X*sx
	y := oy + n.Y*sy
	w := n.Width * sx
	h := n.Height * sy

	switch n.Kind {
	case KindImage:
		n.drawImage(ctx, x, y, w, h)
	case KindText:
		n.drawText(ctx, x, y)
	case KindButton:
		n.updateButton(ctx, x, y, w, h)
		n.drawButton(ctx, x, y, w, h)
	}

	for _, c := range n.children {
		c.render(ctx, x, y, sx, sy)
	}
}

func (n *Node) drawImage(ctx *RenderContext, x, y, w, h float64) {
	var tex *ebiten.Image
	if ctx.Textures != nil && n.Texture != "" {
		tex = ctx.Textures.Texture(n.Texture)
	}
	ctx.Surface.DrawQuad(tex, x, y, w, h, n.Tint)
}

func (n *Node) drawText(ctx *RenderContext, x, y float64) {
	if n.Text == "" {
		return
	}
	face := ctx.Manager.GetFont(n.Font, n.Pitch)
	ctx.Surface.DrawText(n.Text, face, x, y, n.Color)
}

func (n *Node) drawButton(ctx *RenderContext, x, y, w, h float64) {
	clr := n.IdleColor
	switch {
	case n.pressed:
		clr = n.PressedColor
	case n.hovered || n.Focused:
		clr = n.HoverColor
	}

	s := float64(n.scale)
	dw, dh := w*s, h*s
	dx, dy := x-(dw-w)/2, y-(dh-h)/2
	ctx.Surface.DrawQuad(nil, dx, dy, dw, dh, clr)

	if n.Label == "" {
		return
	}
	face := ctx.Manager.GetFont(n.Font, n.Pitch)
	tw := font.MeasureString(face, n.Label).Ceil()
	th := face.Metrics().Height.Ceil()
	ctx.Surface.DrawText(n.Label, face, x+(w-float64(tw))/2, y+(h-float64(th))/2, n.Color)
}
