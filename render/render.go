// Package render defines the draw surface the managers render into and an
// ebiten-backed implementation of it.
package render

import (
	"image/color"

	"github.com/automoto/starlancer/contract"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based faces come from freetype
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Surface accepts draw calls for one frame and reports the screen extents.
type Surface interface {
	// Size returns the current screen width and height in pixels.
	Size() (width, height int)
	// DrawQuad draws tex stretched over the rectangle, tinted by clr.
	// A nil texture draws a solid rectangle of clr.
	DrawQuad(tex *ebiten.Image, x, y, w, h float64, clr color.RGBA)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, face font.Face, x, y float64, clr color.RGBA)
}

// Batch is a Surface that draws into an ebiten image between Begin and End.
type Batch struct {
	target  *ebiten.Image
	op      ebiten.DrawImageOptions
	drawing bool

	quads int
	texts int
}

// NewBatch returns an idle batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Begin starts a frame that draws into target.
func (b *Batch) Begin(target *ebiten.Image) {
	contract.Assert(!b.drawing, "Batch.Begin called twice without End")
	contract.Assert(target != nil, "Batch.Begin with nil target")
	b.target = target
	b.drawing = true
	b.quads, b.texts = 0, 0
}

// End finishes the frame. The target is released.
func (b *Batch) End() {
	contract.Assert(b.drawing, "Batch.End called without Begin")
	b.drawing = false
	b.target = nil
}

// Target returns the image being drawn into, or nil outside Begin/End.
func (b *Batch) Target() *ebiten.Image {
	return b.target
}

// Stats returns the number of quads and text runs drawn since Begin.
func (b *Batch) Stats() (quads, texts int) {
	return b.quads, b.texts
}

func (b *Batch) Size() (int, int) {
	if b.target == nil {
		return 0, 0
	}
	bounds := b.target.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (b *Batch) DrawQuad(tex *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	contract.Assert(b.drawing, "DrawQuad outside Begin/End")
	b.quads++

	if tex == nil {
		vector.FillRect(b.target, float32(x), float32(y), float32(w), float32(h), clr, false)
		return
	}

	tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()
	if tw == 0 || th == 0 {
		return
	}

	b.op.GeoM.Reset()
	b.op.ColorScale.Reset()
	b.op.GeoM.Scale(w/float64(tw), h/float64(th))
	b.op.GeoM.Translate(x, y)
	b.op.ColorScale.ScaleWithColor(clr)
	b.target.DrawImage(tex, &b.op)
}

func (b *Batch) DrawText(s string, face font.Face, x, y float64, clr color.RGBA) {
	contract.Assert(b.drawing, "DrawText outside Begin/End")
	if face == nil || s == "" {
		return
	}
	b.texts++

	// text.Draw positions the baseline; shift down by the ascent so (x, y)
	// is the top-left corner.
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(b.target, s, face, int(x), int(y)+ascent, clr)
}
