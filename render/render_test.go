package render

import (
	"image/color"
	"testing"

	"github.com/automoto/starlancer/contract"
	"github.com/hajimehoshi/ebiten/v2"
)

func expectViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if _, ok := r.(*contract.Violation); !ok {
			t.Fatalf("expected *contract.Violation, got %v", r)
		}
	}()
	fn()
}

func TestBatchSizeOutsideFrame(t *testing.T) {
	b := NewBatch()
	if w, h := b.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %d,%d, want 0,0", w, h)
	}
	if b.Target() != nil {
		t.Error("Target() should be nil before Begin")
	}
}

func TestBatchBeginEnd(t *testing.T) {
	b := NewBatch()
	screen := ebiten.NewImage(320, 200)

	b.Begin(screen)
	if w, h := b.Size(); w != 320 || h != 200 {
		t.Errorf("Size() = %d,%d, want 320,200", w, h)
	}
	b.DrawQuad(nil, 0, 0, 10, 10, color.RGBA{255, 0, 0, 255})
	b.DrawQuad(ebiten.NewImage(4, 4), 10, 10, 20, 20, color.RGBA{255, 255, 255, 255})
	b.DrawText("", nil, 0, 0, color.RGBA{})
	if q, tx := b.Stats(); q != 2 || tx != 0 {
		t.Errorf("Stats() = %d,%d, want 2,0", q, tx)
	}
	b.End()

	if b.Target() != nil {
		t.Error("Target() should be nil after End")
	}
}

func TestBatchMisuse(t *testing.T) {
	b := NewBatch()
	expectViolation(t, func() { b.End() })
	expectViolation(t, func() { b.DrawQuad(nil, 0, 0, 1, 1, color.RGBA{}) })

	b.Begin(ebiten.NewImage(8, 8))
	expectViolation(t, func() { b.Begin(ebiten.NewImage(8, 8)) })
}
