package menu

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/starlancer/contract"
	"github.com/automoto/starlancer/fonts"
	"github.com/automoto/starlancer/input"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
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

type drawCall struct {
	text       string
	x, y, w, h float64
	clr        color.RGBA
}

// recordingSurface remembers every draw call.
type recordingSurface struct {
	w, h  int
	quads []drawCall
	texts []drawCall
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) DrawQuad(_ *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	s.quads = append(s.quads, drawCall{x: x, y: y, w: w, h: h, clr: clr})
}

func (s *recordingSurface) DrawText(str string, _ font.Face, x, y float64, clr color.RGBA) {
	s.texts = append(s.texts, drawCall{text: str, x: x, y: y, clr: clr})
}

func newTestManager(t *testing.T, pitches ...int) *Manager {
	t.Helper()
	m := NewManager(fonts.NewCache(""))
	for _, p := range pitches {
		if !m.Fonts().LoadBytes("default", p, goregular.TTF) {
			t.Fatalf("failed to load default font at %d", p)
		}
	}
	return m
}

func TestCreateNodeAssignsSequentialIDs(t *testing.T) {
	m := newTestManager(t)

	a := m.CreateNode(KindImage)
	b := m.CreateNode(KindText)
	if a.ID() == 0 || b.ID() != a.ID()+1 {
		t.Fatalf("ids = %d, %d; want sequential non-zero", a.ID(), b.ID())
	}
	if got, ok := m.Node(b.ID()); !ok || got != b {
		t.Error("Node(id) did not return the created node")
	}
	if _, ok := m.Node(0); ok {
		t.Error("Node(0) should not resolve")
	}
}

func TestAddChildOwnership(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("p", 100, 100)
	other := m.AddMenu("q", 100, 100)
	child := m.AddNode(page, KindImage, "img")

	if child.Parent() != page || len(page.Children()) != 1 {
		t.Fatal("child not attached to page")
	}

	t.Run("second parent", func(t *testing.T) {
		expectViolation(t, func() { other.AddChild(child) })
	})
	t.Run("page as child", func(t *testing.T) {
		expectViolation(t, func() { page.AddChild(other) })
	})
	t.Run("cycle", func(t *testing.T) {
		g := m.AddNode(page, KindGroup, "g")
		inner := m.AddNode(g, KindGroup, "inner")
		g.parent = nil
		expectViolation(t, func() { inner.AddChild(g) })
	})
}

func TestShowHideMenu(t *testing.T) {
	m := newTestManager(t)
	m.AddMenu("X", 10, 10)
	y := m.AddMenu("Y", 10, 10)

	if m.HasActiveMenu() {
		t.Fatal("new manager has an active menu")
	}
	expectViolation(t, func() { m.ActiveMenu() })

	m.ShowMenu("X")
	m.ShowMenu("Y")
	if m.ActiveMenu() != y {
		t.Errorf("active = %q, want Y", m.ActiveMenu().Name)
	}

	m.HideMenu()
	m.HideMenu()
	if m.HasActiveMenu() {
		t.Error("HideMenu left a menu active")
	}

	expectViolation(t, func() { m.ShowMenu("Z") })
}

func TestFindNodeFirstMatchPreOrder(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("p", 10, 10)
	g := m.AddNode(page, KindGroup, "g")
	deep := m.AddNode(g, KindText, "dup")
	shallow := m.AddNode(page, KindText, "dup")

	if got := m.FindNode("p", "dup"); got != deep {
		t.Errorf("FindNode returned id %d, want depth-first match %d (not %d)", got.ID(), deep.ID(), shallow.ID())
	}
	if got := m.FindNode("p", "p"); got != page {
		t.Error("FindNode should match the page itself")
	}

	t.Run("missing node", func(t *testing.T) {
		expectViolation(t, func() { m.FindNode("p", "nope") })
	})
	t.Run("missing root", func(t *testing.T) {
		expectViolation(t, func() { m.FindNode("q", "dup") })
	})
	t.Run("duplicate pages resolve to first", func(t *testing.T) {
		m.AddMenu("p", 20, 20)
		if m.Menu("p") != page {
			t.Error("Menu returned a later page")
		}
	})
}

func TestEventHandlersRunInOrder(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("R", 10, 10)
	btn := m.AddNode(page, KindButton, "N")

	var calls []string
	h1 := m.NewHandler(func(n *Node, k EventKind) {
		if n != btn || k != EventClick {
			t.Errorf("handler got (%q, %s)", n.Name, k)
		}
		calls = append(calls, "first")
	})
	h2 := m.NewHandler(func(*Node, EventKind) { calls = append(calls, "second") })
	m.AddEventHandler("R", "N", EventClick, h1)
	m.AddEventHandler("R", "N", EventClick, h2)

	m.TriggerEvent(btn, EventHoverStart)
	if len(calls) != 0 {
		t.Fatal("hover triggered click handlers")
	}

	m.TriggerEvent(btn, EventClick)
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

func TestRemoveEventHandler(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("R", 10, 10)
	btn := m.AddNode(page, KindButton, "N")

	var calls []int
	h1 := m.NewHandler(func(*Node, EventKind) { calls = append(calls, 1) })
	h2 := m.NewHandler(func(*Node, EventKind) { calls = append(calls, 2) })
	h3 := m.NewHandler(func(*Node, EventKind) { calls = append(calls, 3) })
	for _, h := range []Handler{h1, h2, h3} {
		m.AddEventHandler("R", "N", EventClick, h)
	}

	m.RemoveEventHandler("R", "N", EventClick, h2)
	m.TriggerEvent(btn, EventClick)
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 3 {
		t.Errorf("calls = %v, want [1 3]", calls)
	}

	expectViolation(t, func() { m.RemoveEventHandler("R", "N", EventClick, h2) })
	expectViolation(t, func() { m.RemoveEventHandler("R", "N", EventPress, h1) })
}

func TestHandlerSelfRemovalDuringDispatch(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("R", 10, 10)
	btn := m.AddNode(page, KindButton, "N")

	count := 0
	var once Handler
	once = m.NewHandler(func(*Node, EventKind) {
		count++
		m.RemoveEventHandler("R", "N", EventClick, once)
	})
	other := 0
	m.AddEventHandler("R", "N", EventClick, once)
	m.AddEventHandler("R", "N", EventClick, m.NewHandler(func(*Node, EventKind) { other++ }))

	m.TriggerEvent(btn, EventClick)
	m.TriggerEvent(btn, EventClick)
	if count != 1 || other != 2 {
		t.Errorf("count = %d, other = %d; want 1 and 2", count, other)
	}
}

func TestHandlerIDsSurviveReset(t *testing.T) {
	m := newTestManager(t)
	before := m.NewHandler(func(*Node, EventKind) {})
	n := m.CreateNode(KindText)

	m.Reset()

	after := m.NewHandler(func(*Node, EventKind) {})
	if after.ID() <= before.ID() {
		t.Errorf("handler id %d reused after reset (was %d)", after.ID(), before.ID())
	}
	if m2 := m.CreateNode(KindText); m2.ID() <= n.ID() {
		t.Errorf("node id %d reused after reset", m2.ID())
	}
	if _, ok := m.Node(n.ID()); ok {
		t.Error("released node still resolves")
	}
	if m.HasActiveMenu() || m.HasMenu("anything") {
		t.Error("reset left menus behind")
	}
}

func TestHandlerMustComeFromNewHandler(t *testing.T) {
	m := newTestManager(t)
	m.AddMenu("R", 10, 10)
	expectViolation(t, func() { m.AddEventHandler("R", "R", EventClick, Handler{}) })
}

func TestLoadFontMissingPath(t *testing.T) {
	m := newTestManager(t)
	if m.LoadFont("missing/path", "x", 12, false) {
		t.Fatal("LoadFont reported success for a missing file")
	}
	expectViolation(t, func() { m.GetFont("x", 12) })
}

// assetDir is a texture provider with no textures, only an asset directory.
type assetDir string

func (assetDir) Texture(string) *ebiten.Image { return nil }
func (d assetDir) AssetPath() string         { return string(d) }

func TestLoadFontPrefixesProviderAssetPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fonts", "ui.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	m := newTestManager(t)
	if m.LoadFont("fonts/ui.ttf", "ui", 14, true) {
		t.Fatal("loaded without an asset directory")
	}

	m.SetTextureProvider(assetDir(dir))
	if !m.LoadFont("fonts/ui.ttf", "ui", 14, true) {
		t.Fatal("LoadFont did not prefix the provider's asset path")
	}
	if m.GetFont("ui", 14) == nil {
		t.Error("GetFont returned nil")
	}
}

func TestRenderScalesToScreen(t *testing.T) {
	m := newTestManager(t, 20)
	hud := m.AddMenu("hud", 1920, 1080)
	score := m.AddNode(hud, KindText, "score")
	score.SetBounds(960, 540, 200, 40).SetText("0", "default", 20, color.RGBA{A: 255})
	m.ShowMenu("hud")

	s := &recordingSurface{w: 1280, h: 720}
	m.Render(1.0/60, s, nil, nil)

	if len(s.texts) != 1 {
		t.Fatalf("drew %d texts, want 1", len(s.texts))
	}
	got := s.texts[0]
	if math.Abs(got.x-640) > 1e-9 || math.Abs(got.y-360) > 1e-9 {
		t.Errorf("score drawn at (%v, %v), want (640, 360)", got.x, got.y)
	}
}

func TestRenderNestedOffsets(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("p", 200, 100)
	group := m.AddNode(page, KindGroup, "g").SetBounds(50, 20, 100, 50)
	img := m.AddNode(group, KindImage, "img").SetBounds(10, 10, 20, 10)
	img.Tint = color.RGBA{R: 9, A: 255}
	hidden := m.AddNode(group, KindImage, "hidden")
	hidden.Hidden = true
	m.AddNode(hidden, KindImage, "under-hidden")
	m.ShowMenu("p")

	s := &recordingSurface{w: 400, h: 50}
	m.Render(0, s, nil, nil)

	if len(s.quads) != 1 {
		t.Fatalf("drew %d quads, want 1", len(s.quads))
	}
	want := drawCall{x: (50 + 10) * 2, y: (20 + 10) * 0.5, w: 40, h: 5, clr: img.Tint}
	if s.quads[0] != want {
		t.Errorf("quad = %+v, want %+v", s.quads[0], want)
	}
}

func TestRenderWithoutActiveMenu(t *testing.T) {
	m := newTestManager(t)
	m.AddMenu("p", 10, 10)
	s := &recordingSurface{w: 10, h: 10}
	m.Render(0, s, nil, nil)
	if len(s.quads)+len(s.texts) != 0 {
		t.Error("rendered without an active menu")
	}
}

func TestButtonRaisesPointerEvents(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("p", 100, 100)
	btn := m.AddNode(page, KindButton, "b").SetBounds(10, 10, 30, 20)
	m.ShowMenu("p")

	var events []EventKind
	for _, k := range []EventKind{EventClick, EventPress, EventHoverStart, EventHoverEnd} {
		m.AddEventHandler("p", "b", k, m.NewHandler(func(_ *Node, k EventKind) { events = append(events, k) }))
	}

	s := &recordingSurface{w: 100, h: 100}
	in := &input.State{}
	frame := func(x, y int, down bool) {
		in.CursorX, in.CursorY, in.PointerDown = x, y, down
		m.Render(1.0/60, s, nil, in)
		in.PostProcess()
	}

	frame(0, 0, false)
	frame(15, 15, false)
	frame(15, 15, true)
	frame(16, 16, false)
	frame(90, 90, false)

	want := []EventKind{EventHoverStart, EventPress, EventClick, EventHoverEnd}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, events[i], want[i])
		}
	}
	if btn.Hovered() {
		t.Error("button still hovered after pointer left")
	}
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	m := newTestManager(t)
	page := m.AddMenu("p", 100, 100)
	m.AddNode(page, KindButton, "b").SetBounds(0, 0, 50, 50)
	m.ShowMenu("p")

	clicks := 0
	m.AddEventHandler("p", "b", EventClick, m.NewHandler(func(*Node, EventKind) { clicks++ }))

	s := &recordingSurface{w: 100, h: 100}
	in := &input.State{CursorX: 10, CursorY: 10, PointerDown: true}
	m.Render(0, s, nil, in)
	in.PostProcess()
	in.CursorX, in.PointerDown = 80, false
	m.Render(0, s, nil, in)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}
