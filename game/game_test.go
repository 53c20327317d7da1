package game

import (
	"errors"
	"math"
	"testing"

	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/input"
	"github.com/automoto/starlancer/menu"
	"github.com/automoto/starlancer/scenes"
	"github.com/automoto/starlancer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

// scriptedInput is an input provider that samples the held actions on every
// poll, the way the device poller does.
type scriptedInput struct {
	state input.State
	held  [cfg.ActionCount]bool
	polls int
}

func (s *scriptedInput) State() *input.State { return &s.state }
func (s *scriptedInput) PostProcess()        { s.state.PostProcess() }

func (s *scriptedInput) Poll() {
	s.polls++
	s.state.RollActions()
	s.state.Current = s.held
}

func newTestGame(t *testing.T) (*Game, *scriptedInput) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	// No font files on disk in tests; the embedded face covers every page.
	cfg.Fonts = nil

	in := &scriptedInput{}
	return New(Options{Input: in}), in
}

func update(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

// press holds an action for one update and releases it.
func press(t *testing.T, g *Game, in *scriptedInput, id cfg.ActionID) {
	t.Helper()
	in.held[id] = true
	update(t, g)
	in.held[id] = false
}

func TestInitialModeEntersOnFirstUpdate(t *testing.T) {
	g, in := newTestGame(t)
	if g.Modes().Current() != "" {
		t.Fatal("mode became current before the first Update")
	}

	update(t, g)
	if g.Modes().Current() != cfg.ModeTitle {
		t.Fatalf("current = %q, want %q", g.Modes().Current(), cfg.ModeTitle)
	}
	if in.polls != 1 {
		t.Errorf("polls = %d, want 1", in.polls)
	}
	if g.Menus().ActiveMenu().Name != scenes.TitleMenu {
		t.Errorf("active menu = %q", g.Menus().ActiveMenu().Name)
	}
}

func TestTitleToPlayAndBack(t *testing.T) {
	g, in := newTestGame(t)
	update(t, g)

	play := g.Menus().FindNode(scenes.TitleMenu, "play")
	g.Menus().TriggerEvent(play, menu.EventClick)
	if g.Modes().Current() != cfg.ModeTitle || !g.Modes().Pending() {
		t.Fatal("click switched modes before Update")
	}

	update(t, g)
	if g.Modes().Current() != cfg.ModePlay {
		t.Fatalf("current = %q, want Play", g.Modes().Current())
	}
	if g.Menus().ActiveMenu().Name != factory.HUDMenu {
		t.Errorf("active menu = %q, want hud", g.Menus().ActiveMenu().Name)
	}

	// Pause, then leave through the pause page.
	press(t, g, in, cfg.ActionPause)
	if g.Menus().ActiveMenu().Name != scenes.PauseMenu {
		t.Fatalf("active menu = %q, want pause", g.Menus().ActiveMenu().Name)
	}
	leave := g.Menus().FindNode(scenes.PauseMenu, "leave")
	g.Menus().TriggerEvent(leave, menu.EventClick)

	// Play fades out over ExitFadeDuration before Title takes over.
	stallTicks := int(math.Floor(float64(cfg.HUD.ExitFadeDuration)*float64(cfg.C.TPS))) - 1
	for i := 0; i < stallTicks; i++ {
		update(t, g)
		if g.Modes().Current() != cfg.ModePlay {
			t.Fatalf("tick %d: left Play before the fade finished", i)
		}
	}
	for i := 0; i < 5 && g.Modes().Current() != cfg.ModeTitle; i++ {
		update(t, g)
	}
	if g.Modes().Current() != cfg.ModeTitle {
		t.Fatalf("current = %q, want Title after fade", g.Modes().Current())
	}

	// Handlers from the first visit were removed on exit, so entering again
	// registers exactly one click handler per button.
	if n := g.Menus().HandlerCount(play, menu.EventClick); n != 1 {
		t.Errorf("play has %d click handlers, want 1", n)
	}
}

func TestKeyboardNavigationSelectsQuit(t *testing.T) {
	g, in := newTestGame(t)
	update(t, g)

	press(t, g, in, cfg.ActionMenuUp)
	if !g.Menus().FindNode(scenes.TitleMenu, "quit").Focused {
		t.Fatal("MenuUp from the first button should wrap to quit")
	}

	in.held[cfg.ActionMenuSelect] = true
	err := g.Update()
	if err == nil {
		t.Fatal("selecting quit did not terminate on the same update")
	}
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("err = %v, want ebiten.Termination", err)
	}
}

func TestHeldPauseAcrossUpdatesBeforeDraw(t *testing.T) {
	g, in := newTestGame(t)
	update(t, g)
	g.Menus().TriggerEvent(g.Menus().FindNode(scenes.TitleMenu, "play"), menu.EventClick)
	update(t, g)

	// A late frame: ebiten runs two updates before the next draw.
	in.held[cfg.ActionPause] = true
	update(t, g)
	update(t, g)
	// End of the draw step.
	in.PostProcess()
	update(t, g)

	if !g.play.Paused() {
		t.Fatal("one Esc press held over two updates toggled pause twice")
	}
	if g.Menus().ActiveMenu().Name != scenes.PauseMenu {
		t.Errorf("active menu = %q, want pause", g.Menus().ActiveMenu().Name)
	}
}

func TestCancelledLeaveRestoresPlay(t *testing.T) {
	g, in := newTestGame(t)
	update(t, g)
	g.Menus().TriggerEvent(g.Menus().FindNode(scenes.TitleMenu, "play"), menu.EventClick)
	update(t, g)

	g.Modes().ChangeMode(cfg.ModeTitle)
	update(t, g)
	if g.Menus().HasActiveMenu() {
		t.Fatal("fade-out did not hide the hud")
	}

	g.Modes().ChangeMode(cfg.ModePlay)
	update(t, g)
	if !g.Menus().HasActiveMenu() || g.Menus().ActiveMenu().Name != factory.HUDMenu {
		t.Fatal("hud not restored after the change was withdrawn")
	}

	press(t, g, in, cfg.ActionPause)
	if !g.play.Paused() {
		t.Error("play stopped handling input after the cancelled fade")
	}
	if g.Modes().Current() != cfg.ModePlay {
		t.Errorf("current = %q, want Play", g.Modes().Current())
	}
}

func TestLayoutUsesOutsideSize(t *testing.T) {
	g, _ := newTestGame(t)
	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if w, h := g.Layout(0, 0); w != cfg.C.Width || h != cfg.C.Height {
		t.Errorf("Layout(0,0) = %dx%d", w, h)
	}
}
