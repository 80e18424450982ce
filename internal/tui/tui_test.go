package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
)

func newTestApp(t *testing.T, opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)
	if opts.PhysicsRate == 0 {
		opts.PhysicsRate = 600
	}
	return New(screen, opts), screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawBlitsArena(t *testing.T) {
	app, screen := newTestApp(t, Options{})
	app.draw()

	// Left paddle spans columns 3..6 and rows 9..15 at 80x25.
	if r := runeAt(screen, 4, 12); r != draw.BlockFull {
		t.Errorf("paddle cell = %q", r)
	}
	// Right paddle mirrors it.
	if r := runeAt(screen, 75, 12); r != draw.BlockFull {
		t.Errorf("right paddle cell = %q", r)
	}
	// Centre line starts at the top.
	if r := runeAt(screen, 40, 0); r != draw.BlockFull {
		t.Errorf("centre line cell = %q", r)
	}
	// Left score "  0" ends at column 19, row 5.
	if r := runeAt(screen, 19, 5); r != '0' {
		t.Errorf("left score cell = %q", r)
	}
}

func TestMouseSteersLeftPaddle(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	left := app.Game().Paddles[game.Left]

	if !app.handleEvent(tcell.NewEventMouse(10, 0, tcell.ButtonNone, tcell.ModNone)) {
		t.Fatal("mouse event quit the app")
	}
	if left.IsAIControlled() {
		t.Fatal("pointer did not take the paddle")
	}
	if y := left.Center.Y; y < 9.99 || y > 10.01 {
		t.Errorf("paddle y = %v, want 10", y)
	}

	app.handleEvent(tcell.NewEventFocus(false))
	if !left.IsAIControlled() {
		t.Error("focus loss did not return the paddle to the AI")
	}
}

func TestMouseOutsideArenaLeaves(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	left := app.Game().Paddles[game.Left]

	app.handleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	app.handleEvent(tcell.NewEventMouse(10, 40, tcell.ButtonNone, tcell.ModNone))
	if !left.IsAIControlled() {
		t.Error("paddle still external after pointer left the arena")
	}
}

func TestQuitKeys(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if app.handleEvent(ev) {
			t.Errorf("key %v did not quit", ev.Name())
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	now := time.Unix(1000, 0)
	app.frame(now)

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	x := app.Game().Ball.Center.X
	now = now.Add(100 * time.Millisecond)
	app.frame(now)
	if app.Game().Ball.Center.X != x {
		t.Error("ball moved while paused")
	}

	app.handleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	if !app.Game().Paddles[game.Left].IsAIControlled() {
		t.Error("pointer took the paddle while paused")
	}

	// Resuming starts a fresh timeline: the pause is not replayed.
	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	now = now.Add(5 * time.Second)
	app.frame(now)
	if app.Game().Ball.Center.X != x {
		t.Error("first frame after resume advanced the simulation")
	}
	app.frame(now.Add(16 * time.Millisecond))
	if app.Game().Ball.Center.X == x {
		t.Error("ball did not move after resume")
	}
}

func TestEventsReachHandler(t *testing.T) {
	var got []game.Event
	app, _ := newTestApp(t, Options{OnEvent: func(ev game.Event) { got = append(got, ev) }})

	ball := app.Game().Ball
	ball.Center.X = 10
	ball.Velocity.X = -400

	now := time.Unix(1000, 0)
	app.frame(now)
	app.frame(now.Add(16 * time.Millisecond))

	if len(got) == 0 || got[0].Type != game.EventScore || got[0].Paddle != game.Right {
		t.Errorf("events = %+v", got)
	}
}

func TestResizeUpdatesCanvas(t *testing.T) {
	app, screen := newTestApp(t, Options{})
	screen.SetSize(120, 40)
	app.handleEvent(tcell.NewEventResize(120, 40))

	if app.canvas.TerminalWidth() != 120 || app.canvas.TerminalHeight() != 40 {
		t.Errorf("canvas = %dx%d", app.canvas.TerminalWidth(), app.canvas.TerminalHeight())
	}
	if area := app.pointer.Area(); area.Width != 120 || area.Height != 40 {
		t.Errorf("pointer area = %+v", area)
	}
}

func TestRunQuitsOnInjectedKey(t *testing.T) {
	app, screen := newTestApp(t, Options{})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	start := time.Now()
	if err := app.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if time.Since(start) >= 3*time.Second {
		t.Error("Run only returned on context timeout")
	}
}
