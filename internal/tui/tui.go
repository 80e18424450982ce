// Package tui plays pong locally through tcell, with mouse motion and focus
// events steering the left paddle.
package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/config"
)

var errQuit = errors.New("quit")

var (
	styleArena = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleScore = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHint  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Options configures an App.
type Options struct {
	Logger      *log.Logger
	PhysicsRate float64          // Steps per second; config.PhysicsRate when zero
	FPS         int              // Frames per second; config.ClientTargetFPS when zero
	OnEvent     func(game.Event) // Optional sink for simulation events, e.g. sound
}

// App owns one game and renders it on a tcell screen.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	loop     *loop.Loop
	canvas   *draw.Canvas
	renderer *draw.ArenaRenderer
	pointer  *input.PointerTracker
	events   chan tcell.Event
	logger   *log.Logger
	fps      int
	paused   bool
}

// New prepares an App on an initialised screen and turns on mouse motion and
// focus reporting.
func New(screen tcell.Screen, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := opts.PhysicsRate
	if rate <= 0 {
		rate = config.PhysicsRate
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.ClientTargetFPS
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	w, h := screen.Size()
	canvas := draw.NewScaledCanvas(w, h, config.ArenaWidth, config.ArenaHeight)

	var gameOpts []game.Option
	if opts.OnEvent != nil {
		gameOpts = append(gameOpts, game.WithEventHandler(opts.OnEvent))
	}

	return &App{
		screen:   screen,
		game:     game.New(gameOpts...),
		loop:     loop.New(rate, config.MaxFrameDelta),
		canvas:   canvas,
		renderer: draw.NewArenaRenderer(canvas),
		pointer:  input.NewPointerTracker(input.Area{Width: w, Height: h}),
		events:   make(chan tcell.Event, 100),
		logger:   logger,
		fps:      fps,
	}
}

// Game returns the simulated game.
func (a *App) Game() *game.Game {
	return a.game
}

// Run polls screen events and drives frames until the user quits or ctx is done.
// The caller still owns the screen and must Fini it.
func (a *App) Run(ctx context.Context) error {
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case a.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	err := loop.Run(ctx, a.fps, a.frame)
	if errors.Is(err, errQuit) || ctx.Err() != nil {
		return nil
	}
	return err
}

// frame drains pending events, advances the simulation and redraws.
func (a *App) frame(now time.Time) error {
drain:
	for {
		select {
		case ev := <-a.events:
			if !a.handleEvent(ev) {
				return errQuit
			}
		default:
			break drain
		}
	}

	if !a.paused {
		a.loop.Advance(now, a.game.Update)
	}
	a.draw()
	return nil
}

// handleEvent applies one tcell event. It returns false when the user quits.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.togglePause()
		}

	case *tcell.EventMouse:
		if a.paused {
			return true
		}
		x, y := ev.Position()
		if err := a.pointer.Handle(input.Pointer{Kind: input.PointerMotion, Col: x, Row: y}, a.game); err != nil {
			a.logger.Debug("pointer input rejected", "err", err)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			a.pointer.Leave(a.game)
		}

	case *tcell.EventResize:
		a.resize()
	}
	return true
}

func (a *App) togglePause() {
	a.paused = !a.paused
	if a.paused {
		a.pointer.Leave(a.game)
		return
	}
	a.loop.Restart()
}

func (a *App) resize() {
	a.screen.Sync()
	w, h := a.screen.Size()
	a.canvas.Resize(w, h)
	a.pointer.SetArea(input.Area{Width: w, Height: h}, a.game)
}

// draw blits the canvas and overlays onto the screen.
func (a *App) draw() {
	a.screen.Clear()
	a.game.Draw(a.renderer)

	a.canvas.EachCell(func(col, row int, ch rune) {
		a.screen.SetContent(col, row, ch, nil, styleArena)
	})
	for _, l := range a.renderer.ScoreLabels() {
		a.putString(l.Col-1, l.Row-1, l.Value, styleScore)
	}

	_, h := a.screen.Size()
	hint := "SPACE pause  Q quit"
	switch {
	case a.paused:
		hint = "Paused - SPACE to resume"
	case a.game.Paddles[game.Left].IsAIControlled():
		hint = "Move the mouse over the arena to take the left paddle"
	}
	a.putString(1, h-1, hint, styleHint)

	a.screen.Show()
}

func (a *App) putString(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(col+i, row, r, nil, style)
	}
}
