// Package client runs one pong session on an ANSI terminal, local or over SSH.
package client

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
)

// errSessionOver stops the frame loop once the client is no longer running.
var errSessionOver = errors.New("session over")

// Client handles simulation, rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	game         *game.Game
	loop         *loop.Loop
	canvas       *draw.Canvas
	renderer     *draw.ArenaRenderer
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	pointer      *input.PointerTracker
	lastInput    time.Time
	lastFrame    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	fps          int
	onEvent      func(game.Event)
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Logger       *log.Logger
	PhysicsRate  float64          // Steps per second; config.PhysicsRate when zero
	FPS          int              // Frames per second; config.ClientTargetFPS when zero
	OnEvent      func(game.Event) // Optional extra sink for simulation events
}

// NewClient creates a new client registered with the given hub.
func NewClient(gs server.GameServer, r io.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
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

	handle := gs.RegisterClient(opts.Username)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ArenaWidth, config.ArenaHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		server:       gs,
		handle:       handle,
		state:        NewClientState(),
		loop:         loop.New(rate, config.MaxFrameDelta),
		canvas:       canvas,
		renderer:     draw.NewArenaRenderer(canvas),
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		pointer:      input.NewPointerTracker(canvasArea(canvas)),
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("client", handle.ID),
		fps:          fps,
		onEvent:      opts.OnEvent,
	}
	c.game = c.newGame()
	return c
}

func (c *Client) newGame() *game.Game {
	return game.New(game.WithEventHandler(c.handleGameEvent))
}

// Run starts the client loop. Blocks until the client disconnects, the server
// stops or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	draw.EnablePointer(c.writer)
	draw.ClearScreen(c.writer)
	defer func() {
		draw.DisablePointer(c.writer)
		draw.ClearScreen(c.writer)
		draw.ShowCursor(c.writer)
	}()
	defer c.server.UnregisterClient(c.handle.ID)

	c.logger.Debug("session started", "user", c.username)
	err := loop.Run(ctx, c.fps, c.frame)
	if errors.Is(err, errSessionOver) || ctx.Err() != nil {
		return nil
	}
	return err
}

// frame runs one tick of the session: input, hub events, simulation, drawing.
func (c *Client) frame(now time.Time) error {
	if !c.lastFrame.IsZero() {
		c.state.delta = now.Sub(c.lastFrame)
	}
	c.lastFrame = now

	c.processInput(now)
	c.processServerEvents()
	c.updateScreen()

	switch c.state.GameState {
	case GameStateStart:
		c.updateStartState(now)
	case GameStatePlaying:
		c.updatePlayingState(now)
	case GameStateShutdown:
		c.updateShutdownState()
	}

	if err := c.drawFrame(now); err != nil {
		return err
	}
	if !c.state.Running {
		return errSessionOver
	}
	return nil
}

// processInput drains the terminal and tracks inactivity.
func (c *Client) processInput(now time.Time) {
	c.state.Input = input.ReadInput(c.inputStream)
	idle := now.Sub(c.lastInput).Seconds()

	if c.state.Input.Any() {
		c.lastInput = now
		c.state.isInactive = false
	} else if idle > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive session", "idle", idle)
		c.state.Running = false
	} else if idle > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit || c.state.Input.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.leavePlaying()
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
	c.pointer.SetArea(canvasArea(c.canvas), c.game)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// canvasArea returns the 0-based terminal cells covered by the canvas.
func canvasArea(c *draw.Canvas) input.Area {
	return input.Area{
		Col:    c.OffsetCol(),
		Row:    c.OffsetRow(),
		Width:  c.TerminalWidth(),
		Height: c.TerminalHeight(),
	}
}

// updateStartState runs the attract-mode rally behind the title screen.
// A paused match stays frozen instead.
func (c *Client) updateStartState(now time.Time) {
	if c.state.Input.Space || c.state.Input.Enter {
		c.startGame()
		return
	}
	if !c.state.Paused {
		c.loop.Advance(now, c.game.Update)
	}
}

// updatePlayingState applies pointer input and advances the simulation.
func (c *Client) updatePlayingState(now time.Time) {
	if c.state.Input.Escape {
		c.leavePlaying()
		c.state.Paused = true
		c.state.GameState = GameStateStart
		return
	}

	if err := c.pointer.HandleAll(c.state.Input.Pointer, c.game); err != nil {
		c.logger.Debug("pointer input rejected", "err", err)
	}
	c.loop.Advance(now, c.game.Update)
	c.reportScore()
}

// startGame starts a new match, or resumes a paused one.
func (c *Client) startGame() {
	if !c.state.Paused {
		c.game = c.newGame()
		c.reportScore()
	}
	c.state.Paused = false
	c.loop.Restart()
	c.state.GameState = GameStatePlaying
	c.logger.Debug("match started")
}

// leavePlaying hands the left paddle back to the AI.
func (c *Client) leavePlaying() {
	c.pointer.Leave(c.game)
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// handleGameEvent is called synchronously from Game.Update.
func (c *Client) handleGameEvent(ev game.Event) {
	if ev.Type == game.EventScore {
		c.logger.Debug("point", "paddle", ev.Paddle, "score", ev.Score)
		if c.state.GameState == GameStatePlaying {
			c.reportScore()
		}
	}
	if c.onEvent != nil {
		c.onEvent(ev)
	}
}

// reportScore sends the current match score to the hub when it changed. A
// report the hub dropped is retried on the next frame.
func (c *Client) reportScore() {
	left, right := c.game.Scores()
	if c.state.reportedScore == [2]int{left, right} {
		return
	}
	if c.server.ReportScore(c.handle.ID, left, right) {
		c.state.reportedScore = [2]int{left, right}
	}
}
