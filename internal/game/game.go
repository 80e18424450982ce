// Package game holds the pong simulation: ball and paddle physics, scoring,
// the AI controller and the pointer-input boundary.
//
// A Game is not safe for concurrent use. Frontends mutate it only from the
// goroutine that runs its loop.
package game

import (
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// Paddle indices.
const (
	Left  = 0 // Human or AI
	Right = 1 // AI only
)

// Game is the complete simulation state of one match.
type Game struct {
	Ball    *object.Ball
	Paddles [2]*object.Paddle

	Width  float64
	Height float64

	difficulty float64 // AI paddle speed, units per second
	onEvent    func(Event)
}

// Option configures a Game.
type Option func(*Game)

// WithEventHandler registers fn to receive simulation events synchronously.
func WithEventHandler(fn func(Event)) Option {
	return func(g *Game) {
		g.onEvent = fn
	}
}

// New creates a game with both paddles AI-controlled and the ball served.
func New(opts ...Option) *Game {
	g := &Game{
		Ball:       object.NewBall(),
		Paddles:    [2]*object.Paddle{object.NewPaddle(false), object.NewPaddle(true)},
		Width:      config.ArenaWidth,
		Height:     config.ArenaHeight,
		difficulty: config.AIDifficulty,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset serves the ball from the center and puts both paddles back on their lines.
// Scores and control modes are left alone.
func (g *Game) Reset() {
	g.Ball.Center = physics.Vector{X: g.Width / 2, Y: g.Height / 2}
	g.Ball.Velocity = physics.Vector{X: config.ServeSpeed, Y: 0}

	g.Paddles[Left].Center = physics.Vector{X: config.PaddleInset, Y: g.Height / 2}
	g.Paddles[Right].Center = physics.Vector{X: g.Width - config.PaddleInset, Y: g.Height / 2}
}

// Scores returns the left and right scores.
func (g *Game) Scores() (left, right int) {
	return g.Paddles[Left].Score, g.Paddles[Right].Score
}

func (g *Game) emit(ev Event) {
	if g.onEvent != nil {
		g.onEvent(ev)
	}
}
