package game

import (
	"math"

	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Update advances the simulation by dt seconds. Non-positive steps are ignored.
//
// The order is fixed: move, paddle collisions, scoring, wall bounce, AI.
func (g *Game) Update(dt float64) {
	if dt <= 0 {
		return
	}

	g.Ball.Move(dt)
	g.collidePaddles()
	g.checkScore()
	g.bounceWalls()
	g.steerAI(dt)
}

// collidePaddles deflects the ball off the paddle it is travelling toward.
// Paddles are visited right to left, so a left-paddle hit overwrites a right one.
func (g *Game) collidePaddles() {
	ball := g.Ball
	for i := len(g.Paddles) - 1; i >= 0; i-- {
		towards := (ball.Velocity.X < 0 && i == Left) || (ball.Velocity.X > 0 && i == Right)
		if !towards {
			continue
		}

		p := g.Paddles[i]
		if !ball.Overlaps(p.Rect) {
			continue
		}

		// Distance to the paddle's right edge midpoint, for either paddle. This mixes
		// horizontal and vertical offset; kept as-is because it defines the feel.
		edge := physics.Vector{X: p.Right(), Y: p.Center.Y}
		relY := math.Abs(ball.Center.DistanceTo(edge) / (p.Height / 2))

		ball.Velocity.X = -ball.Velocity.X * config.BounceGain
		if ball.Center.Y < p.Center.Y {
			ball.Velocity.Y = -relY * p.MaxDeflection
		} else {
			ball.Velocity.Y = relY * p.MaxDeflection
		}

		g.emit(Event{Type: EventPaddleHit, Paddle: i})
	}
}

// checkScore awards a point when the ball reaches a side wall and serves again.
func (g *Game) checkScore() {
	if g.Ball.Left() > 0 && g.Ball.Right() < g.Width {
		return
	}

	scorer := Left
	if g.Ball.Velocity.X < 0 {
		scorer = Right
	}
	g.Paddles[scorer].Score++
	g.emit(Event{Type: EventScore, Paddle: scorer, Score: g.Paddles[scorer].Score})

	g.Reset()
}

// bounceWalls reflects the vertical velocity off the top and bottom walls.
// There is no position correction, so a fast ball may tunnel for a step.
func (g *Game) bounceWalls() {
	if g.Ball.Top() <= 0 || g.Ball.Bottom() >= g.Height {
		g.Ball.Velocity.Y = -g.Ball.Velocity.Y
		g.emit(Event{Type: EventWallBounce})
	}
}
