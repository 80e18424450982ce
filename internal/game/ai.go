package game

import (
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// steerAI moves every AI-controlled paddle by at most difficulty*dt.
func (g *Game) steerAI(dt float64) {
	for _, p := range g.Paddles {
		if !p.IsAIControlled() {
			continue
		}
		g.steerPaddle(p, dt)
	}
}

func (g *Game) steerPaddle(p *object.Paddle, dt float64) {
	ball := g.Ball
	step := g.difficulty * dt

	receding := (ball.Velocity.X < 0 && p.Center.X > ball.Center.X) ||
		(ball.Velocity.X > 0 && p.Center.X < ball.Center.X)
	if receding {
		// Return to the middle, stopping once within one step so it does not jitter.
		mid := g.Height / 2
		if physics.DistanceSquared(p.Center.X, p.Center.Y, p.Center.X, mid) > step*step {
			if p.Center.Y < mid {
				p.Center.Y += step
			} else {
				p.Center.Y -= step
			}
		}
		return
	}

	switch {
	case ball.Center.Y < p.Top():
		p.Center.Y -= step
	case ball.Center.Y > p.Bottom():
		p.Center.Y += step
	}
}
