package object

import (
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Ball is the square puck bouncing between the paddles.
type Ball struct {
	physics.Rect
	Velocity physics.Vector // Units per second
}

// NewBall creates a stationary ball at the origin.
func NewBall() *Ball {
	return &Ball{Rect: physics.NewRect(config.BallSize, config.BallSize)}
}

// Move advances the ball by its velocity over dt seconds.
// Bounds are the caller's concern.
func (b *Ball) Move(dt float64) {
	b.Center = b.Center.Add(b.Velocity.Scale(dt))
}
