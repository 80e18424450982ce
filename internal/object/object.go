// Package object defines the ball and paddles that live in the arena.
package object

import (
	"errors"

	"github.com/tomz197/pong/internal/physics"
)

// Body is anything with an axis-aligned footprint that can be drawn.
type Body interface {
	Bounds() physics.Rect
}

var (
	// ErrAIControlled is returned when an external position write targets a paddle the AI owns.
	ErrAIControlled = errors.New("paddle is AI-controlled")
	// ErrAIOnly is returned when handing an AI-only paddle to external control.
	ErrAIOnly = errors.New("paddle cannot leave AI control")
)

// Compile-time checks that game objects are drawable bodies.
var (
	_ Body = (*Ball)(nil)
	_ Body = (*Paddle)(nil)
)
