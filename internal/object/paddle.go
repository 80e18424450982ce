package object

import (
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Control says who owns a paddle's position.
type Control int

const (
	ControlAI       Control = iota // Positioned by the AI controller
	ControlExternal                // Positioned by pointer input
)

func (c Control) String() string {
	switch c {
	case ControlAI:
		return "ai"
	case ControlExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Paddle is a vertical bat that deflects the ball.
type Paddle struct {
	physics.Rect
	MaxDeflection float64 // Vertical velocity given to the ball at a full off-center hit
	Score         int

	control Control
	aiOnly  bool
}

// NewPaddle creates an AI-controlled paddle. An aiOnly paddle can never be handed to
// external control.
func NewPaddle(aiOnly bool) *Paddle {
	return &Paddle{
		Rect:          physics.NewRect(config.PaddleWidth, config.PaddleHeight),
		MaxDeflection: config.PaddleMaxDeflection,
		control:       ControlAI,
		aiOnly:        aiOnly,
	}
}

// Control returns the current control mode.
func (p *Paddle) Control() Control {
	return p.control
}

// IsAIControlled reports whether the AI controller may move this paddle.
func (p *Paddle) IsAIControlled() bool {
	return p.control == ControlAI
}

// SetControl switches the control mode.
func (p *Paddle) SetControl(c Control) error {
	if c == ControlExternal && p.aiOnly {
		return ErrAIOnly
	}
	p.control = c
	return nil
}

// Steer sets the paddle's vertical center. Only valid under external control.
func (p *Paddle) Steer(y float64) error {
	if p.control != ControlExternal {
		return ErrAIControlled
	}
	p.Center.Y = y
	return nil
}
