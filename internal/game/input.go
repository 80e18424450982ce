package game

import (
	"fmt"

	"github.com/tomz197/pong/internal/object"
)

// PointerEnter hands the left paddle to the pointer.
func (g *Game) PointerEnter() {
	// The left paddle is never AI-only, so this cannot fail.
	_ = g.Paddles[Left].SetControl(object.ControlExternal)
}

// PointerLeave returns the left paddle to the AI.
func (g *Game) PointerLeave() {
	_ = g.Paddles[Left].SetControl(object.ControlAI)
}

// PointerMove places the left paddle at fraction (0 = top, 1 = bottom) of the arena height.
// It fails with object.ErrAIControlled unless the pointer has entered first.
func (g *Game) PointerMove(fraction float64) error {
	fraction = min(max(fraction, 0), 1)
	if err := g.Paddles[Left].Steer(fraction * g.Height); err != nil {
		return fmt.Errorf("pointer move: %w", err)
	}
	return nil
}
