package game

import "github.com/tomz197/pong/internal/physics"

// Renderer is the drawing sink a frontend provides.
type Renderer interface {
	Clear()
	DrawRectangle(r physics.Rect)
	DrawScore(left, right int)
}

// Draw paints the current state: background, score, ball, then paddles.
func (g *Game) Draw(r Renderer) {
	r.Clear()
	r.DrawScore(g.Scores())
	r.DrawRectangle(g.Ball.Bounds())
	for _, p := range g.Paddles {
		r.DrawRectangle(p.Bounds())
	}
}
