package draw

import (
	"fmt"

	"github.com/tomz197/pong/internal/physics"
)

// Centre line dash pattern in logical units.
const (
	centerDash = 20
	centerGap  = 15
)

// ScoreLabel is a score placed at a 1-based canvas cell.
type ScoreLabel struct {
	Col   int
	Row   int
	Value string
}

// ArenaRenderer draws the pong arena onto a Canvas. It satisfies game.Renderer.
// Scores are only recorded; frontends print them as text after the canvas.
type ArenaRenderer struct {
	canvas *Canvas
	left   int
	right  int
}

// NewArenaRenderer creates a renderer drawing onto c.
func NewArenaRenderer(c *Canvas) *ArenaRenderer {
	return &ArenaRenderer{canvas: c}
}

// Clear wipes the canvas and draws the dashed centre line.
func (r *ArenaRenderer) Clear() {
	r.canvas.Clear()
	r.canvas.DashedVLine(r.canvas.LogicalWidth()/2, centerDash, centerGap)
}

// DrawRectangle fills rect.
func (r *ArenaRenderer) DrawRectangle(rect physics.Rect) {
	r.canvas.FillRect(rect.Left(), rect.Top(), rect.Width, rect.Height)
}

// DrawScore records the scores for ScoreLabels.
func (r *ArenaRenderer) DrawScore(left, right int) {
	r.left, r.right = left, right
}

// ScoreLabels places the two scores a quarter of the arena either side of the
// centre line, a fifth of the way down. The left score is right-aligned.
func (r *ArenaRenderer) ScoreLabels() [2]ScoreLabel {
	w := r.canvas.LogicalWidth()
	y := r.canvas.LogicalHeight() / 5
	lc, row := r.canvas.LogicalToTerminal(w/2-w/4, y)
	rc, _ := r.canvas.LogicalToTerminal(w/2+w/4, y)
	left := fmt.Sprintf("%3d", r.left)
	return [2]ScoreLabel{
		{Col: lc - len(left), Row: row, Value: left},
		{Col: rc, Row: row, Value: fmt.Sprintf("%-3d", r.right)},
	}
}
