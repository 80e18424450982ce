package object

import (
	"fmt"
	"io"
)

// Text is a string pinned to a 1-based terminal cell.
type Text struct {
	Col   int
	Row   int
	Value string
}

// Draw writes the text at its position using ANSI cursor movement.
// Positions left of or above the screen are clamped to the first cell.
func (t Text) Draw(w io.Writer) error {
	if t.Value == "" {
		return nil
	}
	col := max(t.Col, 1)
	row := max(t.Row, 1)
	if _, err := fmt.Fprintf(w, "\033[%d;%dH%s", row, col, t.Value); err != nil {
		return fmt.Errorf("draw text: %w", err)
	}
	return nil
}
