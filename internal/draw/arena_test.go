package draw

import (
	"testing"

	"github.com/tomz197/pong/internal/physics"
)

func TestArenaRendererScoreLabels(t *testing.T) {
	r := NewArenaRenderer(NewScaledCanvas(80, 25, 800, 500))
	r.DrawScore(4, 12)
	labels := r.ScoreLabels()

	if want := (ScoreLabel{Col: 18, Row: 6, Value: "  4"}); labels[0] != want {
		t.Errorf("left = %+v, want %+v", labels[0], want)
	}
	if want := (ScoreLabel{Col: 61, Row: 6, Value: "12 "}); labels[1] != want {
		t.Errorf("right = %+v, want %+v", labels[1], want)
	}
}

func TestArenaRendererDrawsRectAndCentreLine(t *testing.T) {
	c := NewScaledCanvas(80, 25, 800, 500)
	r := NewArenaRenderer(c)
	r.Clear()

	centre := 0
	c.EachCell(func(col, row int, ch rune) {
		if col != 40 {
			t.Errorf("stray cell at %d,%d", col, row)
		}
		centre++
	})
	if centre == 0 {
		t.Fatal("no centre line")
	}

	rect := physics.NewRect(30, 30)
	rect.Center = physics.Vector{X: 100, Y: 100}
	r.DrawRectangle(rect)

	found := false
	c.EachCell(func(col, row int, ch rune) {
		if col >= 8 && col <= 11 && row >= 4 && row <= 5 {
			found = true
		}
	})
	if !found {
		t.Error("rectangle not drawn")
	}

	r.Clear()
	c.EachCell(func(col, row int, ch rune) {
		if col != 40 {
			t.Errorf("Clear left cell at %d,%d", col, row)
		}
	})
}
