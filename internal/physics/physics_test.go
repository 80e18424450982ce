package physics

import (
	"math"
	"testing"
)

func TestVectorDistanceTo(t *testing.T) {
	a := Vector{X: 0, Y: 0}
	b := Vector{X: 3, Y: 4}

	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
	if got := b.DistanceTo(a); got != 5 {
		t.Errorf("DistanceTo is not symmetric: %v", got)
	}
	if got := DistanceSquared(0, 0, 3, 4); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(30, 30)
	r.Center = Vector{X: 100, Y: 50}

	if r.Left() != 85 || r.Right() != 115 {
		t.Errorf("horizontal edges = (%v, %v), want (85, 115)", r.Left(), r.Right())
	}
	if r.Top() != 35 || r.Bottom() != 65 {
		t.Errorf("vertical edges = (%v, %v), want (35, 65)", r.Top(), r.Bottom())
	}
}

func TestNewRectClampsNegativeExtents(t *testing.T) {
	r := NewRect(-5, 10)
	if r.Width != 0 || r.Height != 10 {
		t.Errorf("NewRect(-5, 10) = %vx%v, want 0x10", r.Width, r.Height)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{Center: Vector{X: 0, Y: 0}, Width: 10, Height: 10}

	tests := []struct {
		name   string
		center Vector
		want   bool
	}{
		{"same position", Vector{X: 0, Y: 0}, true},
		{"partial overlap", Vector{X: 9, Y: 9}, true},
		{"touching edges", Vector{X: 10, Y: 0}, false},
		{"disjoint", Vector{X: 0, Y: 25}, false},
	}
	for _, tt := range tests {
		b := Rect{Center: tt.center, Width: 10, Height: 10}
		if got := a.Overlaps(b); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
		if got := b.Overlaps(a); got != tt.want {
			t.Errorf("%s: Overlaps is not symmetric", tt.name)
		}
	}
}

func TestVectorScaleAdd(t *testing.T) {
	v := Vector{X: 1, Y: -2}.Scale(0.5).Add(Vector{X: 1, Y: 1})
	if math.Abs(v.X-1.5) > 1e-12 || math.Abs(v.Y) > 1e-12 {
		t.Errorf("got %+v, want {1.5 0}", v)
	}
}
