package input

// Area is the on-screen rectangle the arena occupies, in 0-based cells.
type Area struct {
	Col    int
	Row    int
	Width  int
	Height int
}

// Contains reports whether the cell lies inside the area.
func (a Area) Contains(col, row int) bool {
	return col >= a.Col && col < a.Col+a.Width && row >= a.Row && row < a.Row+a.Height
}

// Fraction maps a row to its vertical position in the area, measured at the
// cell centre and clamped to [0, 1].
func (a Area) Fraction(row int) float64 {
	if a.Height <= 0 {
		return 0
	}
	f := (float64(row-a.Row) + 0.5) / float64(a.Height)
	return min(max(f, 0), 1)
}

// PointerTarget receives pointer transitions. *game.Game satisfies it.
type PointerTarget interface {
	PointerEnter()
	PointerLeave()
	PointerMove(fraction float64) error
}

// PointerTracker turns raw mouse and focus reports into enter, move and leave
// transitions relative to an Area.
type PointerTracker struct {
	area   Area
	inside bool
}

// NewPointerTracker creates a tracker for the given area.
func NewPointerTracker(area Area) *PointerTracker {
	return &PointerTracker{area: area}
}

// Area returns the tracked area.
func (t *PointerTracker) Area() Area {
	return t.area
}

// Inside reports whether the pointer is currently over the area.
func (t *PointerTracker) Inside() bool {
	return t.inside
}

// SetArea replaces the tracked area, e.g. after a resize. A pointer that was
// inside leaves; the next motion report re-enters.
func (t *PointerTracker) SetArea(area Area, target PointerTarget) {
	if area == t.area {
		return
	}
	t.area = area
	t.Leave(target)
}

// Leave forces a leave transition if the pointer is inside.
func (t *PointerTracker) Leave(target PointerTarget) {
	if t.inside {
		t.inside = false
		target.PointerLeave()
	}
}

// Handle applies one report to target.
func (t *PointerTracker) Handle(p Pointer, target PointerTarget) error {
	switch p.Kind {
	case PointerFocusOut:
		t.Leave(target)
	case PointerMotion:
		if !t.area.Contains(p.Col, p.Row) {
			t.Leave(target)
			return nil
		}
		if !t.inside {
			t.inside = true
			target.PointerEnter()
		}
		return target.PointerMove(t.area.Fraction(p.Row))
	}
	return nil
}

// HandleAll applies reports in order and returns the first error.
func (t *PointerTracker) HandleAll(ps []Pointer, target PointerTarget) error {
	var firstErr error
	for _, p := range ps {
		if err := t.Handle(p, target); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
