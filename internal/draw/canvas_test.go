package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFillRectScalesLogicalToPixels(t *testing.T) {
	// 80x25 terminal over an 800x500 arena: 10 logical units per column, 10 per sub-pixel row.
	c := NewScaledCanvas(80, 25, 800, 500)
	c.FillRect(0, 0, 10, 10)

	var cells []rune
	c.EachCell(func(col, row int, ch rune) {
		if col != 0 || row != 0 {
			t.Errorf("unexpected cell at %d,%d", col, row)
		}
		cells = append(cells, ch)
	})
	if len(cells) != 1 || cells[0] != BlockUpperHalf {
		t.Fatalf("cells = %q, want one upper half block", string(cells))
	}
}

func TestFillRectCoversFullCell(t *testing.T) {
	c := NewScaledCanvas(80, 25, 800, 500)
	c.FillRect(0, 0, 10, 20)

	count := 0
	c.EachCell(func(col, row int, ch rune) {
		count++
		if ch != BlockFull {
			t.Errorf("glyph = %q, want full block", ch)
		}
	})
	if count != 1 {
		t.Errorf("cells = %d, want 1", count)
	}
}

func TestFillRectTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 800, 500)
	c.FillRect(400, 250, 1, 1)

	count := 0
	c.EachCell(func(int, int, rune) { count++ })
	if count != 1 {
		t.Errorf("cells = %d, want 1", count)
	}
}

func TestFillRectClipsOutsideCanvas(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(-50, -50, 500, 500)

	count := 0
	c.EachCell(func(int, int, rune) { count++ })
	if count != 50 {
		t.Errorf("cells = %d, want every cell", count)
	}

	c.Clear()
	c.FillRect(0, 0, 0, 10)
	c.EachCell(func(int, int, rune) { t.Error("zero-width rect drew a cell") })
}

func TestRenderOnlyWritesChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(0, 0, 10, 20)

	var buf bytes.Buffer
	c.Render(&buf)
	first := buf.String()
	if !strings.Contains(first, string(BlockFull)) {
		t.Fatalf("first render missing block: %q", first)
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("unchanged frame wrote %q", buf.String())
	}

	// Moving the rect must erase the old cell.
	c.Clear()
	c.FillRect(50, 0, 10, 20)
	buf.Reset()
	c.Render(&buf)
	out := buf.String()
	if !strings.Contains(out, "\033[1;1H ") {
		t.Errorf("old cell not erased: %q", out)
	}
	if !strings.Contains(out, "\033[1;6H"+string(BlockFull)) {
		t.Errorf("new cell not drawn: %q", out)
	}
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.SetOffset(3, 2)
	c.FillRect(0, 0, 10, 20)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.HasPrefix(buf.String(), "\033[3;4H"+string(BlockFull)) {
		t.Errorf("render = %q", buf.String())
	}
}

func TestForceRedrawRewritesEverything(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var buf bytes.Buffer
	c.Render(&buf)
	buf.Reset()

	c.ForceRedraw()
	c.Render(&buf)
	if got := strings.Count(buf.String(), " "); got != 8 {
		t.Errorf("blank cells written = %d, want 8", got)
	}
}

func TestMarkTextDirty(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(2, 1, 3)
	buf.Reset()
	c.Render(&buf)
	if got := buf.String(); got != "\033[1;2H   " {
		t.Errorf("render = %q", got)
	}

	// Out of range is ignored.
	c.MarkTextDirty(1, 99, 3)
}

func TestDashedVLine(t *testing.T) {
	c := NewScaledCanvas(10, 10, 100, 100)
	c.DashedVLine(50, 10, 10)

	rows := map[int]bool{}
	c.EachCell(func(col, row int, ch rune) {
		if col != 5 {
			t.Errorf("dash at column %d", col)
		}
		rows[row] = true
	})
	for _, r := range []int{0, 2, 4, 6, 8} {
		if !rows[r] {
			t.Errorf("row %d missing dash", r)
		}
	}
	for _, r := range []int{1, 3, 5, 7, 9} {
		if rows[r] {
			t.Errorf("row %d should be a gap", r)
		}
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(80, 25, 800, 500)
	col, row := c.LogicalToTerminal(400, 250)
	if col != 41 || row != 13 {
		t.Errorf("got (%d,%d), want (41,13)", col, row)
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)
	cw.WriteAt(1, 1, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\033[2;3Hhi" {
		t.Errorf("got %q", got)
	}
}
