package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(255, 0, 0)

	s.Set(5, 5, 'X', red)
	if cell := s.Get(5, 5); cell.Rune != 'X' || cell.FG != red {
		t.Errorf("Get(5, 5) = %+v, expected 'X' in red", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', red)
	s.Set(100, 0, 'A', red)
	s.Set(0, -1, 'A', red)
	s.Set(0, 100, 'A', red)

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X', Black)
	blue := RGB(0, 0, 255)

	s.Fill(blue)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			cell := s.Get(x, y)
			if cell.Rune != ' ' || cell.BG != blue {
				t.Errorf("After Fill, expected blank blue cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenFillCircle(t *testing.T) {
	s := NewScreen(10, 10)
	green := RGB(0, 200, 0)

	s.FillCircle(Vec2{5, 5}, 2, green)

	painted := []struct{ x, y int }{{4, 4}, {5, 5}, {3, 5}, {4, 5}, {5, 4}}
	for _, p := range painted {
		if cell := s.Get(p.x, p.y); cell.Rune != RuneFull || cell.FG != green {
			t.Errorf("FillCircle: expected block at (%d, %d), got %+v", p.x, p.y, cell)
		}
	}

	untouched := []struct{ x, y int }{{2, 5}, {0, 0}, {9, 9}}
	for _, p := range untouched {
		if s.Get(p.x, p.y).Rune != ' ' {
			t.Errorf("FillCircle should not paint (%d, %d)", p.x, p.y)
		}
	}
}

func TestScreenFillCircleSmallerThanCell(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillCircle(Vec2{5.2, 5.2}, 0.1, Black)

	if s.Get(5, 5).Rune != RuneFull {
		t.Error("a tiny disc should still paint the cell containing its center")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRectF(2, 2, 3, 3), Black)

	// Check filled area
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y).Rune != RuneFull {
				t.Errorf("FillRect: expected block at (%d, %d), got %q", x, y, s.Get(x, y).Rune)
			}
		}
	}

	// Check outside is still space
	if s.Get(1, 1).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}
	if s.Get(5, 5).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.Line(Vec2{1.5, 3.5}, Vec2{8.5, 3.5}, 2, Black)

	for x := 1; x <= 8; x++ {
		if s.Get(x, 3).Rune != RuneHLine {
			t.Errorf("Line: expected %q at (%d, 3), got %q", RuneHLine, x, s.Get(x, 3).Rune)
		}
	}
	if s.Get(0, 3).Rune != ' ' || s.Get(9, 3).Rune != ' ' {
		t.Error("Line should stop at its endpoints")
	}
}

func TestScreenLineKeepsSameColorBlocks(t *testing.T) {
	s := NewScreen(10, 5)
	red := RGB(255, 0, 0)
	s.Set(5, 2, RuneFull, red)
	s.Set(6, 2, RuneFull, Black)

	s.Line(Vec2{0.5, 2.5}, Vec2{9.5, 2.5}, 2, red)

	if s.Get(5, 2).Rune != RuneFull {
		t.Error("Line should not overwrite a block of its own color")
	}
	if s.Get(6, 2).Rune != RuneHLine {
		t.Error("Line should overwrite blocks of other colors")
	}
}

func TestScreenWorldMapping(t *testing.T) {
	s := NewScreen(16, 9)
	s.SetWorld(1280, 720)

	// 80x80 world units per cell
	s.FillCircle(Vec2{40, 40}, 10, Black)
	if s.Get(0, 0).Rune != RuneFull {
		t.Error("expected (40, 40) to map onto cell (0, 0)")
	}

	s.FillRect(NewRectF(1200, 640, 2, 5), Black)
	if s.Get(15, 8).Rune != RuneFull {
		t.Error("expected (1200, 640) to map onto cell (15, 8)")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(NewRectF(0, 1, 5, 1), Black)

	result := s.String()
	expected := "     \n█████\n     "
	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(0)) != 8 {
		t.Errorf("Row length should be 8, got %d", len(s.Row(0)))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.Line(Vec2{0.5, 2.5}, Vec2{3.5, 2.5}, 1, Black)

	row := s.Row(2)
	if !strings.HasPrefix(row, "────") {
		t.Errorf("Row(2) should start with a line, got %q", row)
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
