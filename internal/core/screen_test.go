package core

import (
	"strings"
	"testing"
)

func row(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("Size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}, {10, 0}} {
		s.Set(p[0], p[1], 'A')
		if s.GetCell(p[0], p[1]) != blankCell {
			t.Errorf("Out of bounds GetCell(%d, %d) should be blank", p[0], p[1])
		}
	}
	if strings.Count(s.String(), "A") != 0 {
		t.Error("Out of bounds writes should not wrap onto other rows")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '@', ColorOrange)

	if cell := s.GetCell(2, 1); cell.Rune != '@' || cell.Color != ColorOrange {
		t.Errorf("GetCell(2, 1) = %+v, expected '@' in orange", cell)
	}

	s.Set(2, 1, '#')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should write the default color")
	}

	s.DrawTextColored(0, 0, "ab", ColorRed)
	if row(s, 0) != "ab        " {
		t.Errorf("row 0 = %q, expected plain text", row(s, 0))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'x', ColorGreen)
	s.DrawText(0, 3, "abcd")
	s.Clear()

	if s.String() != "    \n    \n    \n    " {
		t.Errorf("After Clear, String() = %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	if got := row(s, 1); got != "  Hello             " {
		t.Errorf("row 1 = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if got := row(s, 0); !strings.HasSuffix(got, "He") {
		t.Errorf("Clipped text row = %q, expected suffix \"He\"", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")
	if got := row(s, 1); got != "    abc    " {
		t.Errorf("Centered row = %q", got)
	}

	// Multi-byte runes count as one column each
	s.DrawTextCentered(2, "┊┊┊")
	if s.GetCell(4, 2).Rune != '┊' || s.GetCell(6, 2).Rune != '┊' {
		t.Errorf("Centered runes row = %q", row(s, 2))
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawHLine(2, 2, 5, '-', ColorGray)
	s.DrawVLine(1, 1, 4, '|', ColorWhite)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 2); c.Rune != '-' || c.Color != ColorGray {
			t.Errorf("DrawHLine: got %+v at (%d, 2)", c, x)
		}
	}
	for y := 1; y < 5; y++ {
		if c := s.GetCell(1, y); c.Rune != '|' || c.Color != ColorWhite {
			t.Errorf("DrawVLine: got %+v at (1, %d)", c, y)
		}
	}

	// Negative lengths draw nothing
	s.DrawHLine(0, 0, -3, '-', ColorGray)
	if row(s, 0) != "        " {
		t.Errorf("Negative length should draw nothing, row 0 = %q", row(s, 0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("After resize, size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := row(s, 0); got != "Hello   " {
		t.Errorf("Content should be kept, row 0 = %q", got)
	}

	s.Resize(15, 8)
	if got := row(s, 0); got != "Hello          " {
		t.Errorf("Content should be kept after enlarging, row 0 = %q", got)
	}
	if got := row(s, 5); strings.TrimSpace(got) != "" {
		t.Errorf("Rows cut by shrinking should come back blank, row 5 = %q", got)
	}

	s.Resize(-1, 3)
	if s.Width() != 0 || s.String() != "\n\n" {
		t.Errorf("Negative width should clamp to 0, got %d wide %q", s.Width(), s.String())
	}
}
