package core

import (
	"strings"
	"testing"
)

func TestScreenNewIsBlank(t *testing.T) {
	s := NewScreen(10, 4)

	if s.Width() != 10 || s.Height() != 4 {
		t.Errorf("Size = %dx%d, want 10x4", s.Width(), s.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("Cell (%d,%d) not blank", x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 4)

	s.Set(3, 2, '@')
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3,2) = %q", s.Get(3, 2))
	}

	s.SetColored(4, 2, '#', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 4)

	// Writes outside the buffer are dropped, not panics
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 4, 'x')

	if s.Get(-5, -5) != ' ' || s.Get(100, 100) != ' ' {
		t.Error("Out-of-bounds Get did not return blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawText(2, 0, "hi")
	if s.Get(2, 0) != 'h' || s.Get(3, 0) != 'i' {
		t.Error("DrawText did not place the runes")
	}

	// Clipped at the right edge
	s.DrawText(8, 1, "long")
	if s.Get(8, 1) != 'l' || s.Get(9, 1) != 'o' {
		t.Error("Clipped text start missing")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' || s.Get(6, 0) != 'c' {
		t.Errorf("Centered text misplaced: %q", s.String())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'x', ColorRed)
	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Cell after Clear = %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.Set(2, 1, 'x')

	s.Resize(20, 8)
	if s.Get(2, 1) != 'x' {
		t.Error("Resize lost content")
	}
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Size after resize = %dx%d", s.Width(), s.Height())
	}

	// Shrinking clips without panicking
	s.Resize(3, 2)
	if s.Get(2, 1) != 'x' {
		t.Error("Shrink lost in-bounds content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() row separator count wrong")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("Box corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("Box edges wrong:\n%s", s.String())
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionSteerLeft) {
		t.Error("Fresh frame has actions set")
	}

	f.Set(ActionSteerLeft)
	f.Set(ActionPause)
	if !f.Has(ActionSteerLeft) || !f.Has(ActionPause) {
		t.Error("Set actions not reported")
	}
	if f.Has(ActionSteerRight) {
		t.Error("Unset action reported")
	}

	f.Clear()
	if f.Has(ActionSteerLeft) || f.Has(ActionPause) {
		t.Error("Clear left actions set")
	}
}
