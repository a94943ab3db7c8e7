package types

import "testing"

func TestNewGeometry(t *testing.T) {
	g := NewGeometry(DefaultConfig())
	if g.Cols != 28 || g.Rows != 15 {
		t.Fatalf("expected 28x15 cells, got %dx%d", g.Cols, g.Rows)
	}
	if got := g.CellAt(3, 2); got != (Point{X: 135, Y: 90}) {
		t.Errorf("CellAt(3, 2) = %v", got)
	}
	if got := g.CellInner(Point{X: 45, Y: 90}); got != (Rect{X: 46, Y: 91, W: 43, H: 43}) {
		t.Errorf("CellInner = %v", got)
	}
	if g.SpriteSize() != 43 {
		t.Errorf("SpriteSize = %d", g.SpriteSize())
	}
}

func TestGeometryContains(t *testing.T) {
	g := NewGeometry(DefaultConfig())
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 1215, Y: 630}, true},
		{Point{X: 1260, Y: 90}, false},
		{Point{X: 90, Y: 675}, false},
		{Point{X: -45, Y: 90}, false},
		{Point{X: 90, Y: -45}, false},
	}
	for _, tc := range cases {
		if got := g.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if got := Up.Offset(45); got != (Point{X: 0, Y: -45}) {
		t.Errorf("Up offset = %v", got)
	}
	if got := Left.Offset(45); got != (Point{X: -45, Y: 0}) {
		t.Errorf("Left offset = %v", got)
	}
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		if d.Horizontal() != d.Opposite().Horizontal() {
			t.Errorf("%v and its opposite are on different axes", d)
		}
	}
	if !Right.Horizontal() || Down.Horizontal() {
		t.Error("axis classification is wrong")
	}
}

func TestMoveConstructors(t *testing.T) {
	if m := SpeedDelta(-1); m.Kind != MoveSpeed || m.Delta != -1 {
		t.Errorf("SpeedDelta(-1) = %+v", m)
	}
	if m := Turn(Down); m.Kind != MoveTurn || m.Dir != Down {
		t.Errorf("Turn(Down) = %+v", m)
	}
	if Quit().String() != "quit" || NoMove().String() != "none" {
		t.Error("unexpected move names")
	}
}
