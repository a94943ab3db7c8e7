package term

import (
	"fmt"

	"jedi-snake/game/types"

	"github.com/nsf/termbox-go"
)

func attr(c types.Color) termbox.Attribute {
	switch c {
	case types.Blue:
		return termbox.ColorBlue
	case types.Red:
		return termbox.ColorRed
	case types.Yellow:
		return termbox.ColorYellow
	case types.Black:
		return termbox.ColorBlack
	default:
		return termbox.ColorWhite
	}
}

// column and row of the terminal cell that shows the board cell at p
func (s *Screen) cellPos(p types.Point) (int, int) {
	return p.X / s.geom.CellSize * 2, p.Y/s.geom.CellSize + 1
}

func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	clear(s.frames)
}

// DrawGrid marks every empty cell with a dim dot.
func (s *Screen) DrawGrid(geom types.Geometry) {
	for row := 0; row < geom.Rows; row++ {
		for col := 0; col < geom.Cols; col++ {
			termbox.SetCell(col*2, row+1, '·', termbox.ColorWhite, termbox.ColorDefault)
		}
	}
}

// DrawCell paints a full cell as a solid block; an inset rectangle leaves
// only the outline of the block painted before it.
func (s *Screen) DrawCell(r types.Rect, c types.Color) {
	corner := types.Point{X: r.X - r.X%s.geom.CellSize, Y: r.Y - r.Y%s.geom.CellSize}
	x, y := s.cellPos(corner)
	if r.W >= s.geom.CellSize {
		s.frames[corner] = attr(c)
		termbox.SetCell(x, y, ' ', termbox.ColorDefault, attr(c))
		termbox.SetCell(x+1, y, ' ', termbox.ColorDefault, attr(c))
		return
	}
	fg, ok := s.frames[corner]
	if !ok {
		fg = termbox.ColorWhite
	}
	termbox.SetCell(x, y, '[', fg, attr(c))
	termbox.SetCell(x+1, y, ']', fg, attr(c))
}

// BlitImage writes the sprite as its file stem, "j3" or "s1".
func (s *Screen) BlitImage(sp types.Sprite, at types.Point) {
	corner := types.Point{X: at.X - at.X%s.geom.CellSize, Y: at.Y - at.Y%s.geom.CellSize}
	x, y := s.cellPos(corner)
	bg, ok := s.frames[corner]
	if !ok {
		bg = termbox.ColorDefault
	}
	label := fmt.Sprintf("%s%d", sp.Kind.Prefix(), sp.Variant+1)
	for i, ch := range label {
		termbox.SetCell(x+i, y, ch, termbox.ColorWhite|termbox.AttrBold, bg)
	}
}

// DrawText maps pixel positions onto character cells, half a cell per column.
func (s *Screen) DrawText(text string, at types.Point, size int, c types.Color) {
	half := s.geom.CellSize / 2
	x := at.X / half
	y := at.Y / s.geom.CellSize
	if y < 0 || y > s.geom.Rows {
		return
	}
	for i, ch := range []rune(text) {
		termbox.SetCell(x+i, y, ch, attr(c), termbox.ColorDefault)
	}
}

// MeasureText reports the pixel size DrawText will occupy.
func (s *Screen) MeasureText(text string, size int) (int, int) {
	return len([]rune(text)) * (s.geom.CellSize / 2), s.geom.CellSize
}

func (s *Screen) Present() {
	if err := termbox.Flush(); err != nil {
		s.log.Warnw("terminal flush failed", "error", err)
	}
}
