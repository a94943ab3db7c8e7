package game

import "jedi-snake/game/types"

// Text sizes and pacing of the scrolling screens.
const (
	ScoreFontSize = 24
	TitleFontSize = 28
	LineFontSize  = 24
	RollerFPS     = 125 // one pixel of scroll every 8ms
)

type rollerLine struct {
	text    string
	size    int
	w, h    int
	centerY int
}

// Roller scrolls a block of centred lines up the window, starting again
// from the bottom once the last line has left the top.
type Roller struct {
	geom  types.Geometry
	lines []rollerLine
}

func NewRoller(lines []string, geom types.Geometry, r Renderer) *Roller {
	rl := &Roller{geom: geom}
	for i, text := range lines {
		size := LineFontSize
		if i == 0 {
			size = TitleFontSize
		}
		w, h := r.MeasureText(text, size)
		rl.lines = append(rl.lines, rollerLine{text: text, size: size, w: w, h: h})
	}
	rl.rewind()
	return rl
}

// rewind parks every line below the bottom edge, one line height apart.
func (rl *Roller) rewind() {
	for i := range rl.lines {
		rl.lines[i].centerY = rl.geom.Height + rl.lines[i].h*(i+1)
	}
}

// Frame draws the current position and scrolls one pixel.
func (rl *Roller) Frame(r Renderer) {
	r.Clear()
	if len(rl.lines) > 0 {
		last := rl.lines[len(rl.lines)-1]
		if last.centerY+last.h/2 <= 0 {
			rl.rewind()
		}
	}
	for i := range rl.lines {
		line := &rl.lines[i]
		at := types.Point{X: rl.geom.Width/2 - line.w/2, Y: line.centerY - line.h/2}
		r.DrawText(line.text, at, line.size, types.Yellow)
		line.centerY--
	}
	r.Present()
}

// Roll plays the lines until a key is pressed and reports whether the
// player asked to quit.
func Roll(lines []string, geom types.Geometry, be Backend) MenuAction {
	rl := NewRoller(lines, geom, be.Renderer)
	for {
		if action := TranslateMenu(be.Input.PollEvents()); action != MenuIdle {
			return action
		}
		rl.Frame(be.Renderer)
		be.Clock.Tick(RollerFPS)
	}
}
