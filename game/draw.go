package game

import (
	"fmt"

	"jedi-snake/game/entity"
	"jedi-snake/game/types"
)

// Redraw paints the board, tokens, snake and score, then presents the frame.
func (g *Game) Redraw(r Renderer) {
	r.Clear()
	r.DrawGrid(g.Geometry)
	g.drawEdible(r, g.foodManager.Jedi(), types.Blue)
	g.drawEdible(r, g.foodManager.Sith(), types.Red)
	g.drawSnake(r)
	r.DrawText(fmt.Sprintf("Score: %d", g.stateManager.Score()), types.Point{}, ScoreFontSize, types.Blue)
	r.Present()
}

func (g *Game) drawEdible(r Renderer, e *entity.Edible, frame types.Color) {
	if e == nil {
		return
	}
	r.DrawCell(g.Geometry.CellFrame(e.Pos), frame)
	r.BlitImage(e.Sprite, types.Point{X: e.Pos.X + 1, Y: e.Pos.Y + 1})
}

// drawSnake fills the head and outlines every body cell.
func (g *Game) drawSnake(r Renderer) {
	for i, p := range g.snake.Body {
		r.DrawCell(g.Geometry.CellFrame(p), types.Blue)
		if i > 0 {
			r.DrawCell(g.Geometry.CellInner(p), types.Black)
		}
	}
}
