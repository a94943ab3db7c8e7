package ui

import (
	"jedi-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const textSpacing = 1

// Renderer draws the board with raylib. Clear opens a frame and Present
// closes it.
type Renderer struct {
	assets  *Assets
	drawing bool
}

func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{assets: assets}
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) Clear() {
	if !r.drawing {
		rl.BeginDrawing()
		r.drawing = true
	}
	rl.ClearBackground(rl.Black)
}

// DrawGrid draws one gray line per column and row boundary.
func (r *Renderer) DrawGrid(geom types.Geometry) {
	gray := toColor(types.Gray)
	for x := 0; x < geom.Width; x += geom.CellSize {
		rl.DrawLine(int32(x), 0, int32(x), int32(geom.Height), gray)
	}
	for y := 0; y < geom.Height; y += geom.CellSize {
		rl.DrawLine(0, int32(y), int32(geom.Width), int32(y), gray)
	}
}

func (r *Renderer) DrawCell(rect types.Rect, c types.Color) {
	rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), toColor(c))
}

func (r *Renderer) BlitImage(s types.Sprite, at types.Point) {
	tex, ok := r.assets.Texture(s)
	if !ok {
		return
	}
	rl.DrawTexture(tex, int32(at.X), int32(at.Y), rl.White)
}

func (r *Renderer) DrawText(text string, at types.Point, size int, c types.Color) {
	pos := rl.Vector2{X: float32(at.X), Y: float32(at.Y)}
	rl.DrawTextEx(r.assets.Font(), text, pos, float32(size), textSpacing, toColor(c))
}

func (r *Renderer) MeasureText(text string, size int) (int, int) {
	v := rl.MeasureTextEx(r.assets.Font(), text, float32(size), textSpacing)
	return int(v.X), int(v.Y)
}

func (r *Renderer) Present() {
	if !r.drawing {
		rl.BeginDrawing()
	}
	rl.EndDrawing()
	r.drawing = false
}
