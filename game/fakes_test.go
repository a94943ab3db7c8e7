package game

import (
	"jedi-snake/game/types"
)

type textCall struct {
	text string
	at   types.Point
	size int
}

// recordingRenderer keeps the calls of the current frame.
type recordingRenderer struct {
	cells    []types.Rect
	colors   []types.Color
	sprites  []types.Sprite
	texts    []textCall
	grids    int
	presents int
}

func (r *recordingRenderer) Clear() {
	r.cells, r.colors, r.sprites, r.texts = nil, nil, nil, nil
}

func (r *recordingRenderer) DrawGrid(types.Geometry) { r.grids++ }

func (r *recordingRenderer) DrawCell(rect types.Rect, c types.Color) {
	r.cells = append(r.cells, rect)
	r.colors = append(r.colors, c)
}

func (r *recordingRenderer) BlitImage(s types.Sprite, at types.Point) {
	r.sprites = append(r.sprites, s)
}

func (r *recordingRenderer) DrawText(text string, at types.Point, size int, c types.Color) {
	r.texts = append(r.texts, textCall{text: text, at: at, size: size})
}

func (r *recordingRenderer) MeasureText(text string, size int) (int, int) {
	return len(text) * size / 2, size
}

func (r *recordingRenderer) Present() { r.presents++ }

// scriptedInput hands out one batch per poll, then nothing.
type scriptedInput struct {
	batches [][]types.Event
	polls   int
}

func (in *scriptedInput) PollEvents() []types.Event {
	in.polls++
	if len(in.batches) == 0 {
		return nil
	}
	b := in.batches[0]
	in.batches = in.batches[1:]
	return b
}

type countingClock struct {
	rates []int
}

func (c *countingClock) Tick(tps int) { c.rates = append(c.rates, tps) }

type soundLog struct {
	played []types.Sound
}

func (s *soundLog) Play(snd types.Sound) { s.played = append(s.played, snd) }
