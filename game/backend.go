package game

import "jedi-snake/game/types"

// Renderer draws primitives onto the window.
type Renderer interface {
	Clear()
	DrawGrid(geom types.Geometry)
	DrawCell(r types.Rect, c types.Color)
	BlitImage(s types.Sprite, at types.Point)
	DrawText(text string, at types.Point, size int, c types.Color)
	MeasureText(text string, size int) (w, h int)
	Present()
}

// InputSource drains pending raw input events.
type InputSource interface {
	PollEvents() []types.Event
}

// Clock blocks until the next frame boundary at the given rate.
type Clock interface {
	Tick(ticksPerSecond int)
}

type SoundPlayer interface {
	Play(s types.Sound)
}

// Backend bundles the collaborators a round needs.
type Backend struct {
	Renderer Renderer
	Input    InputSource
	Clock    Clock
	Sound    SoundPlayer
}

type silence struct{}

func (silence) Play(types.Sound) {}

// Silence is a SoundPlayer that plays nothing.
var Silence SoundPlayer = silence{}
