package ui

import (
	"jedi-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyMap = map[int32]types.Key{
	rl.KeyEscape:     types.KeyEscape,
	rl.KeyUp:         types.KeyUp,
	rl.KeyDown:       types.KeyDown,
	rl.KeyLeft:       types.KeyLeft,
	rl.KeyRight:      types.KeyRight,
	rl.KeyW:          types.KeyW,
	rl.KeyA:          types.KeyA,
	rl.KeyD:          types.KeyD,
	rl.KeyX:          types.KeyX,
	rl.KeyEqual:      types.KeyEqual,
	rl.KeyKpAdd:      types.KeyEqual,
	rl.KeyMinus:      types.KeyMinus,
	rl.KeyKpSubtract: types.KeyMinus,
}

// Input drains raylib's key queue. Raylib refills it during EndDrawing.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) PollEvents() []types.Event {
	var events []types.Event
	if rl.WindowShouldClose() {
		events = append(events, types.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		k, ok := keyMap[key]
		if !ok {
			k = types.KeyOther
		}
		events = append(events, types.KeyEvent(k))
	}
	return events
}
