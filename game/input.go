package game

import "jedi-snake/game/types"

// Translate turns a batch of raw events into at most one move. Turns along
// the current axis are dropped; the first event yielding a move wins.
func Translate(events []types.Event, current types.Direction) types.Move {
	for _, ev := range events {
		if ev.Kind == types.EventQuit {
			return types.Quit()
		}
		if ev.Kind != types.EventKey {
			continue
		}
		switch ev.Key {
		case types.KeyEscape:
			return types.Quit()
		case types.KeyEqual:
			return types.SpeedDelta(1)
		case types.KeyMinus:
			return types.SpeedDelta(-1)
		}
		if !current.Horizontal() {
			switch ev.Key {
			case types.KeyLeft, types.KeyA:
				return types.Turn(types.Left)
			case types.KeyRight, types.KeyD:
				return types.Turn(types.Right)
			}
		} else {
			switch ev.Key {
			case types.KeyUp, types.KeyW:
				return types.Turn(types.Up)
			case types.KeyDown, types.KeyX:
				return types.Turn(types.Down)
			}
		}
	}
	return types.NoMove()
}

// MenuAction is what a key press means on the title and farewell screens.
type MenuAction int

const (
	MenuIdle MenuAction = iota
	MenuContinue
	MenuQuit
)

// TranslateMenu reports whether the player pressed a key or asked to quit.
func TranslateMenu(events []types.Event) MenuAction {
	for _, ev := range events {
		if ev.Kind == types.EventQuit {
			return MenuQuit
		}
		if ev.Kind == types.EventKey {
			if ev.Key == types.KeyEscape {
				return MenuQuit
			}
			return MenuContinue
		}
	}
	return MenuIdle
}
