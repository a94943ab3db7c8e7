package types

import "fmt"

// MoveKind tags the variant held by a Move.
type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveQuit
	MoveSpeed
	MoveTurn
)

// Move is the semantic result of one input poll.
// Delta is set for MoveSpeed, Dir for MoveTurn.
type Move struct {
	Kind  MoveKind
	Delta int
	Dir   Direction
}

func NoMove() Move { return Move{Kind: MoveNone} }

func Quit() Move { return Move{Kind: MoveQuit} }

func SpeedDelta(delta int) Move { return Move{Kind: MoveSpeed, Delta: delta} }

func Turn(dir Direction) Move { return Move{Kind: MoveTurn, Dir: dir} }

func (m Move) String() string {
	switch m.Kind {
	case MoveQuit:
		return "quit"
	case MoveSpeed:
		return fmt.Sprintf("speed(%+d)", m.Delta)
	case MoveTurn:
		return "turn(" + m.Dir.String() + ")"
	default:
		return "none"
	}
}

// EventKind distinguishes raw backend events.
type EventKind int

const (
	EventKey EventKind = iota
	EventQuit
)

// Key is a backend independent key code.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyD
	KeyX
	KeyEqual
	KeyMinus
)

// Event is a raw input event as reported by a backend.
type Event struct {
	Kind EventKind
	Key  Key
}

func KeyEvent(k Key) Event { return Event{Kind: EventKey, Key: k} }

func QuitEvent() Event { return Event{Kind: EventQuit} }
