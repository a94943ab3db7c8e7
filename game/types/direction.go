package types

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Offset returns the displacement of one cell step of the given size.
func (d Direction) Offset(cell int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cell}
	case Right:
		return Point{X: cell, Y: 0}
	case Down:
		return Point{X: 0, Y: cell}
	case Left:
		return Point{X: -cell, Y: 0}
	default:
		return Point{}
	}
}

// Horizontal reports whether d lies on the left/right axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
