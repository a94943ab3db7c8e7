package entity

import "jedi-snake/game/types"

// Edible is a token on the board: a jedi to collect or a sith to avoid.
type Edible struct {
	Pos    types.Point
	Sprite types.Sprite
}

func (e *Edible) Kind() types.EdibleKind {
	return e.Sprite.Kind
}
