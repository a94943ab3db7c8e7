package manager

import (
	"jedi-snake/game/entity"
	"jedi-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	geom types.Geometry
}

func NewCollisionManager(geom types.Geometry) *CollisionManager {
	return &CollisionManager{
		geom: geom,
	}
}

// CheckSnake runs the legality check on the snake's current head.
func (cm *CollisionManager) CheckSnake(snake *entity.Snake) CollisionType {
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(head, snake) {
		return SelfCollision
	}
	return NoCollision
}

// IsLegal reports whether the snake may keep moving.
func (cm *CollisionManager) IsLegal(snake *entity.Snake) bool {
	return cm.CheckSnake(snake) == NoCollision
}

// isWallCollision checks if a position lies outside the window
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.geom.Contains(pos)
}

// isSelfCollision checks the head against every other body cell
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	for _, part := range snake.Body[1:] {
		if pos == part {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with an edible
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Edible) bool {
	return food != nil && pos == food.Pos
}

// ValidateSpawnPosition checks that pos is on the board, off the snake and
// not one of the excluded cells.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, exclude ...types.Point) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Contains(pos) {
		return false
	}
	for _, p := range exclude {
		if pos == p {
			return false
		}
	}
	return true
}
