package manager

import (
	"jedi-snake/game/entity"
	"jedi-snake/game/types"
)

// Rand is the subset of *golang.org/x/exp/rand.Rand the managers draw from.
type Rand interface {
	Intn(n int) int
}

// FoodManager owns the jedi token (always one) and the optional sith token.
type FoodManager struct {
	cfg          types.Config
	geom         types.Geometry
	rng          Rand
	collisionMgr *CollisionManager
	jedi         *entity.Edible
	sith         *entity.Edible
}

func NewFoodManager(cfg types.Config, rng Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		cfg:          cfg,
		geom:         types.NewGeometry(cfg),
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Reset forgets all tokens, as at the start of a round.
func (fm *FoodManager) Reset() {
	fm.jedi = nil
	fm.sith = nil
}

// Respawn places a fresh jedi and rerolls the sith. It returns false when
// the snake leaves no cell for the jedi.
func (fm *FoodManager) Respawn(snake *entity.Snake) bool {
	createSith := fm.sith == nil && fm.rng.Intn(fm.cfg.SithSpawnOdds) == 0
	moveSith := fm.sith != nil && fm.rng.Intn(fm.cfg.SithJumpOdds) != 0

	// A sith that stays put must not end up under the new jedi
	var taken []types.Point
	if fm.sith != nil && !moveSith {
		taken = append(taken, fm.sith.Pos)
	}

	pos, ok := fm.GenerateFood(snake, taken...)
	if !ok {
		return false
	}
	fm.jedi = &entity.Edible{Pos: pos, Sprite: fm.randomSprite(types.Jedi)}

	if createSith {
		fm.sith = &entity.Edible{Sprite: fm.randomSprite(types.Sith)}
	}
	if createSith || moveSith {
		pos, ok := fm.GenerateFood(snake, fm.jedi.Pos)
		if !ok {
			fm.sith = nil
			return true
		}
		fm.sith.Pos = pos
	}
	return true
}

// GenerateFood draws a uniform random cell that is off the snake and not
// in exclude.
func (fm *FoodManager) GenerateFood(snake *entity.Snake, exclude ...types.Point) (types.Point, bool) {
	// Rejection sampling is fast while the board is mostly empty
	attempts := fm.geom.Cols * fm.geom.Rows * 4
	for i := 0; i < attempts; i++ {
		food := fm.geom.CellAt(fm.rng.Intn(fm.geom.Cols), fm.rng.Intn(fm.geom.Rows))
		if fm.collisionMgr.ValidateSpawnPosition(food, snake, exclude...) {
			return food, true
		}
	}

	free := make([]types.Point, 0)
	for row := 0; row < fm.geom.Rows; row++ {
		for col := 0; col < fm.geom.Cols; col++ {
			p := fm.geom.CellAt(col, row)
			if fm.collisionMgr.ValidateSpawnPosition(p, snake, exclude...) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) randomSprite(kind types.EdibleKind) types.Sprite {
	return types.Sprite{Kind: kind, Variant: fm.rng.Intn(fm.cfg.SpriteVariants)}
}

func (fm *FoodManager) Jedi() *entity.Edible {
	return fm.jedi
}

// Sith returns the hazard token, or nil when none is on the board.
func (fm *FoodManager) Sith() *entity.Edible {
	return fm.sith
}

func (fm *FoodManager) ClearSith() {
	fm.sith = nil
}

// Place puts both tokens at fixed cells; sith may be nil.
func (fm *FoodManager) Place(jedi, sith *entity.Edible) {
	fm.jedi = jedi
	fm.sith = sith
}
