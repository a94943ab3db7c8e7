package game

import (
	"jedi-snake/game/entity"
	"jedi-snake/game/manager"
	"jedi-snake/game/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoundResult is reported to the caller when a round ends.
type RoundResult struct {
	ID     string
	Score  int
	Quit   bool
	Reason manager.EndReason
	Ticks  int
	Length int
}

type Game struct {
	UUID         string
	Config       types.Config
	Geometry     types.Geometry
	snake        *entity.Snake
	rng          manager.Rand
	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager
	sound        SoundPlayer
	log          *zap.SugaredLogger
}

func NewGame(cfg types.Config, rng manager.Rand, log *zap.SugaredLogger) *Game {
	geom := types.NewGeometry(cfg)
	collisionMgr := manager.NewCollisionManager(geom)
	return &Game{
		Config:       cfg,
		Geometry:     geom,
		rng:          rng,
		collisionMgr: collisionMgr,
		foodManager:  manager.NewFoodManager(cfg, rng, collisionMgr),
		stateManager: manager.NewStateManager(),
		sound:        Silence,
		log:          log,
	}
}

// SetSound routes eat and game over effects to p.
func (g *Game) SetSound(p SoundPlayer) {
	if p == nil {
		p = Silence
	}
	g.sound = p
}

// Start begins a new round: a fresh snake, score zero, default speed and
// a spawn event for the tokens.
func (g *Game) Start() {
	g.UUID = uuid.New().String()
	g.snake = entity.NewSnake(g.startPosition(), g.Config.StartLength, g.Geometry.CellSize)
	g.foodManager.Reset()
	g.foodManager.Respawn(g.snake)
	g.stateManager.Start(g.Config.DefaultSpeed)

	head := g.snake.GetHead()
	g.log.Infow("round started",
		"round", g.UUID,
		"head", head,
		"jedi", g.foodManager.Jedi().Pos,
		"sith", g.foodManager.Sith() != nil,
		"speed", g.stateManager.Speed())
}

// startPosition draws a random cell and clamps it so the snake fits
// behind the head and has room ahead.
func (g *Game) startPosition() types.Point {
	cell := g.Geometry.CellSize
	p := g.Geometry.CellAt(g.rng.Intn(g.Geometry.Cols), g.rng.Intn(g.Geometry.Rows))
	p.X = min(p.X, g.Geometry.Width-5*cell)
	p.X = max(p.X, (g.Config.StartLength-1)*cell)
	return p
}

// Step advances the round by one tick and reports whether it is still
// running.
func (g *Game) Step(move types.Move) bool {
	if g.stateManager.Phase() != manager.Running {
		return false
	}

	if move.Kind == types.MoveQuit {
		g.end(manager.EndedByQuit)
		return false
	}

	// The snake left by the previous tick is judged before it moves again
	if c := g.collisionMgr.CheckSnake(g.snake); c != manager.NoCollision {
		g.end(manager.ReasonFor(c))
		return false
	}

	switch move.Kind {
	case types.MoveSpeed:
		g.stateManager.AdjustSpeed(move.Delta)
		g.log.Debugw("speed changed", "round", g.UUID, "speed", g.stateManager.Speed())
	case types.MoveTurn:
		g.snake.SetDirection(move.Dir)
	}

	newHead := g.snake.NextHead(g.Geometry.CellSize)
	g.snake.Move(newHead)
	g.stateManager.Tick()

	switch {
	case g.collisionMgr.IsFoodCollision(newHead, g.foodManager.Jedi()):
		g.stateManager.AddPoint()
		g.sound.Play(types.SoundJedi)
		if !g.foodManager.Respawn(g.snake) {
			g.end(manager.EndedBoardFull)
			return false
		}
	case g.collisionMgr.IsFoodCollision(newHead, g.foodManager.Sith()):
		g.snake.Truncate(SithCut(g.snake.Len()))
		g.foodManager.ClearSith()
		g.sound.Play(types.SoundSith)
		g.log.Debugw("sith eaten", "round", g.UUID, "length", g.snake.Len())
	default:
		g.snake.RemoveTail()
	}
	return true
}

// SithCut is the length a snake of n cells (new head included) keeps after
// eating a sith: the first third, but never fewer than two cells.
func SithCut(n int) int {
	return max(types.MinSithLength, (n-1)/3)
}

func (g *Game) end(reason manager.EndReason) {
	g.stateManager.End(reason)
	if reason != manager.EndedByQuit {
		g.sound.Play(types.SoundGameOver)
	}
	g.log.Infow("round ended",
		"round", g.UUID,
		"reason", reason.String(),
		"score", g.stateManager.Score(),
		"ticks", g.stateManager.Ticks(),
		"length", g.snake.Len(),
		"best", g.stateManager.GetHighScore(),
		"rounds", g.stateManager.RoundsPlayed())
}

// Run plays the started round to its end: poll, step, redraw, wait.
func (g *Game) Run(be Backend) RoundResult {
	if be.Sound != nil {
		g.SetSound(be.Sound)
	}
	for {
		move := Translate(be.Input.PollEvents(), g.snake.Direction)
		if !g.Step(move) {
			break
		}
		g.Redraw(be.Renderer)
		be.Clock.Tick(g.stateManager.Speed())
	}
	return g.Result()
}

func (g *Game) Result() RoundResult {
	return RoundResult{
		ID:     g.UUID,
		Score:  g.stateManager.Score(),
		Quit:   g.stateManager.Reason() == manager.EndedByQuit,
		Reason: g.stateManager.Reason(),
		Ticks:  g.stateManager.Ticks(),
		Length: g.snake.Len(),
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetJedi() *entity.Edible {
	return g.foodManager.Jedi()
}

func (g *Game) GetSith() *entity.Edible {
	return g.foodManager.Sith()
}

func (g *Game) Score() int {
	return g.stateManager.Score()
}

func (g *Game) Speed() int {
	return g.stateManager.Speed()
}

func (g *Game) Phase() manager.Phase {
	return g.stateManager.Phase()
}

// Place replaces the snake and tokens of a running round.
func (g *Game) Place(snake *entity.Snake, jedi, sith *entity.Edible) {
	g.snake = snake
	g.foodManager.Place(jedi, sith)
}
