package types

// Point is the top-left pixel corner of a grid cell.
type Point struct {
	X, Y int
}

// Rect is an axis aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H int
}

type Color struct {
	R, G, B uint8
}

// Palette used by the game board
var (
	Yellow = Color{R: 255, G: 255, B: 0}
	Black  = Color{R: 0, G: 0, B: 0}
	Red    = Color{R: 255, G: 0, B: 0}
	Blue   = Color{R: 0, G: 0, B: 255}
	Gray   = Color{R: 42, G: 42, B: 42}
)

// Game constants
const (
	WindowWidth    = 1260
	WindowHeight   = 675
	CellSize       = 45
	DefaultSpeed   = 4 // Ticks per second at round start
	StartLength    = 3
	SpriteVariants = 5
	SithSpawnOdds  = 2 // A missing sith appears with probability 1/SithSpawnOdds
	SithJumpOdds   = 5 // A present sith stays put with probability 1/SithJumpOdds
	MinSithLength  = 2 // Shortest snake a sith can leave behind
)

// Config holds the immutable rules and dimensions of a game.
type Config struct {
	WindowWidth    int
	WindowHeight   int
	CellSize       int
	DefaultSpeed   int
	StartLength    int
	SpriteVariants int
	SithSpawnOdds  int
	SithJumpOdds   int
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:    WindowWidth,
		WindowHeight:   WindowHeight,
		CellSize:       CellSize,
		DefaultSpeed:   DefaultSpeed,
		StartLength:    StartLength,
		SpriteVariants: SpriteVariants,
		SithSpawnOdds:  SithSpawnOdds,
		SithJumpOdds:   SithJumpOdds,
	}
}

// Geometry is the grid layout derived once from a Config.
type Geometry struct {
	Width    int // window width in pixels
	Height   int // window height in pixels
	CellSize int
	Cols     int
	Rows     int
}

func NewGeometry(cfg Config) Geometry {
	return Geometry{
		Width:    cfg.WindowWidth,
		Height:   cfg.WindowHeight,
		CellSize: cfg.CellSize,
		Cols:     cfg.WindowWidth / cfg.CellSize,
		Rows:     cfg.WindowHeight / cfg.CellSize,
	}
}

// Contains reports whether p lies inside the window.
func (g Geometry) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellAt returns the pixel corner of the cell at column col and row row.
func (g Geometry) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// CellFrame is the full square of the cell whose corner is p.
func (g Geometry) CellFrame(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: g.CellSize, H: g.CellSize}
}

// CellInner is the cell square minus a one pixel border.
func (g Geometry) CellInner(p Point) Rect {
	return Rect{X: p.X + 1, Y: p.Y + 1, W: g.CellSize - 2, H: g.CellSize - 2}
}

// SpriteSize is the edge of an image drawn inside a cell border.
func (g Geometry) SpriteSize() int {
	return g.CellSize - 2
}
