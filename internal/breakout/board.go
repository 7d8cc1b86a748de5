package breakout

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/KilakOriginal/breakout/internal/core"
)

// Config describes a board at construction time.
type Config struct {
	Width   float64 // requested playfield width in pixels
	Height  float64 // requested playfield height; may be enlarged to fit the grid
	Columns int
	Rows    int
	Palette []core.RGB // one colour per row, top row first
	Level   int        // starting level; 0 means 1
	Score   int        // starting raw score
	Seed    uint64     // seeds the serve direction
	Tuning  *Tuning    // nil means DefaultTuning
}

// Board owns the ball, paddle and blocks of one game and advances them.
// A Board is not safe for concurrent use.
type Board struct {
	requested core.Vec2 // width/height as requested
	bounds    core.Vec2 // width/height after grid expansion
	columns   int
	rows      int
	palette   []core.RGB
	tuning    Tuning
	rng       *rand.Rand

	blockSize float64
	blockArea float64 // y limit of the block region

	ball   Ball
	paddle Paddle
	blocks []Block

	level int
	score int
}

// NewBoard validates cfg and builds a board with a full block grid.
func NewBoard(cfg Config) (*Board, error) {
	if !(cfg.Width > 0) || !(cfg.Height > 0) || math.IsInf(cfg.Width, 0) || math.IsInf(cfg.Height, 0) {
		return nil, fmt.Errorf("breakout: %vx%v: %w", cfg.Width, cfg.Height, ErrInvalidBounds)
	}
	if cfg.Columns < 1 || cfg.Rows < 1 {
		return nil, fmt.Errorf("breakout: %dx%d grid: %w", cfg.Columns, cfg.Rows, ErrInvalidGrid)
	}
	if len(cfg.Palette) < cfg.Rows {
		return nil, fmt.Errorf("breakout: %d colours for %d rows: %w", len(cfg.Palette), cfg.Rows, ErrPaletteTooShort)
	}
	level := cfg.Level
	if level == 0 {
		level = 1
	}
	if level < 1 {
		return nil, fmt.Errorf("breakout: level %d: %w", cfg.Level, ErrInvalidLevel)
	}
	if cfg.Score < 0 {
		return nil, fmt.Errorf("breakout: score %d: %w", cfg.Score, ErrInvalidScore)
	}
	tuning := DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	b := &Board{
		requested: core.Vec2{X: cfg.Width, Y: cfg.Height},
		columns:   cfg.Columns,
		rows:      cfg.Rows,
		palette:   slices.Clone(cfg.Palette[:cfg.Rows]),
		tuning:    tuning,
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	b.rebuild(level, cfg.Score)
	return b, nil
}

// rebuild lays out a fresh grid, ball and paddle from the requested bounds.
func (b *Board) rebuild(level, score int) {
	w, h := b.requested.X, b.requested.Y
	bs := w / float64(b.columns)

	b.blockSize = bs
	b.bounds = core.Vec2{
		X: w,
		Y: math.Max(h, float64(b.rows-TopSpace)*bs/BlockAreaRatio),
	}
	b.blockArea = float64(b.rows+TopSpace)*bs + bs

	b.blocks = make([]Block, 0, b.columns*b.rows)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			b.blocks = append(b.blocks, Block{
				Position: core.Vec2{X: float64(col) * bs, Y: float64(row+TopSpace) * bs},
				Size:     bs,
				Colour:   b.palette[row],
			})
		}
	}

	lateral := b.tuning.BallLateralSpeed
	if b.rng.IntN(2) == 0 {
		lateral = -lateral
	}
	b.ball = Ball{
		Position:    core.Vec2{X: w/2 - bs/2, Y: h*0.9 + bs/2},
		Radius:      bs / 3,
		Velocity:    core.Vec2{X: lateral, Y: -b.tuning.BallSpeed},
		MaxVelocity: b.tuning.BallMaxVelocity,
	}

	size := core.Vec2{X: bs * 3, Y: bs / 2}
	b.paddle = NewPaddle(core.Vec2{X: w/2 - size.X/2, Y: h * 0.95}, size, w, b.tuning)

	b.level = level
	b.score = score
}

// Update advances the simulation by dt and reports what happened.
// speedMultiplier scales the paddle's top speed; values outside (0, 1] mean 1.
func (b *Board) Update(dir Direction, dt, speedMultiplier float64) Event {
	if !(speedMultiplier > 0 && speedMultiplier <= 1) {
		speedMultiplier = 1
	}

	b.ball.Update(dt)
	b.paddle.Update(dir, dt, speedMultiplier)

	ball := &b.ball
	r := ball.Radius

	if ball.Bottom() >= b.bounds.Y {
		return EventGameOver
	}

	switch {
	case ball.Position.X-r <= 0:
		ball.BounceX()
		ball.Position.X = r
	case ball.Position.X+r >= b.bounds.X:
		ball.BounceX()
		ball.Position.X = b.bounds.X - r
	}

	if ball.Top() <= 0 {
		ball.BounceY()
		ball.Position.Y = r
	}

	p := b.paddle
	if ball.Bottom() >= p.Position.Y &&
		ball.Position.X >= p.Position.X && ball.Position.X <= p.Position.X+p.Size.X {
		u := (ball.Position.X - p.Position.X) / p.Size.X
		angle := (u - 0.5) * 2
		s := ball.Speed()
		ball.Velocity = core.Vec2{
			X: s * angle * 1.5,
			Y: -s * (1 - math.Abs(angle)*0.5),
		}
		return EventPaddleHit
	}

	if ball.Top() <= b.blockArea {
		box := ball.Bounds()
		if i := slices.IndexFunc(b.blocks, func(blk Block) bool { return box.Intersects(blk.Bounds()) }); i >= 0 {
			b.blocks = slices.Delete(b.blocks, i, i+1)
			ball.BounceY()
			b.score++
			return EventBlockHit
		}
	}

	if len(b.blocks) == 0 {
		b.score += 10
		b.rebuild(b.level+1, b.score)
		return EventLevelClear
	}

	return EventContinue
}

// Reset rebuilds the ball, paddle and block grid. With levelUp the level
// advances by one, otherwise it returns to 1. Negative scores are stored as 0.
func (b *Board) Reset(levelUp bool, score int) {
	level := 1
	if levelUp {
		level = b.level + 1
	}
	b.rebuild(level, max(score, 0))
}

// ScaleBallMaxVelocity multiplies the ball's speed cap by f (f > 0).
func (b *Board) ScaleBallMaxVelocity(f float64) {
	if f > 0 && !math.IsInf(f, 0) {
		b.ball.MaxVelocity *= f
	}
}

// DisplayScore returns the score shown to the player: score*15 + level^3.
func (b *Board) DisplayScore() int {
	return b.score*15 + b.level*b.level*b.level
}

// Ball returns a copy of the ball.
func (b *Board) Ball() Ball { return b.ball }

// Paddle returns a copy of the paddle.
func (b *Board) Paddle() Paddle { return b.paddle }

// Blocks returns a copy of the remaining blocks in grid order.
func (b *Board) Blocks() []Block { return slices.Clone(b.blocks) }

// BlockCount returns the number of remaining blocks.
func (b *Board) BlockCount() int { return len(b.blocks) }

// Bounds returns the playfield size, including any grid expansion.
func (b *Board) Bounds() core.Vec2 { return b.bounds }

// RequestedBounds returns the size the board was constructed with.
func (b *Board) RequestedBounds() core.Vec2 { return b.requested }

// Grid returns the number of block columns and rows.
func (b *Board) Grid() (columns, rows int) { return b.columns, b.rows }

// BlockSize returns the edge length of one block.
func (b *Board) BlockSize() float64 { return b.blockSize }

// BlockArea returns the y limit below which block collisions are not tested.
func (b *Board) BlockArea() float64 { return b.blockArea }

// Level returns the current level, starting at 1.
func (b *Board) Level() int { return b.level }

// Score returns the raw score: one per block plus ten per cleared level.
func (b *Board) Score() int { return b.score }

// Tuning returns the physics constants the board was built with.
func (b *Board) Tuning() Tuning { return b.tuning }
