package breakout

import "math"

// BlockState is the rendering view of one block.
type BlockState struct {
	X, Y, Size float64
	R, G, B    uint8
}

// Snapshot is a read-only copy of the board state using primitive types only.
type Snapshot struct {
	Width, Height float64

	Level        int
	Score        int
	DisplayScore int

	BallX, BallY    float64
	BallVX, BallVY  float64
	BallRadius      float64
	BallMaxVelocity float64

	PaddleX, PaddleY float64
	PaddleW, PaddleH float64
	PaddleVX         float64

	Blocks []BlockState
}

// Snapshot returns the current state of the board.
func (b *Board) Snapshot() Snapshot {
	blocks := make([]BlockState, len(b.blocks))
	for i, blk := range b.blocks {
		blocks[i] = BlockState{
			X:    blk.Position.X,
			Y:    blk.Position.Y,
			Size: blk.Size,
			R:    blk.Colour.R,
			G:    blk.Colour.G,
			B:    blk.Colour.B,
		}
	}

	return Snapshot{
		Width:        b.bounds.X,
		Height:       b.bounds.Y,
		Level:        b.level,
		Score:        b.score,
		DisplayScore: b.DisplayScore(),

		BallX:           b.ball.Position.X,
		BallY:           b.ball.Position.Y,
		BallVX:          b.ball.Velocity.X,
		BallVY:          b.ball.Velocity.Y,
		BallRadius:      b.ball.Radius,
		BallMaxVelocity: b.ball.MaxVelocity,

		PaddleX:  b.paddle.Position.X,
		PaddleY:  b.paddle.Position.Y,
		PaddleW:  b.paddle.Size.X,
		PaddleH:  b.paddle.Size.Y,
		PaddleVX: b.paddle.Velocity.X,

		Blocks: blocks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	f := func(v float64) { h = h*31 + math.Float64bits(v) }
	n := func(v int) { h = h*31 + uint64(v) } //#nosec G115 -- hash computation

	f(snap.Width)
	f(snap.Height)
	n(snap.Level)
	n(snap.Score)
	f(snap.BallX)
	f(snap.BallY)
	f(snap.BallVX)
	f(snap.BallVY)
	f(snap.BallRadius)
	f(snap.BallMaxVelocity)
	f(snap.PaddleX)
	f(snap.PaddleY)
	f(snap.PaddleW)
	f(snap.PaddleH)
	f(snap.PaddleVX)
	n(len(snap.Blocks))

	for _, blk := range snap.Blocks {
		f(blk.X)
		f(blk.Y)
		f(blk.Size)
		h = h*31 + (uint64(blk.R)<<16 | uint64(blk.G)<<8 | uint64(blk.B))
	}

	return h
}
