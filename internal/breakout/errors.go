package breakout

import "errors"

// Configuration errors returned by NewBoard.
var (
	ErrInvalidBounds   = errors.New("bounds must be positive and finite")
	ErrInvalidGrid     = errors.New("grid must have at least one column and one row")
	ErrPaletteTooShort = errors.New("palette needs one colour per row")
	ErrInvalidLevel    = errors.New("level must be at least 1")
	ErrInvalidScore    = errors.New("score must not be negative")
	ErrInvalidTuning   = errors.New("tuning values must be positive and finite")
)
