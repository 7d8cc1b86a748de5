// Package breakout is the Breakout simulation engine: ball and paddle
// kinematics, wall, paddle and block collisions, and the level and score
// state machine. It performs no I/O. Callers feed it a Direction and a time
// step per tick and observe the returned Event.
package breakout

import "fmt"

// Direction is the paddle command for one tick.
type Direction int

const (
	Left  Direction = -1
	Stop  Direction = 0
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Stop:
		return "stop"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Event is the outcome of a single Board.Update call.
// The integer codes are stable and may be persisted or sent over the wire.
type Event int

const (
	EventLevelClear Event = -1 // all blocks destroyed; board already reset to the next level
	EventGameOver   Event = 0  // ball passed the bottom boundary
	EventContinue   Event = 1  // nothing notable happened
	EventBlockHit   Event = 2  // a block was destroyed
	EventPaddleHit  Event = 3  // ball rebounded off the paddle
)

// Code returns the integer wire code of the event.
func (e Event) Code() int {
	return int(e)
}

// Valid reports whether e is one of the defined events.
func (e Event) Valid() bool {
	switch e {
	case EventLevelClear, EventGameOver, EventContinue, EventBlockHit, EventPaddleHit:
		return true
	default:
		return false
	}
}

func (e Event) String() string {
	switch e {
	case EventLevelClear:
		return "level_clear"
	case EventGameOver:
		return "game_over"
	case EventContinue:
		return "continue"
	case EventBlockHit:
		return "block_hit"
	case EventPaddleHit:
		return "paddle_hit"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}
