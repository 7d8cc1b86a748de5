package breakout

import "testing"

func TestEventCodes(t *testing.T) {
	tests := []struct {
		ev   Event
		code int
		name string
	}{
		{EventGameOver, 0, "game_over"},
		{EventContinue, 1, "continue"},
		{EventBlockHit, 2, "block_hit"},
		{EventPaddleHit, 3, "paddle_hit"},
		{EventLevelClear, -1, "level_clear"},
	}

	for _, tc := range tests {
		if tc.ev.Code() != tc.code {
			t.Errorf("%s.Code() = %d, expected %d", tc.name, tc.ev.Code(), tc.code)
		}
		if tc.ev.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.ev.String(), tc.name)
		}
		if !tc.ev.Valid() {
			t.Errorf("%s.Valid() = false, expected true", tc.name)
		}
	}

	for _, bad := range []Event{-2, 4, 99} {
		if bad.Valid() {
			t.Errorf("Event(%d).Valid() = true, expected false", bad)
		}
	}
}
