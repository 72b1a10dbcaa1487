package terminal

import "github.com/lguibr/pongclassic/game"

// DefaultHoldFrames bridges the gap between two auto-repeated key bytes.
const DefaultHoldFrames = 8

// Tracker approximates key-down state from a terminal byte stream: a key
// counts as held for HoldFrames frames after its last byte arrived.
type Tracker struct {
	HoldFrames int
	remaining  [len(game.Keys)]int
}

func NewTracker(holdFrames int) *Tracker {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &Tracker{HoldFrames: holdFrames}
}

func (t *Tracker) Press(key game.Key) {
	if int(key) < 0 || int(key) >= len(t.remaining) {
		return
	}
	t.remaining[key] = t.HoldFrames
}

// Step returns the input for the current frame and ages every held key by one
// frame.
func (t *Tracker) Step() game.Input {
	var input game.Input
	for _, key := range game.Keys {
		if t.remaining[key] > 0 {
			input.Press(key)
			t.remaining[key]--
		}
	}
	return input
}
