package terminal

import (
	"testing"

	"github.com/lguibr/pongclassic/game"
	"github.com/stretchr/testify/assert"
)

func TestDecoder_Decode(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		keys  []game.Key
		quit  bool
	}{
		{"comma", ",", []game.Key{game.KeyPlayer1Up}, false},
		{"o", "o", []game.Key{game.KeyPlayer1Down}, false},
		{"wasd", "wS", []game.Key{game.KeyPlayer1Up, game.KeyPlayer1Down}, false},
		{"arrow up", "\x1b[A", []game.Key{game.KeyPlayer2Up}, false},
		{"arrow down", "\x1b[B", []game.Key{game.KeyPlayer2Down}, false},
		{"application mode arrow up", "\x1bOA", []game.Key{game.KeyPlayer2Up}, false},
		{"application mode arrow down", "\x1bOB", []game.Key{game.KeyPlayer2Down}, false},
		{"modified arrow", "\x1b[1;5A", []game.Key{game.KeyPlayer2Up}, false},
		{"mixed", ",\x1b[B,", []game.Key{game.KeyPlayer1Up, game.KeyPlayer2Down, game.KeyPlayer1Up}, false},
		{"unknown arrow", "\x1b[C", nil, false},
		{"lone escape", "\x1b", nil, true},
		{"escape then key", "\x1bw", []game.Key{game.KeyPlayer1Up}, true},
		{"q", "q", nil, true},
		{"ctrl c", "\x03", nil, true},
		{"other bytes", "xyz", nil, false},
		{"empty", "", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var decoder Decoder
			keys, quit := decoder.Decode([]byte(tc.input))
			assert.Equal(t, tc.keys, keys)
			assert.Equal(t, tc.quit, quit)
			assert.Empty(t, decoder.pending)
		})
	}
}

func TestDecoder_SplitSequence(t *testing.T) {
	testCases := []struct {
		name          string
		first, second string
		firstKeys     []game.Key
		secondKeys    []game.Key
	}{
		{"after bracket", ",\x1b[", "A", []game.Key{game.KeyPlayer1Up}, []game.Key{game.KeyPlayer2Up}},
		{"after escape", "w\x1b", "[B", []game.Key{game.KeyPlayer1Up}, []game.Key{game.KeyPlayer2Down}},
		{"application mode", "s\x1bO", "A,", []game.Key{game.KeyPlayer1Down}, []game.Key{game.KeyPlayer2Up, game.KeyPlayer1Up}},
		{"inside parameters", "\x1b[1;", "5B", nil, []game.Key{game.KeyPlayer2Down}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var decoder Decoder

			keys, quit := decoder.Decode([]byte(tc.first))
			assert.Equal(t, tc.firstKeys, keys)
			assert.False(t, quit, "an unfinished sequence is not a quit")

			keys, quit = decoder.Decode([]byte(tc.second))
			assert.Equal(t, tc.secondKeys, keys)
			assert.False(t, quit)
			assert.Empty(t, decoder.pending)
		})
	}
}

func TestDecoder_PendingEscapeThenEscape(t *testing.T) {
	var decoder Decoder

	_, quit := decoder.Decode([]byte("w\x1b"))
	assert.False(t, quit)

	_, quit = decoder.Decode([]byte("\x1b"))
	assert.True(t, quit)
}
