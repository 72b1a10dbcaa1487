package terminal

import "github.com/lguibr/pongclassic/game"

const (
	escape = 0x1b
	ctrlC  = 0x03
)

// Decoder turns raw terminal input into game keys. An escape sequence cut off
// at the end of one read is kept and completed by the next one.
type Decoder struct {
	pending []byte
}

// Decode consumes one chunk read from the terminal. quit is set by q, Ctrl-C
// or an Escape key press: an escape byte that is the whole input, or one not
// followed by '[' or 'O'.
func (d *Decoder) Decode(chunk []byte) (keys []game.Key, quit bool) {
	buffer := append(d.pending, chunk...)
	d.pending = nil

	if len(buffer) == 1 && buffer[0] == escape {
		return nil, true
	}

	for i := 0; i < len(buffer); i++ {
		switch buffer[i] {
		case ',', 'w', 'W':
			keys = append(keys, game.KeyPlayer1Up)
		case 'o', 'O', 's', 'S':
			keys = append(keys, game.KeyPlayer1Down)
		case 'q', 'Q', ctrlC:
			quit = true
		case escape:
			key, size, complete := decodeEscape(buffer[i:])
			if !complete {
				d.pending = append([]byte(nil), buffer[i:]...)
				return keys, quit
			}
			if size == 1 {
				quit = true
				continue
			}
			if key >= 0 {
				keys = append(keys, key)
			}
			i += size - 1
		}
	}
	return keys, quit
}

// decodeEscape reads the sequence starting at sequence[0] == escape. It
// returns the arrow key it encodes (-1 for any other sequence) and its length.
// A lone escape has length 1. complete is false when the sequence needs more
// bytes.
func decodeEscape(sequence []byte) (key game.Key, size int, complete bool) {
	if len(sequence) < 2 {
		return -1, 0, false
	}

	switch sequence[1] {
	case 'O':
		// SS3: arrows in application cursor mode, one final byte.
		if len(sequence) < 3 {
			return -1, 0, false
		}
		return arrowKey(sequence[2]), 3, true
	case '[':
		// CSI: parameter and intermediate bytes, then a final byte in 0x40-0x7e.
		for end := 2; end < len(sequence); end++ {
			switch {
			case sequence[end] >= 0x40 && sequence[end] <= 0x7e:
				return arrowKey(sequence[end]), end + 1, true
			case sequence[end] < 0x20:
				return -1, end, true
			}
		}
		return -1, 0, false
	}
	return -1, 1, true
}

func arrowKey(final byte) game.Key {
	switch final {
	case 'A':
		return game.KeyPlayer2Up
	case 'B':
		return game.KeyPlayer2Down
	}
	return -1
}
