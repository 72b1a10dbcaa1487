package game

// Key is one of the four actions a player can hold down.
type Key int

const (
	KeyPlayer1Up Key = iota
	KeyPlayer1Down
	KeyPlayer2Up
	KeyPlayer2Down
)

var Keys = [...]Key{KeyPlayer1Up, KeyPlayer1Down, KeyPlayer2Up, KeyPlayer2Down}

func (k Key) String() string {
	switch k {
	case KeyPlayer1Up:
		return "player1-up"
	case KeyPlayer1Down:
		return "player1-down"
	case KeyPlayer2Up:
		return "player2-up"
	case KeyPlayer2Down:
		return "player2-down"
	}
	return "unknown"
}

// Input is the set of keys held during one frame.
type Input struct {
	Player1Up   bool
	Player1Down bool
	Player2Up   bool
	Player2Down bool
}

// NewInput builds an Input from a key-down query.
func NewInput(isDown func(Key) bool) Input {
	return Input{
		Player1Up:   isDown(KeyPlayer1Up),
		Player1Down: isDown(KeyPlayer1Down),
		Player2Up:   isDown(KeyPlayer2Up),
		Player2Down: isDown(KeyPlayer2Down),
	}
}

func (i *Input) Press(key Key) {
	switch key {
	case KeyPlayer1Up:
		i.Player1Up = true
	case KeyPlayer1Down:
		i.Player1Down = true
	case KeyPlayer2Up:
		i.Player2Up = true
	case KeyPlayer2Down:
		i.Player2Down = true
	}
}
