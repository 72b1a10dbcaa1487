package game

import "fmt"

// Side identifies one of the two players. None is used when no paddle was
// hit and nobody won.
type Side int

const (
	None Side = iota
	Player1
	Player2
)

func (s Side) String() string {
	switch s {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "None"
}

// WinMessage is the line printed when side wins the game.
func WinMessage(side Side) string {
	return fmt.Sprintf("%s wins!", side)
}
