// File: game/game.go
package game

import (
	"fmt"

	"github.com/lguibr/pongclassic/utils"
)

// Sizes are the dimensions of the three entities, usually read from their
// textures.
type Sizes struct {
	Player1Width, Player1Height float64
	Player2Width, Player2Height float64
	BallWidth, BallHeight       float64
}

// SizesFromConfig returns the fixed entity sizes used by the terminal frontend.
func SizesFromConfig(cfg utils.Config) Sizes {
	s := cfg.TerminalSizes
	return Sizes{
		Player1Width:  s.PaddleWidth,
		Player1Height: s.PaddleHeight,
		Player2Width:  s.PaddleWidth,
		Player2Height: s.PaddleHeight,
		BallWidth:     s.BallSize,
		BallHeight:    s.BallSize,
	}
}

// State owns the two paddles and the ball. It is mutated only by the frame
// loop.
type State struct {
	Player1 Entity `json:"player1"`
	Player2 Entity `json:"player2"`
	Ball    Entity `json:"ball"`
}

// NewState places both paddles vertically centred against their sides and the
// ball in the middle of the window, launched towards player 1.
func NewState(cfg utils.Config, sizes Sizes) State {
	player1Position := utils.NewVector(
		cfg.PaddleMargin,
		(cfg.WindowHeight-sizes.Player1Height)/2,
	)

	// Player 2 is offset by player 1's width; both paddles share an asset size
	// in practice.
	player2Position := utils.NewVector(
		cfg.WindowWidth-sizes.Player1Width-cfg.PaddleMargin,
		(cfg.WindowHeight-sizes.Player2Height)/2,
	)

	ballPosition := utils.NewVector(
		cfg.WindowWidth/2-sizes.BallWidth/2,
		cfg.WindowHeight/2-sizes.BallHeight/2,
	)
	ballVelocity := utils.NewVector(-cfg.BallSpeed, 0)

	return State{
		Player1: NewEntity(sizes.Player1Width, sizes.Player1Height, player1Position),
		Player2: NewEntity(sizes.Player2Width, sizes.Player2Height, player2Position),
		Ball:    NewEntityWithVelocity(sizes.BallWidth, sizes.BallHeight, ballPosition, ballVelocity),
	}
}

func (s State) Paddle(side Side) (Entity, bool) {
	switch side {
	case Player1:
		return s.Player1, true
	case Player2:
		return s.Player2, true
	}
	return Entity{}, false
}

func (s State) String() string {
	return fmt.Sprintf("player1=(%.2f,%.2f) player2=(%.2f,%.2f) ball=(%.2f,%.2f) v=(%.2f,%.2f)",
		s.Player1.Position.X, s.Player1.Position.Y,
		s.Player2.Position.X, s.Player2.Position.Y,
		s.Ball.Position.X, s.Ball.Position.Y,
		s.Ball.Velocity.X, s.Ball.Velocity.Y,
	)
}
