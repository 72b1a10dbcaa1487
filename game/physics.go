// File: game/physics.go
package game

import "github.com/lguibr/pongclassic/utils"

// Frame reports what happened during one update.
type Frame struct {
	Hit        Side
	WallBounce bool
	Winners    []Side
}

func (f Frame) Over() bool { return len(f.Winners) > 0 }

// Update advances the game by one frame. The order of the steps is part of
// the game's behaviour: paddles move and are clamped before the ball moves,
// and collisions are resolved before walls and goals are checked.
func (s *State) Update(input Input, cfg utils.Config) Frame {
	s.applyInput(input, cfg.PaddleSpeed)

	s.Player1.ClampToWindow(cfg.WindowHeight)
	s.Player2.ClampToWindow(cfg.WindowHeight)

	s.Ball.Move()

	frame := Frame{Hit: PaddleHit(s.Ball, s.Player1, s.Player2)}
	if paddle, ok := s.Paddle(frame.Hit); ok {
		s.Ball.CollidePaddle(paddle, cfg)
	}

	frame.WallBounce = s.Ball.CollideWalls(cfg.WindowHeight)
	frame.Winners = s.Winners(cfg)

	return frame
}

// Tick is Update on a copy: the given state is left untouched.
func Tick(state State, input Input, cfg utils.Config) (State, Frame) {
	frame := state.Update(input, cfg)
	return state, frame
}

func (s *State) applyInput(input Input, speed float64) {
	if input.Player1Up {
		s.Player1.Position.Y -= speed
	}
	if input.Player1Down {
		s.Player1.Position.Y += speed
	}
	if input.Player2Up {
		s.Player2.Position.Y -= speed
	}
	if input.Player2Down {
		s.Player2.Position.Y += speed
	}
}

// ClampToWindow keeps a paddle inside [0, windowHeight-height].
func (paddle *Entity) ClampToWindow(windowHeight float64) {
	paddle.Position.Y = utils.Clamp(paddle.Position.Y, 0, windowHeight-paddle.Height())
}

// Winners checks both goals: the ball's left edge past the left side scores
// for player 2, its right edge past the right side for player 1. Both checks
// always run and player 2 is listed first when both fire.
func (s State) Winners(cfg utils.Config) []Side {
	var winners []Side
	if s.Ball.Left() < 0 {
		winners = append(winners, Player2)
	}
	if s.Ball.Right() > cfg.WindowWidth {
		winners = append(winners, Player1)
	}
	return winners
}
