package game

import "github.com/lguibr/pongclassic/utils"

// PaddleHit returns the paddle the ball overlaps. Player 1 is checked first
// and wins when the ball overlaps both.
func PaddleHit(ball, player1, player2 Entity) Side {
	ballBounds := ball.Bounds()
	if ballBounds.Intersects(player1.Bounds()) {
		return Player1
	}
	if ballBounds.Intersects(player2.Bounds()) {
		return Player2
	}
	return None
}

// CollidePaddle flips the ball horizontally, speeds it up and adds spin
// proportional to how far from the paddle centre it struck.
func (ball *Entity) CollidePaddle(paddle Entity, cfg utils.Config) {
	vx := ball.Velocity.X
	ball.Velocity.X = -(vx + cfg.BallAcc*utils.Sign(vx))

	ball.Velocity.Y += cfg.PaddleSpin * -HitOffset(*ball, paddle, cfg)
}

// HitOffset is the vertical distance between the paddle centre and the ball
// centre, normalised by the paddle height. Positive when the ball is above
// the centre.
func HitOffset(ball, paddle Entity, cfg utils.Config) float64 {
	paddleCenter, ballCenter := paddle.Center(), ball.Center()
	if cfg.SpinUsesWidthCenter {
		paddleCenter, ballCenter = paddle.WidthCenter(), ball.WidthCenter()
	}
	return utils.SubtractVectors(paddleCenter, ballCenter).Y / paddle.Height()
}

func (ball Entity) CollidesTopWall() bool {
	return ball.Top() <= 0
}

func (ball Entity) CollidesBottomWall(windowHeight float64) bool {
	return ball.Bottom() >= windowHeight
}

// CollideWalls reflects the vertical velocity when the ball touches the top
// or bottom of the window. The position is left as is.
func (ball *Entity) CollideWalls(windowHeight float64) bool {
	if ball.CollidesTopWall() || ball.CollidesBottomWall(windowHeight) {
		ball.Velocity.Y = -ball.Velocity.Y
		return true
	}
	return false
}
