package utils

import "time"

const (
	WindowTitle  = "Pong"
	WindowWidth  = 640.0
	WindowHeight = 480.0

	TicksPerSecond = 60
	Period         = time.Second / TicksPerSecond

	PaddleSpeed  = 8.0
	BallSpeed    = 5.0
	PaddleSpin   = 4.0
	BallAcc      = 0.05
	PaddleMargin = 16.0

	//INFO Terminal frontend has no textures, entity sizes are fixed here
	TerminalPaddleWidth  = 16.0
	TerminalPaddleHeight = 96.0
	TerminalBallSize     = 16.0
	TerminalResolution   = 64
)

var AssetPaths = Assets{
	Player1: "./resources/player1.png",
	Player2: "./resources/player2.png",
	Ball:    "./resources/ball.png",
}
