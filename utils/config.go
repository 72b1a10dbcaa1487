// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

// Assets holds the image paths of the three entities.
type Assets struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Ball    string `json:"ball"`
}

// EntitySizes are the dimensions used when no texture dictates them.
type EntitySizes struct {
	PaddleWidth  float64 `json:"paddleWidth"`
	PaddleHeight float64 `json:"paddleHeight"`
	BallSize     float64 `json:"ballSize"`
}

// Config holds all tunable game parameters. It is passed by value into the
// update so a frame can never change it.
type Config struct {
	// Window
	WindowTitle  string  `json:"windowTitle"`
	WindowWidth  float64 `json:"windowWidth"`
	WindowHeight float64 `json:"windowHeight"`
	QuitOnEscape bool    `json:"quitOnEscape"`

	// Timing
	TicksPerSecond int           `json:"ticksPerSecond"`
	TickPeriod     time.Duration `json:"tickPeriod"` // Used by frontends that drive their own loop

	// Paddle
	PaddleSpeed  float64 `json:"paddleSpeed"`  // Displacement per frame while a key is held
	PaddleMargin float64 `json:"paddleMargin"` // Gap between a paddle and its side of the window

	// Ball
	BallSpeed  float64 `json:"ballSpeed"`  // Initial horizontal speed, launched towards player 1
	BallAcc    float64 `json:"ballAcc"`    // Speed added to vx on every paddle hit
	PaddleSpin float64 `json:"paddleSpin"` // Vertical velocity imparted per unit of hit offset

	// SpinUsesWidthCenter computes the vertical centre of paddle and ball from
	// their width, as the first release of the game did.
	SpinUsesWidthCenter bool `json:"spinUsesWidthCenter"`

	// Rendering
	BackgroundColor    RGBPixel    `json:"backgroundColor"`
	AssetPaths         Assets      `json:"assetPaths"`
	TerminalSizes      EntitySizes `json:"terminalSizes"`
	TerminalResolution int         `json:"terminalResolution"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		WindowTitle:  WindowTitle,
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		QuitOnEscape: true,

		TicksPerSecond: TicksPerSecond,
		TickPeriod:     Period,

		PaddleSpeed:  PaddleSpeed,
		PaddleMargin: PaddleMargin,

		BallSpeed:  BallSpeed,
		BallAcc:    BallAcc,
		PaddleSpin: PaddleSpin,

		SpinUsesWidthCenter: true,

		BackgroundColor: NewRGBFromFloats(0.392, 0.584, 0.929), // cornflower blue
		AssetPaths:      AssetPaths,

		TerminalSizes: EntitySizes{
			PaddleWidth:  TerminalPaddleWidth,
			PaddleHeight: TerminalPaddleHeight,
			BallSize:     TerminalBallSize,
		},
		TerminalResolution: TerminalResolution,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the game loop cannot run with.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticksPerSecond %d", ErrInvalidConfig, c.TicksPerSecond)
	}
	if c.TickPeriod <= 0 {
		return fmt.Errorf("%w: tickPeriod %s", ErrInvalidConfig, c.TickPeriod)
	}
	if c.PaddleSpeed < 0 || c.BallSpeed < 0 || c.BallAcc < 0 {
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	}
	return nil
}
