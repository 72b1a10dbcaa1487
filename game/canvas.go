package game

import (
	"fmt"
	"math"

	"github.com/lguibr/pongclassic/utils"
)

// Canvas rasterises a State into an RGB grid for frontends that cannot draw
// textures.
type Canvas struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background utils.RGBPixel `json:"background"`
}

var (
	player1Color = utils.RGBPixel{R: 255, G: 255, B: 255}
	player2Color = utils.RGBPixel{R: 255, G: 255, B: 255}
	ballColor    = utils.RGBPixel{R: 255, G: 64, B: 64}
)

func NewCanvas(cfg utils.Config) *Canvas {
	width, height := int(cfg.WindowWidth), int(cfg.WindowHeight)
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas size must be positive, got %dx%d", width, height))
	}
	return &Canvas{Width: width, Height: height, Background: cfg.BackgroundColor}
}

// DrawGameOnRGBGrid returns a row-major grid (grid[y][x]) with the background,
// both paddles and the ball painted in draw order.
func (canvas *Canvas) DrawGameOnRGBGrid(state State) [][]utils.RGBPixel {
	grid := make([][]utils.RGBPixel, canvas.Height)
	for y := range grid {
		grid[y] = make([]utils.RGBPixel, canvas.Width)
		for x := range grid[y] {
			grid[y][x] = canvas.Background
		}
	}

	canvas.fill(grid, state.Player1.Bounds(), player1Color)
	canvas.fill(grid, state.Player2.Bounds(), player2Color)
	canvas.fill(grid, state.Ball.Bounds(), ballColor)

	return grid
}

// fill paints the part of bounds that lies inside the canvas.
func (canvas *Canvas) fill(grid [][]utils.RGBPixel, bounds utils.Rectangle, color utils.RGBPixel) {
	startX := int(math.Max(math.Floor(bounds.Left()), 0))
	endX := int(math.Min(math.Ceil(bounds.Right()), float64(canvas.Width)))
	startY := int(math.Max(math.Floor(bounds.Top()), 0))
	endY := int(math.Min(math.Ceil(bounds.Bottom()), float64(canvas.Height)))

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			grid[y][x] = color
		}
	}
}
