// File: engine/engine.go
package engine

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lguibr/pongclassic/game"
	"github.com/lguibr/pongclassic/utils"
)

// Engine runs a game session inside an ebiten window.
type Engine struct {
	cfg      utils.Config
	session  *game.Session
	textures Textures
	keyboard Keyboard
	bindings KeyBindings
}

var _ ebiten.Game = (*Engine)(nil)

// New builds the session from the window size and the texture sizes.
func New(cfg utils.Config, textures Textures, keyboard Keyboard, out io.Writer) (*Engine, error) {
	session, err := game.NewSession(cfg, textures.Sizes(), out)
	if err != nil {
		return nil, err
	}
	if keyboard == nil {
		keyboard = DefaultKeyboard()
	}
	return &Engine{
		cfg:      cfg,
		session:  session,
		textures: textures,
		keyboard: keyboard,
		bindings: DefaultKeyBindings(),
	}, nil
}

func (e *Engine) Session() *game.Session { return e.session }

// Update runs one frame. It returns ebiten.Termination once the player quits
// or somebody wins; the frame that produced the winner is still completed.
func (e *Engine) Update() error {
	if e.cfg.QuitOnEscape && e.keyboard.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	frame := e.session.Step(PollInput(e.keyboard, e.bindings))
	if frame.Over() {
		return ebiten.Termination
	}
	return nil
}

// screen is the part of *ebiten.Image the draw dispatch uses.
type screen interface {
	Fill(clr color.Color)
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

func (e *Engine) Draw(target *ebiten.Image) {
	e.draw(target)
}

func (e *Engine) draw(target screen) {
	state := e.session.State()
	target.Fill(e.cfg.BackgroundColor.RGBA())

	drawTexture(target, e.textures.Player1, state.Player1.Position)
	drawTexture(target, e.textures.Player2, state.Player2.Position)
	drawTexture(target, e.textures.Ball, state.Ball.Position)
}

func drawTexture(target screen, texture Texture, position utils.Vector) {
	options := &ebiten.DrawImageOptions{}
	options.GeoM.Translate(position.X, position.Y)
	target.DrawImage(texture.Image, options)
}

// Layout keeps the logical screen at the configured window size.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(e.cfg.WindowWidth), int(e.cfg.WindowHeight)
}

// Run opens the window and blocks until the game ends. Quitting through
// Escape or a win returns nil.
func (e *Engine) Run() error {
	ebiten.SetWindowTitle(e.cfg.WindowTitle)
	ebiten.SetWindowSize(int(e.cfg.WindowWidth), int(e.cfg.WindowHeight))
	ebiten.SetTPS(e.cfg.TicksPerSecond)

	fmt.Println("Game started:")
	fmt.Println(e.session.State())

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	fmt.Printf("Game ended after %d frames\n", e.session.Frames())
	return nil
}
