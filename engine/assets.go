package engine

import (
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lguibr/pongclassic/game"
	"github.com/lguibr/pongclassic/utils"
)

// Texture is a loaded image together with its pixel size.
type Texture struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

type Textures struct {
	Player1 Texture
	Player2 Texture
	Ball    Texture
}

func LoadTexture(path string) (Texture, error) {
	fmt.Printf("Loading texture %s\n", path)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return Texture{}, fmt.Errorf("load texture %s: %w", path, err)
	}
	bounds := img.Bounds()
	return Texture{Image: img, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// LoadTextures loads the three entity textures. It stops at the first failure.
func LoadTextures(paths utils.Assets) (Textures, error) {
	var textures Textures
	var err error
	if textures.Player1, err = LoadTexture(paths.Player1); err != nil {
		return Textures{}, err
	}
	if textures.Player2, err = LoadTexture(paths.Player2); err != nil {
		return Textures{}, err
	}
	if textures.Ball, err = LoadTexture(paths.Ball); err != nil {
		return Textures{}, err
	}
	return textures, nil
}

// Sizes reports the entity sizes dictated by the textures.
func (t Textures) Sizes() game.Sizes {
	return game.Sizes{
		Player1Width:  float64(t.Player1.Width),
		Player1Height: float64(t.Player1.Height),
		Player2Width:  float64(t.Player2.Width),
		Player2Height: float64(t.Player2.Height),
		BallWidth:     float64(t.Ball.Width),
		BallHeight:    float64(t.Ball.Height),
	}
}
