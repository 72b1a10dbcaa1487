package main

import (
	"fmt"
	"os"

	"github.com/lguibr/pongclassic/engine"
	"github.com/lguibr/pongclassic/utils"
)

func run(cfg utils.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	textures, err := engine.LoadTextures(cfg.AssetPaths)
	if err != nil {
		return err
	}

	pong, err := engine.New(cfg, textures, engine.DefaultKeyboard(), os.Stdout)
	if err != nil {
		return err
	}
	return pong.Run()
}

func main() {
	if err := run(utils.DefaultConfig()); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
