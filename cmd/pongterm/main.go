//go:build linux

// Command pongterm plays the game in a terminal, rendering frames as coloured
// ASCII and reading keys from raw stdin.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/pongclassic/game"
	"github.com/lguibr/pongclassic/render"
	"github.com/lguibr/pongclassic/terminal"
	"github.com/lguibr/pongclassic/utils"
)

type inputChunk struct {
	keys []game.Key
	quit bool
}

func readInput(chunks chan<- inputChunk) {
	var decoder terminal.Decoder
	buffer := make([]byte, 64)
	for {
		size, err := os.Stdin.Read(buffer)
		if err != nil {
			chunks <- inputChunk{quit: true}
			return
		}
		keys, quit := decoder.Decode(buffer[:size])
		chunks <- inputChunk{keys: keys, quit: quit}
	}
}

func run(cfg utils.Config) error {
	// Win messages are held back until the winning frame has been drawn.
	var announcements bytes.Buffer
	session, err := game.NewSession(cfg, game.SizesFromConfig(cfg), terminal.CRLFWriter{Writer: &announcements})
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	savedTerminalSettings, err := terminal.EnableRawMode(fd)
	if err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	defer terminal.Restore(fd, savedTerminalSettings)

	// Raw mode delivers Ctrl-C as a byte; these only come from outside, and
	// returning lets the terminal settings be restored.
	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interruptSignalChannel)

	chunks := make(chan inputChunk, 16)
	go readInput(chunks)

	canvas := game.NewCanvas(cfg)
	tracker := terminal.NewTracker(terminal.DefaultHoldFrames)

	ticker := time.NewTicker(cfg.TickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-interruptSignalChannel:
			return nil
		case chunk := <-chunks:
			if chunk.quit {
				return nil
			}
			for _, key := range chunk.keys {
				tracker.Press(key)
			}
		case <-ticker.C:
			frame := session.Step(tracker.Step())

			helpers.ClearScreen()
			fmt.Print(render.RenderToASCII(canvas.DrawGameOnRGBGrid(session.State()), cfg.TerminalResolution))

			if frame.Over() {
				os.Stdout.Write(announcements.Bytes())
				fmt.Printf("Game ended after %d frames\r\n", session.Frames())
				return nil
			}
		}
	}
}

func main() {
	if err := run(utils.DefaultConfig()); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
