package game

import (
	"fmt"
	"io"
	"os"

	"github.com/lguibr/pongclassic/utils"
)

// Session is one game from start to the first goal. Frontends feed it one
// Input per frame and stop once a frame reports a winner.
type Session struct {
	cfg     utils.Config
	state   State
	out     io.Writer
	frames  int
	winners []Side
}

// NewSession validates cfg and lays out the initial state. Win messages are
// written to out, stdout when nil.
func NewSession(cfg utils.Config, sizes Sizes, out io.Writer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	return &Session{cfg: cfg, state: NewState(cfg, sizes), out: out}, nil
}

// Step runs one frame. Every winner found is announced on the session
// output; the frame itself always completes.
func (s *Session) Step(input Input) Frame {
	var frame Frame
	s.state, frame = Tick(s.state, input, s.cfg)
	s.frames++

	for _, winner := range frame.Winners {
		fmt.Fprintln(s.out, WinMessage(winner))
	}
	if frame.Over() {
		s.winners = frame.Winners
	}
	return frame
}

func (s *Session) State() State    { return s.state }
func (s *Session) Frames() int     { return s.frames }
func (s *Session) Winners() []Side { return s.winners }
func (s *Session) Over() bool      { return len(s.winners) > 0 }
