//go:build linux

package terminal

import "golang.org/x/sys/unix"

// EnableRawMode switches the terminal to unbuffered, non-echoing input and
// returns the previous settings for Restore.
func EnableRawMode(fd int) (*unix.Termios, error) {
	current, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}
	saved := *current

	raw := makeRaw(*current)
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, err
	}
	return &saved, nil
}

// makeRaw clears input translation, echo, line editing and signal keys.
// Output processing is switched off entirely; line feeds are expanded by
// CRLFWriter and the renderer ends its rows with "\r\n".
func makeRaw(settings unix.Termios) unix.Termios {
	settings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	settings.Oflag &^= unix.OPOST
	settings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	settings.Cflag &^= unix.CSIZE | unix.PARENB
	settings.Cflag |= unix.CS8
	return settings
}

func Restore(fd int, saved *unix.Termios) error {
	if saved == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, unix.TCSETS, saved)
}
