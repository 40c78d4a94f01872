//go:build linux || darwin

package interaction

import "golang.org/x/sys/unix"

type rawState struct {
	fd       int
	oldState *unix.Termios
}

// enable switches the terminal to raw mode. ISIG stays on so an external
// SIGINT still reaches the process.
func (r *rawState) enable(fd int) error {
	oldState, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	r.fd = fd
	r.oldState = oldState

	newState := *oldState
	newState.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	newState.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	newState.Cflag |= unix.CS8
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, ioctlSetTermios, &newState)
}

func (r *rawState) restore() error {
	if r.oldState == nil {
		return nil
	}
	return unix.IoctlSetTermios(r.fd, ioctlSetTermios, r.oldState)
}
