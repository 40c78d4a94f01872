//go:build !linux && !darwin

package interaction

import "golang.org/x/term"

type rawState struct {
	fd       int
	oldState *term.State
}

func (r *rawState) enable(fd int) error {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	r.fd = fd
	r.oldState = state
	return nil
}

func (r *rawState) restore() error {
	if r.oldState == nil {
		return nil
	}
	return term.Restore(r.fd, r.oldState)
}
