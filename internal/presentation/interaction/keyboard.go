package interaction

import (
	"io"
	"os"
	"sync"
)

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
)

// CtrlC is the byte a raw-mode terminal delivers for Ctrl+C
const CtrlC = 3

// KeyboardReader turns raw terminal input into key events
type KeyboardReader struct {
	in        io.Reader
	raw       rawState
	input     chan KeyEvent
	stop      chan struct{}
	closeOnce sync.Once
}

// NewKeyboardReader puts stdin into raw mode and starts reading keys
func NewKeyboardReader() (*KeyboardReader, error) {
	kr := newKeyboardReader(os.Stdin)
	if err := kr.raw.enable(int(os.Stdin.Fd())); err != nil {
		return nil, err
	}
	go kr.readInput()
	return kr, nil
}

// NewReaderKeyboard reads key events from r without touching the terminal
func NewReaderKeyboard(r io.Reader) *KeyboardReader {
	kr := newKeyboardReader(r)
	go kr.readInput()
	return kr
}

func newKeyboardReader(r io.Reader) *KeyboardReader {
	return &KeyboardReader{
		in:    r,
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}
}

func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 3)

	for {
		select {
		case <-kr.stop:
			return
		default:
		}

		n, err := kr.in.Read(buf)
		if err == io.EOF {
			return
		}
		if err != nil || n == 0 {
			continue
		}

		event := kr.parseInput(buf[:n])
		if event == nil {
			continue
		}
		select {
		case kr.input <- *event:
		case <-kr.stop:
			return
		}
	}
}

// parseInput parses raw keyboard input
func (kr *KeyboardReader) parseInput(buf []byte) *KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	if buf[0] == CtrlC {
		return &KeyEvent{Key: CtrlC, Type: KeyChar}
	}

	// arrow keys and other escape sequences are ignored
	if buf[0] == 27 {
		if len(buf) == 1 {
			return &KeyEvent{Key: 27, Type: KeyEscape}
		}
		return nil
	}

	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the reader and restores the terminal
func (kr *KeyboardReader) Close() error {
	var err error
	kr.closeOnce.Do(func() {
		close(kr.stop)
		err = kr.raw.restore()
	})
	return err
}
