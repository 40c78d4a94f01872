package interaction

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	kr := newKeyboardReader(bytes.NewReader(nil))

	tests := []struct {
		name     string
		input    []byte
		expected *KeyEvent
	}{
		{
			name:     "regular char",
			input:    []byte{'g'},
			expected: &KeyEvent{Key: 'g', Type: KeyChar},
		},
		{
			name:     "ctrl+c",
			input:    []byte{CtrlC},
			expected: &KeyEvent{Key: CtrlC, Type: KeyChar},
		},
		{
			name:     "escape",
			input:    []byte{27},
			expected: &KeyEvent{Key: 27, Type: KeyEscape},
		},
		{
			name:     "arrow key ignored",
			input:    []byte{27, '[', 'A'},
			expected: nil,
		},
		{
			name:     "empty",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kr.parseInput(tt.input))
		})
	}
}

func TestReaderKeyboardDeliversEvents(t *testing.T) {
	kr := NewReaderKeyboard(bytes.NewReader([]byte("s")))
	defer kr.Close()

	select {
	case event := <-kr.Events():
		assert.Equal(t, KeyEvent{Key: 's', Type: KeyChar}, event)
	case <-time.After(2 * time.Second):
		t.Fatal("no key event")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	kr := NewReaderKeyboard(bytes.NewReader(nil))
	require.NoError(t, kr.Close())
	require.NoError(t, kr.Close())
}
