// Package keys decodes raw terminal input into menu navigation events.
//
// Arrow keys arrive as multi-byte escape sequences (ESC [ A, ESC [ B). Decode
// consumes exactly the bytes of one sequence per call, recognized or not, so
// trailing bytes of an unsupported sequence never leak into the next call.
package keys

import (
	"errors"
	"io"
)

// Event is a decoded key press.
type Event int

const (
	Ignore Event = iota
	MoveUp
	MoveDown
	Confirm
	Abort
)

const (
	esc = 0x1B
	csi = '['
)

func (e Event) String() string {
	switch e {
	case Ignore:
		return "ignore"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case Confirm:
		return "confirm"
	case Abort:
		return "abort"
	}

	return "unknown"
}

// Terminal reports whether the event ends a menu interaction.
func (e Event) Terminal() bool {
	return e == Confirm || e == Abort
}

// Decode blocks until one event can be classified. End of input yields Abort
// with a nil error; any other read failure yields Abort and the error.
func Decode(r io.ByteReader) (Event, error) {
	b, ok, err := next(r)
	if err != nil || !ok {
		return Abort, err
	}

	switch b {
	case esc:
		return decodeEscape(r)
	case '\r', '\n':
		return Confirm, nil
	case 'k':
		return MoveUp, nil
	case 'j':
		return MoveDown, nil
	}

	return Ignore, nil
}

func decodeEscape(r io.ByteReader) (Event, error) {
	b, ok, err := next(r)
	if err != nil || !ok {
		return Abort, err
	}

	if b != csi {
		return Ignore, nil
	}

	b, ok, err = next(r)
	if err != nil || !ok {
		return Abort, err
	}

	switch b {
	case 'A':
		return MoveUp, nil
	case 'B':
		return MoveDown, nil
	}

	return Ignore, nil
}

// next reads one byte. ok is false at end of input.
func next(r io.ByteReader) (byte, bool, error) {
	b, err := r.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	return b, true, nil
}
