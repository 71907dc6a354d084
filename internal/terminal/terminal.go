// Package terminal owns the controlling terminal's input mode while a menu is
// on screen.
//
// A Terminal hands out at most one Session at a time. The session switches
// input to unbuffered, unechoed delivery and restores the captured mode when
// closed. Exactly one platform variant of the mode switch is compiled in.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

var (
	// ErrSessionActive is returned by Start while another session holds the terminal.
	ErrSessionActive = errors.New("terminal session already active")

	// ErrNotTerminal is returned when the input is not attached to a terminal.
	ErrNotTerminal = errors.New("input is not a terminal")
)

// Terminal starts raw-mode sessions.
type Terminal interface {
	Start() (Session, error)
}

// Session is an active raw-mode acquisition. Close restores the prior mode
// and is safe to call more than once; only the first call has an effect.
type Session interface {
	// Up moves the cursor up n display lines.
	Up(n int) error
	// ClearRight clears from the cursor to the end of the screen.
	ClearRight() error
	Close() error
}

// Console is the Terminal backed by a real input file descriptor.
type Console struct {
	in     *os.File
	out    io.Writer
	logger *slog.Logger
	active atomic.Bool
}

// NewConsole returns a Terminal reading mode from in and writing control
// sequences to out. A nil logger means slog.Default at the time of logging.
func NewConsole(in *os.File, out io.Writer, logger *slog.Logger) *Console {
	return &Console{in: in, out: out, logger: logger}
}

func (c *Console) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}

	return slog.Default()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Start captures the current input mode and switches to raw input.
func (c *Console) Start() (Session, error) {
	if !c.active.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}

	if !IsTerminal(c.in) {
		c.active.Store(false)
		return nil, ErrNotTerminal
	}

	restore, err := makeRaw(c.in.Fd())
	if err != nil {
		c.active.Store(false)
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	c.log().Debug("raw mode acquired", "fd", c.in.Fd())

	return &session{
		Cursor: NewCursor(c.out),
		restore: func() error {
			defer c.active.Store(false)

			if err := restore(); err != nil {
				return fmt.Errorf("restore terminal mode: %w", err)
			}

			c.log().Debug("raw mode released", "fd", c.in.Fd())

			return nil
		},
	}, nil
}

type session struct {
	*Cursor

	once    sync.Once
	restore func() error
	err     error
}

func (s *session) Close() error {
	s.once.Do(func() {
		s.err = s.restore()
	})

	return s.err
}

type flusher interface {
	Flush() error
}

// Cursor writes cursor-movement sequences and flushes after each one so they
// take effect before the next blocking read.
type Cursor struct {
	w io.Writer
}

// NewCursor returns a Cursor writing to w.
func NewCursor(w io.Writer) *Cursor {
	return &Cursor{w: w}
}

// Up moves the cursor up n lines. n <= 0 is a no-op.
func (c *Cursor) Up(n int) error {
	if n <= 0 {
		return nil
	}

	return c.emit(ansi.CursorUp(n))
}

// ClearRight erases from the cursor to the end of the screen.
func (c *Cursor) ClearRight() error {
	return c.emit(ansi.EraseScreenBelow)
}

func (c *Cursor) emit(seq string) error {
	if _, err := io.WriteString(c.w, seq); err != nil {
		return err
	}

	return Flush(c.w)
}

// Flush flushes w when it buffers output.
func Flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}

	return nil
}
