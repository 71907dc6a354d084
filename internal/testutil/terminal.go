// Package testutil holds test doubles shared across packages.
package testutil

import (
	"io"

	"github.com/inovacc/quest/internal/terminal"
)

// FakeTerminal is an in-memory terminal.Terminal. Cursor sequences are
// written to Out so tests can assert on the full rendered stream.
type FakeTerminal struct {
	Out io.Writer

	// StartErr, if set, is returned by Start.
	StartErr error
	// CloseErr, if set, is returned by the session's Close.
	CloseErr error

	Starts   int
	Restores int
	Ups      []int
	Clears   int
}

// NewFakeTerminal returns a FakeTerminal writing control sequences to out.
func NewFakeTerminal(out io.Writer) *FakeTerminal {
	return &FakeTerminal{Out: out}
}

// Start records the call and returns a session unless StartErr is set.
func (f *FakeTerminal) Start() (terminal.Session, error) {
	f.Starts++

	if f.StartErr != nil {
		return nil, f.StartErr
	}

	return &fakeSession{term: f, cursor: terminal.NewCursor(f.Out)}, nil
}

type fakeSession struct {
	term   *FakeTerminal
	cursor *terminal.Cursor
	closed bool
}

func (s *fakeSession) Up(n int) error {
	s.term.Ups = append(s.term.Ups, n)
	return s.cursor.Up(n)
}

func (s *fakeSession) ClearRight() error {
	s.term.Clears++
	return s.cursor.ClearRight()
}

func (s *fakeSession) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true
	s.term.Restores++

	return s.term.CloseErr
}
