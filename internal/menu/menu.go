// Package menu runs the in-place single-select menu loop.
//
// Each iteration renders every item with its marker, decodes one key event,
// and either terminates or moves the cursor back over the rendered block and
// clears it before drawing again. The block must not scroll the viewport and
// nothing else may write to the output while the menu is up.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/inovacc/quest/internal/keys"
	"github.com/inovacc/quest/internal/terminal"
)

// ErrNoItems is returned when Run is called with an empty item list.
var ErrNoItems = errors.New("menu requires at least one item")

// Markers prefix each rendered row.
type Markers struct {
	On  string
	Off string
}

// Outcome is the terminal state of one menu run. Confirmed is false when the
// input ended before a choice was made; Index then holds the last selection.
type Outcome struct {
	Index     int
	Confirmed bool
}

// Menu holds the streams a menu run draws on.
type Menu struct {
	term   terminal.Terminal
	in     io.ByteReader
	out    io.Writer
	logger *slog.Logger
}

// New returns a Menu reading key presses from in and rendering to out. A nil
// logger means slog.Default.
func New(t terminal.Terminal, in io.ByteReader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{term: t, in: in, out: out, logger: logger}
}

func (m *Menu) log() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}

	return slog.Default()
}

// Run shows items until the user confirms a row or input ends. The terminal
// session is released on every return path.
func (m *Menu) Run(markers Markers, items []string) (Outcome, error) {
	if len(items) == 0 {
		return Outcome{}, ErrNoItems
	}

	session, err := m.term.Start()
	if err != nil {
		return Outcome{}, err
	}

	defer func() {
		if cerr := session.Close(); cerr != nil {
			m.log().Warn("failed to restore terminal mode", "error", cerr)
		}
	}()

	selected := 0

	for {
		if err := m.render(markers, items, selected); err != nil {
			return Outcome{Index: selected}, err
		}

		ev, err := keys.Decode(m.in)
		if err != nil {
			return Outcome{Index: selected}, fmt.Errorf("read key: %w", err)
		}

		if ev.Terminal() {
			if ev == keys.Abort {
				m.log().Debug("menu input ended", "index", selected)
			}

			return Outcome{Index: selected, Confirmed: ev == keys.Confirm}, nil
		}

		selected = Apply(selected, len(items), ev)

		if err := session.Up(len(items)); err != nil {
			return Outcome{Index: selected}, fmt.Errorf("move cursor: %w", err)
		}

		if err := session.ClearRight(); err != nil {
			return Outcome{Index: selected}, fmt.Errorf("clear screen: %w", err)
		}
	}
}

func (m *Menu) render(markers Markers, items []string, selected int) error {
	for i, item := range items {
		marker := markers.Off
		if i == selected {
			marker = markers.On
		}

		if _, err := fmt.Fprintf(m.out, "%s %s\n", marker, item); err != nil {
			return fmt.Errorf("render menu: %w", err)
		}
	}

	return terminal.Flush(m.out)
}
