package quest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/inovacc/quest/internal/core"
	"github.com/inovacc/quest/internal/terminal"
	"golang.org/x/term"
)

// Prompter runs prompts against one input and one output stream. Line reads
// and the menu share a single buffered reader so they never race for bytes.
type Prompter struct {
	in     *bufio.Reader
	inFile *os.File
	out    io.Writer
	term   terminal.Terminal
	editor string
	stdio  core.Stdio
	logger *slog.Logger

	isTerminal   func(*os.File) bool
	readPassword func(fd int) ([]byte, error)
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithInput reads answers and key presses from r.
func WithInput(r io.Reader) Option {
	return func(p *Prompter) {
		p.in = bufio.NewReader(r)
		p.inFile, _ = r.(*os.File)
	}
}

// WithOutput writes prompts and the menu to w.
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		p.out = w
	}
}

// WithTerminal replaces the raw-mode terminal used by the menu.
func WithTerminal(t terminal.Terminal) Option {
	return func(p *Prompter) {
		p.term = t
	}
}

// WithEditor sets the editor command used by Editor, bypassing VISUAL and
// EDITOR.
func WithEditor(command string) Option {
	return func(p *Prompter) {
		p.editor = command
	}
}

// WithLogger sets the logger for diagnostics such as terminal restore
// failures. Without it slog.Default is used.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prompter) {
		p.logger = l
	}
}

// New returns a Prompter over stdin and stdout adjusted by opts.
func New(opts ...Option) *Prompter {
	p := &Prompter{
		in:           bufio.NewReader(os.Stdin),
		inFile:       os.Stdin,
		out:          os.Stdout,
		stdio:        core.OSStdio(),
		isTerminal:   terminal.IsTerminal,
		readPassword: term.ReadPassword,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.term == nil {
		p.term = terminal.NewConsole(p.inFile, p.out, p.logger)
	}

	return p
}

// Text reads one line. The trailing newline, and a carriage return right
// before it, are removed. At end of input the partial line is returned.
func (p *Prompter) Text() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", core.WrapIO("read line", err)
	}

	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
	}

	return line, nil
}

// Password reads a line without echoing it when the input is a terminal. For
// any other input it behaves like Text.
func (p *Prompter) Password() (string, error) {
	if p.inFile == nil || !p.isTerminal(p.inFile) {
		return p.Text()
	}

	b, err := p.readPassword(int(p.inFile.Fd()))
	if err != nil {
		return "", core.WrapIO("read password", err)
	}

	_, _ = fmt.Fprintln(p.out)

	return string(b), nil
}

// YesNo reads an answer to a yes-or-no question. An empty line yields def.
// Any case-insensitive prefix of "yes" or "no" is accepted; for anything else
// ok is false.
func (p *Prompter) YesNo(def bool) (answer, ok bool, err error) {
	s, err := p.Text()
	if err != nil {
		return false, false, err
	}

	s = strings.ToLower(s)

	switch {
	case s == "":
		return def, true, nil
	case strings.HasPrefix("yes", s):
		return true, true, nil
	case strings.HasPrefix("no", s):
		return false, true, nil
	}

	return false, false, nil
}
