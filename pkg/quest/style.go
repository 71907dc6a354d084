package quest

import (
	"fmt"

	"github.com/inovacc/quest/internal/terminal"
)

const (
	sgrBold    = "\x1b[1m"
	sgrSuccess = "\x1b[1;92m"
	sgrError   = "\x1b[1;91m"
	sgrReset   = "\x1b[0m"
)

// Ask prints a question in bold without a trailing newline.
func (p *Prompter) Ask(q string) {
	p.styled(sgrBold, q, "")
}

// Success prints a message in bold bright green followed by a newline.
func (p *Prompter) Success(s string) {
	p.styled(sgrSuccess, s, "\n")
}

// Error prints a message in bold bright red followed by a newline.
func (p *Prompter) Error(s string) {
	p.styled(sgrError, s, "\n")
}

func (p *Prompter) styled(sgr, s, end string) {
	_, _ = fmt.Fprint(p.out, sgr, s, sgrReset, end)
	_ = terminal.Flush(p.out)
}
