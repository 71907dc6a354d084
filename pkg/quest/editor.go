package quest

import (
	"log/slog"

	"github.com/inovacc/quest/internal/core"
)

// Editor lets the user write text in their editor. message becomes the
// initial content of a temporary file called name; the file's content after
// the editor exits is returned.
//
// The editor is taken from VISUAL, then EDITOR, and defaults to vi (notepad
// on Windows). A value such as "code --wait" is split into program and
// arguments when no program by the full name exists.
func (p *Prompter) Editor(name string, message []byte) (string, error) {
	editor := core.ResolveEditor(p.editor)

	p.log().Debug("resolved editor", "editor", editor)

	return core.EditTemp(editor, name, message, p.stdio)
}

func (p *Prompter) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}

	return slog.Default()
}
