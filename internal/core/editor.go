package core

import (
	"os"
	"runtime"
)

// EditorInfo represents editor information for display.
type EditorInfo struct {
	Name    string
	Command string
}

// KnownEditors is a list of common terminal and GUI editors to check for.
// GUI editors need their wait flag to be usable from Edit.
var KnownEditors = []EditorInfo{
	{Name: "Vim", Command: "vim"},
	{Name: "Neovim", Command: "nvim"},
	{Name: "Vi", Command: "vi"},
	{Name: "Nano", Command: "nano"},
	{Name: "Emacs", Command: "emacs"},
	{Name: "Helix", Command: "hx"},
	{Name: "Micro", Command: "micro"},
	{Name: "VS Code", Command: "code --wait"},
	{Name: "Sublime Text", Command: "subl --wait"},
	{Name: "Zed", Command: "zed --wait"},
	{Name: "Notepad", Command: "notepad"},
}

// DefaultEditor returns the platform fallback used when neither VISUAL nor
// EDITOR is set.
func DefaultEditor() string {
	if runtime.GOOS == "windows" {
		return "notepad"
	}

	return "vi"
}

// ResolveEditor returns override when set, otherwise VISUAL, then EDITOR,
// then the platform default.
func ResolveEditor(override string) string {
	if override != "" {
		return override
	}

	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
	}

	return DefaultEditor()
}

// GetInstalledEditors returns the known editors whose program is on PATH.
func GetInstalledEditors() []EditorInfo {
	var installed []EditorInfo

	for _, editor := range KnownEditors {
		if IsEditorInstalled(editor.Command) {
			installed = append(installed, editor)
		}
	}

	return installed
}
