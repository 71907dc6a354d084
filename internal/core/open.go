package core

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/inovacc/quest/internal/application"
)

// Stdio are the streams handed to the editor process.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OSStdio returns the process's own standard streams.
func OSStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// EditorCommand builds the command that opens path in editor. An editor value
// that is not a program on PATH but contains spaces is split into program and
// arguments, so "code --wait" works.
func EditorCommand(editor, path string) *exec.Cmd {
	if _, err := exec.LookPath(editor); err != nil {
		if fields := strings.Fields(editor); len(fields) > 1 {
			return exec.Command(fields[0], append(fields[1:], path)...)
		}
	}

	return exec.Command(editor, path)
}

// EditTemp writes initial to a file called name inside a fresh temporary
// directory, runs editor on it, waits for the editor to exit and returns the
// file's final contents. The directory is removed afterwards.
func EditTemp(editor, name string, initial []byte, stdio Stdio) (string, error) {
	dir, err := os.MkdirTemp("", application.AppName+"-")
	if err != nil {
		return "", WrapIO("create temp dir", err)
	}

	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, tempFileName(name))

	if err := os.WriteFile(path, initial, 0o600); err != nil {
		return "", WrapIO("write temp file", err)
	}

	cmd := EditorCommand(editor, path)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	slog.Debug("launching editor", "editor", editor, "path", path)

	if err := cmd.Start(); err != nil {
		return "", WrapIO("start editor "+editor, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", WrapIO("wait for editor", err)
		}

		slog.Warn("editor exited with non-zero status", "editor", editor, "code", exitErr.ExitCode())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", WrapIO("read temp file", err)
	}

	return string(data), nil
}

// IsEditorInstalled checks if the program of the given editor command is
// available in PATH.
func IsEditorInstalled(editor string) bool {
	if editor == "" {
		return false
	}

	if _, err := exec.LookPath(editor); err == nil {
		return true
	}

	fields := strings.Fields(editor)
	if len(fields) < 2 {
		return false
	}

	_, err := exec.LookPath(fields[0])

	return err == nil
}

// tempFileName keeps only the last path element of name so the file always
// lands inside the temp directory.
func tempFileName(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) || base == ".." {
		return "message"
	}

	return base
}
