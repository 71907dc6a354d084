package quest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("editor script needs a POSIX shell")
	}

	script := filepath.Join(t.TempDir(), "editor")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf 'print(\"hi\")\\n' >> \"$1\"\n"), 0o755))

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	p := New(WithOutput(&bytes.Buffer{}))

	got, err := p.Editor("script.py", []byte("# Write a Python script.\n"))
	require.NoError(t, err)

	assert.Equal(t, "# Write a Python script.\nprint(\"hi\")\n", got)
}

func TestEditor_OverrideMissing(t *testing.T) {
	p := New(WithOutput(&bytes.Buffer{}), WithEditor("nonexistent-editor-12345"))

	_, err := p.Editor("msg", nil)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
}
