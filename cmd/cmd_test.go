package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/inovacc/quest/internal/terminal"
	"github.com/inovacc/quest/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of c and its children to its default so
// package-level commands can be executed repeatedly.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

type result struct {
	stdout string
	stderr string
}

func executeWithConfig(t *testing.T, configContent, input string, args ...string) (result, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "quest.ini")
	require.NoError(t, os.WriteFile(cfg, []byte(configContent), 0o600))

	var stdout, stderr bytes.Buffer

	newMenuTerminal = func(out io.Writer) terminal.Terminal {
		return testutil.NewFakeTerminal(out)
	}

	t.Cleanup(func() {
		newMenuTerminal = nil

		resetFlags(rootCmd)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := rootCmd.Execute()

	return result{stdout: stdout.String(), stderr: stderr.String()}, err
}

func execute(t *testing.T, input string, args ...string) (result, error) {
	t.Helper()

	return executeWithConfig(t, "", input, args...)
}

func fakeEditor(t *testing.T, appended string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("editor script needs a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "editor")
	body := "#!/bin/sh\nprintf '" + appended + "' >> \"$1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))

	return path
}

func TestRootCmd(t *testing.T) {
	t.Run("root command has subcommands", func(t *testing.T) {
		expected := []string{"choose", "text", "password", "yesno", "edit", "success", "error", "demo", "config"}

		for _, name := range expected {
			found := false

			for _, c := range GetRootCmd().Commands() {
				if c.Name() == name {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("missing subcommand %q", name)
			}
		}
	})

	t.Run("persistent flags", func(t *testing.T) {
		for _, name := range []string{"config", "verbose"} {
			if rootCmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("missing persistent flag %q", name)
			}
		}
	})
}

func TestChooseCmd(t *testing.T) {
	res, err := execute(t, "jj\r", "choose", "A", "B", "C")
	require.NoError(t, err)

	assert.Equal(t, "2\tC\n", res.stdout, "stdout must carry only the answer")
	assert.Equal(t, "> A\n  B\n  C\n"+
		"\x1b[3A\x1b[J  A\n> B\n  C\n"+
		"\x1b[3A\x1b[J  A\n  B\n> C\n", res.stderr)
}

func TestChooseCmd_MarkerFlags(t *testing.T) {
	res, err := execute(t, "\r", "choose", "--on", "*", "--off", "-", "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "0\tA\n", res.stdout)
	assert.Equal(t, "* A\n- B\n", res.stderr)
}

func TestChooseCmd_MarkersFromConfig(t *testing.T) {
	res, err := executeWithConfig(t, "[menu]\non = =>\noff = ..\n", "k\r", "choose", "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "0\tA\n", res.stdout)
	assert.Equal(t, "=> A\n.. B\n\x1b[2A\x1b[J=> A\n.. B\n", res.stderr)
}

func TestChooseCmd_EndOfInput(t *testing.T) {
	res, err := execute(t, "j", "choose", "A", "B")

	assert.ErrorIs(t, err, errNoSelection)
	assert.Empty(t, res.stdout)
}

func TestChooseCmd_RequiresItems(t *testing.T) {
	_, err := execute(t, "", "choose")

	assert.Error(t, err)
}

func TestTextCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		input  string
		stdout string
		stderr string
	}{
		{name: "plain", args: []string{"text"}, input: "hello\r\n", stdout: "hello\n"},
		{name: "with prompt", args: []string{"text", "Name? "}, input: "Ada\n", stdout: "Ada\n", stderr: "\x1b[1mName? \x1b[0m"},
		{name: "empty prompt", args: []string{"text", ""}, input: "x\n", stdout: "x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := execute(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, res.stdout)
			assert.Equal(t, tt.stderr, res.stderr)
		})
	}
}

func TestPasswordCmd_Piped(t *testing.T) {
	res, err := execute(t, "s3cret\n", "password", "Password: ")
	require.NoError(t, err)

	assert.Equal(t, "s3cret\n", res.stdout)
	assert.Equal(t, "\x1b[1mPassword: \x1b[0m", res.stderr)
}

func TestYesnoCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		input  string
		stdout string
		stderr string
	}{
		{name: "re-asks until valid", args: []string{"yesno"}, input: "maybe\ny\n", stdout: "yes\n"},
		{name: "empty uses false default", args: []string{"yesno"}, input: "\n", stdout: "no\n"},
		{name: "empty uses --default", args: []string{"yesno", "--default"}, input: "\n", stdout: "yes\n"},
		{name: "end of input uses default", args: []string{"yesno", "-d"}, input: "", stdout: "yes\n"},
		{name: "empty prompt is not styled", args: []string{"yesno", ""}, input: "n\n", stdout: "no\n"},
		{
			name:   "prompt is repeated",
			args:   []string{"yesno", "Sure? "},
			input:  "x\nNO\n",
			stdout: "no\n",
			stderr: "\x1b[1mSure? \x1b[0m\x1b[1mSure? \x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := execute(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, res.stdout)
			assert.Equal(t, tt.stderr, res.stderr)
		})
	}
}

func TestMessageCmds(t *testing.T) {
	res, err := execute(t, "", "success", "all", "good")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;92mall good\x1b[0m\n", res.stdout)
	assert.Empty(t, res.stderr)

	res, err = execute(t, "", "error", "it", "broke")
	require.NoError(t, err)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "\x1b[1;91mit broke\x1b[0m\n", res.stderr)
}

func TestEditCmd(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", fakeEditor(t, "more\\n"))

	res, err := execute(t, "", "edit", "--message", "hi\n")
	require.NoError(t, err)

	assert.Equal(t, "hi\nmore\n", res.stdout)
}

func TestEditCmd_EditorFlagWins(t *testing.T) {
	t.Setenv("VISUAL", "nonexistent-editor-12345")

	res, err := execute(t, "", "edit", "--editor", fakeEditor(t, "flag\\n"))
	require.NoError(t, err)

	assert.Equal(t, "flag\n", res.stdout)
}

func TestDemoCmd(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", fakeEditor(t, "print(42)\\n"))

	res, err := execute(t, "jj\rAda\nsecret\nmaybe\ny\n", "demo")
	require.NoError(t, err)

	for _, want := range []string{
		"\x1b[1;92mOperation successful!\x1b[0m\n",
		"\x1b[1;91mError: The compiler ate your laundry.\x1b[0m\n",
		"> Well\n  Brilliant\n  Amazing\n",
		"It's good to see that you're amazing.",
		"Hello, Ada!",
		"Correct, the password is secret.",
		"# Write a Python script.",
		"print(42)",
		"No, I AM THE ONE!",
	} {
		assert.Contains(t, res.stdout, want)
	}
}

func TestConfigCmd(t *testing.T) {
	res, err := executeWithConfig(t, "editor = nvim\n[menu]\non = *\noff = \" \"\n", "", "config")
	require.NoError(t, err)

	assert.Contains(t, res.stdout, "Editor:      nvim\n")
	assert.Contains(t, res.stdout, "Menu on:     \"*\"\n")
	assert.Contains(t, res.stdout, "Menu off:    \" \"\n")
}

func TestConfigEditorsCmd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake editor on PATH needs a POSIX shell")
	}

	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, "nano"), []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("PATH", bin)
	t.Setenv("VISUAL", "nano")

	t.Run("installed only", func(t *testing.T) {
		res, err := execute(t, "", "config", "editors")
		require.NoError(t, err)

		assert.Equal(t, "Available Editors:\n\n  ✓ Nano           nano [active]\n", res.stdout)
	})

	t.Run("all", func(t *testing.T) {
		res, err := execute(t, "", "config", "editors", "--all")
		require.NoError(t, err)

		assert.Contains(t, res.stdout, "  ✓ Nano           nano [active]\n")
		assert.Contains(t, res.stdout, "  ✗ Vim            vim\n")
	})
}
