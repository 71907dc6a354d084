// Package quest provides interactive command-line input primitives.
//
// The package offers styled prompts, line, password and yes/no input, an
// in-terminal single-select menu, and text entry through the user's editor.
// Package-level functions operate on stdin and stdout; a [Prompter] binds the
// same operations to other streams.
//
// # Menu
//
// [Choose] renders every item on its own line, marking the selected one, and
// redraws in place as the user presses the arrow keys or j and k. Enter
// confirms. The terminal is switched to unbuffered, unechoed input for the
// duration of the call and restored on every return path.
//
//	colors := []string{"Red", "Green", "Blue"}
//	quest.Ask("Favorite color?\n")
//	i, err := quest.Choose(quest.DefaultBoxes(), colors)
//
// The menu assumes the rendered block fits on screen without scrolling and
// that nothing else writes to the terminal while it is shown.
//
// # Errors
//
// Every stream, terminal, process and temp-file failure is reported as an
// [*IOError] wrapping the underlying cause.
package quest
