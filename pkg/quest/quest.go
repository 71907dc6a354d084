package quest

var std = New()

// Ask prints a question in bold without a trailing newline.
func Ask(q string) { std.Ask(q) }

// Success prints a message of success in bold bright green, with a newline.
func Success(s string) { std.Success(s) }

// Error prints an error message in bold bright red, with a newline.
func Error(s string) { std.Error(s) }

// Text reads a line of text from stdin.
func Text() (string, error) { return std.Text() }

// Password reads a password from stdin without echoing it.
func Password() (string, error) { return std.Password() }

// YesNo asks a yes-or-no question. ok is false for an invalid response.
func YesNo(def bool) (answer, ok bool, err error) { return std.YesNo(def) }

// Choose asks the user to choose exactly one option from items.
func Choose(boxes Boxes, items []string) (int, error) { return std.Choose(boxes, items) }

// Select is like Choose but reports whether the choice was confirmed.
func Select(boxes Boxes, items []string) (int, bool, error) { return std.Select(boxes, items) }

// Editor asks the user to enter some text through their editor.
func Editor(name string, message []byte) (string, error) { return std.Editor(name, message) }
