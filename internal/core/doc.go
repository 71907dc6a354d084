// Package core provides the editor and error plumbing shared by the quest
// prompts.
//
// Functions in this package return errors instead of printing to
// stdout/stderr; rendering belongs to the callers.
//
// # Editor Sessions
//
// [EditTemp] writes the initial text to a file in a fresh temporary
// directory, runs the editor resolved by [ResolveEditor] on it, reads the
// file back and removes the directory. Only the base name of the requested
// file is used, so the extension can select a syntax in the editor.
//
// # Errors
//
// Stream failures are reported as [IOError] values naming the operation that
// failed; use errors.As to inspect them.
package core
