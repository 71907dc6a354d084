package quest

import "github.com/inovacc/quest/internal/core"

// IOError is the single error kind returned by this package. Use errors.As to
// inspect the failed operation and errors.Is to match the underlying cause.
type IOError = core.IOError
