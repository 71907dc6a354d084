package menu

import "github.com/inovacc/quest/internal/keys"

// Apply returns the selection index after ev on a list of length items.
// Movement saturates at both ends and never wraps.
func Apply(index, length int, ev keys.Event) int {
	switch ev {
	case keys.MoveUp:
		if index > 0 {
			index--
		}
	case keys.MoveDown:
		if index < length-1 {
			index++
		}
	}

	return index
}
