package quest

import (
	"github.com/inovacc/quest/internal/core"
	"github.com/inovacc/quest/internal/menu"
)

// Boxes are the markers printed in front of the selected and the other rows.
type Boxes struct {
	On  string
	Off string
}

// DefaultBoxes returns ">" for the selected row and " " for the others.
func DefaultBoxes() Boxes {
	return Boxes{On: ">", Off: " "}
}

// Choose lets the user pick exactly one of items and returns its index. If
// input ends before a choice is confirmed, the index selected at that moment
// is returned. Choose panics if items is empty.
func (p *Prompter) Choose(boxes Boxes, items []string) (int, error) {
	index, _, err := p.Select(boxes, items)

	return index, err
}

// Select is like Choose but reports whether the choice was confirmed. ok is
// false when input ended first.
func (p *Prompter) Select(boxes Boxes, items []string) (index int, ok bool, err error) {
	if len(items) == 0 {
		panic("quest: Choose requires at least one item")
	}

	m := menu.New(p.term, p.in, p.out, p.logger)

	outcome, err := m.Run(menu.Markers{On: boxes.On, Off: boxes.Off}, items)
	if err != nil {
		return outcome.Index, false, core.WrapIO("choose", err)
	}

	return outcome.Index, outcome.Confirmed, nil
}
