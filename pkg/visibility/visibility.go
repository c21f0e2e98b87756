package visibility

import (
	"errors"

	"github.com/kasuboski/juststreamit/pkg/machine"
)

type State string

const (
	// NotNeeded means every item is shown and no toggle control exists
	NotNeeded State = "NotNeeded"
	// Collapsed hides the items past the threshold behind a toggle
	Collapsed State = "Collapsed"
	// Expanded shows every item, the toggle offers to collapse again
	Expanded State = "Expanded"
)

const (
	mobileMaxWidth = 600
	tabletMaxWidth = 1024

	mobileThreshold  = 2
	tabletThreshold  = 4
	desktopThreshold = 6

	// lists never get a toggle at or above this width
	controlMaxWidth = 1024

	LabelMore = "Voir plus"
	LabelLess = "Voir moins"
)

var ErrNoControl = errors.New("list has no toggle control")

// ThresholdForWidth is how many items a list shows before it needs a toggle
func ThresholdForWidth(width int) int {
	switch {
	case width <= mobileMaxWidth:
		return mobileThreshold
	case width <= tabletMaxWidth:
		return tabletThreshold
	default:
		return desktopThreshold
	}
}

func needsControl(total, threshold, width int) bool {
	return total > threshold && width < controlMaxWidth
}

// List tracks which items of one rendered list are visible
type List struct {
	total     int
	threshold int
	machine   *machine.StateMachine[State]
}

func newMachine(initial State) *machine.StateMachine[State] {
	return machine.New(initial,
		machine.From(Collapsed).To(Expanded, NotNeeded),
		machine.From(Expanded).To(Collapsed, NotNeeded),
		machine.From(NotNeeded).To(Collapsed),
	)
}

// New computes the initial state of a freshly rendered list of total items at the given viewport width
func New(total, width int) *List {
	threshold := ThresholdForWidth(width)
	initial := NotNeeded
	if needsControl(total, threshold, width) {
		initial = Collapsed
	}

	return &List{
		total:     total,
		threshold: threshold,
		machine:   newMachine(initial),
	}
}

// Toggle flips between Collapsed and Expanded
func (l *List) Toggle() (State, error) {
	switch l.machine.Current() {
	case Collapsed:
		return Expanded, l.machine.ToState(Expanded)
	case Expanded:
		return Collapsed, l.machine.ToState(Collapsed)
	default:
		return l.machine.Current(), ErrNoControl
	}
}

// Resize recomputes the threshold for a new viewport width.
// The control is removed when no longer needed and created, collapsed, when newly needed.
// An expanded list stays expanded; a later collapse uses the new threshold.
func (l *List) Resize(width int) State {
	l.threshold = ThresholdForWidth(width)

	if !needsControl(l.total, l.threshold, width) {
		// both Collapsed and Expanded may drop to NotNeeded
		_ = l.machine.ToState(NotNeeded)
		return NotNeeded
	}

	if l.machine.Current() == NotNeeded {
		_ = l.machine.ToState(Collapsed)
	}

	return l.machine.Current()
}

func (l *List) State() State {
	return l.machine.Current()
}

func (l *List) Threshold() int {
	return l.threshold
}

func (l *List) Total() int {
	return l.total
}

// HasControl reports whether a toggle control is shown
func (l *List) HasControl() bool {
	return l.machine.Current() != NotNeeded
}

// IsVisible reports whether the item at index i is shown
func (l *List) IsVisible(i int) bool {
	if i < 0 || i >= l.total {
		return false
	}
	if l.machine.Current() == Collapsed {
		return i < l.threshold
	}
	return true
}

func (l *List) VisibleCount() int {
	if l.machine.Current() == Collapsed {
		return min(l.threshold, l.total)
	}
	return l.total
}

// Hidden returns the indexes of hidden items in order
func (l *List) Hidden() []int {
	hidden := make([]int, 0)
	if l.machine.Current() != Collapsed {
		return hidden
	}
	for i := l.threshold; i < l.total; i++ {
		hidden = append(hidden, i)
	}
	return hidden
}

// Label is the toggle text, empty when there is no control
func (l *List) Label() string {
	switch l.machine.Current() {
	case Collapsed:
		return LabelMore
	case Expanded:
		return LabelLess
	default:
		return ""
	}
}
