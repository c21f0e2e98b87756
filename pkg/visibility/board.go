package visibility

import (
	"fmt"
	"sync"
)

// Snapshot is a copy of a list's visibility, safe to hand to renderers
type Snapshot struct {
	State     State  `json:"state"`
	Total     int    `json:"total"`
	Threshold int    `json:"threshold"`
	Visible   int    `json:"visible"`
	Hidden    []int  `json:"hidden"`
	Label     string `json:"label,omitempty"`
}

func (l *List) Snapshot() Snapshot {
	return Snapshot{
		State:     l.State(),
		Total:     l.total,
		Threshold: l.threshold,
		Visible:   l.VisibleCount(),
		Hidden:    l.Hidden(),
		Label:     l.Label(),
	}
}

// IsVisible reports whether the item at index i is shown
func (s Snapshot) IsVisible(i int) bool {
	if i < 0 || i >= s.Total {
		return false
	}
	if s.State == Collapsed {
		return i < s.Threshold
	}
	return true
}

// HasControl reports whether a toggle control is shown
func (s Snapshot) HasControl() bool {
	return s.State != NotNeeded && s.State != ""
}

// Board holds the visibility of every rendered list keyed by section
type Board struct {
	mu    sync.Mutex
	lists map[string]*List
}

func NewBoard() *Board {
	return &Board{lists: make(map[string]*List)}
}

// Replace drops any previous list for key and starts a new one
func (b *Board) Replace(key string, total, width int) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	l := New(total, width)
	b.lists[key] = l
	return l.Snapshot()
}

func (b *Board) Remove(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lists, key)
}

func (b *Board) Get(key string) (Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.lists[key]
	if !ok {
		return Snapshot{}, false
	}
	return l.Snapshot(), true
}

// Toggle activates the control of the list at key
func (b *Board) Toggle(key string) (Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.lists[key]
	if !ok {
		return Snapshot{}, fmt.Errorf("no list rendered for %q", key)
	}

	_, err := l.Toggle()
	return l.Snapshot(), err
}

// Resize re-evaluates every rendered list for a new viewport width
func (b *Board) Resize(width int) map[string]Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]Snapshot, len(b.lists))
	for key, l := range b.lists {
		l.Resize(width)
		out[key] = l.Snapshot()
	}
	return out
}

// Keys returns the sections with a rendered list
func (b *Board) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := make([]string, 0, len(b.lists))
	for k := range b.lists {
		keys = append(keys, k)
	}
	return keys
}
