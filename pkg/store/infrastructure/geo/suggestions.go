package geo

import "sync"

// SuggestionList is the dismissible autocomplete dropdown: a result list
// with one highlighted index that arrow keys move circularly.
type SuggestionList struct {
	mu          sync.Mutex
	items       []Suggestion
	highlighted int
}

func NewSuggestionList() *SuggestionList {
	return &SuggestionList{highlighted: -1}
}

// SetItems replaces the list and resets the highlight.
func (l *SuggestionList) SetItems(items []Suggestion) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]Suggestion(nil), items...)
	l.highlighted = -1
}

func (l *SuggestionList) Items() []Suggestion {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Suggestion(nil), l.items...)
}

// MoveDown advances the highlight, wrapping past the end.
func (l *SuggestionList) MoveDown() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.items) == 0 {
		return -1
	}
	l.highlighted = (l.highlighted + 1) % len(l.items)
	return l.highlighted
}

// MoveUp retreats the highlight, wrapping past the start.
func (l *SuggestionList) MoveUp() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.items) == 0 {
		return -1
	}
	l.highlighted = (l.highlighted - 1 + len(l.items)) % len(l.items)
	return l.highlighted
}

func (l *SuggestionList) Highlighted() (Suggestion, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.highlighted < 0 || l.highlighted >= len(l.items) {
		return Suggestion{}, false
	}
	return l.items[l.highlighted], true
}

// Commit selects the highlighted entry (Enter), closing the list.
func (l *SuggestionList) Commit() (Suggestion, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.highlighted < 0 || l.highlighted >= len(l.items) {
		return Suggestion{}, false
	}
	s := l.items[l.highlighted]
	l.items = nil
	l.highlighted = -1
	return s, true
}

// Select picks an entry by position (click), closing the list.
func (l *SuggestionList) Select(index int) (Suggestion, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		return Suggestion{}, false
	}
	s := l.items[index]
	l.items = nil
	l.highlighted = -1
	return s, true
}

// Dismiss closes the list without selecting.
func (l *SuggestionList) Dismiss() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.highlighted = -1
}
