package collision

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
)

// Tracker records output column names and rejects duplicates.
// It keeps the registration order so callers can report names in binding order.
type Tracker struct {
	names     map[string]int // name → registration position
	namesList []string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[string]int),
		namesList: make([]string, 0),
	}
}

// Track registers name. It returns ErrInvalidBinding for an empty name and
// ErrDuplicateColumn when the name was already registered.
func (t *Tracker) Track(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty column name", errs.ErrInvalidBinding)
	}

	if pos, exists := t.names[name]; exists {
		return fmt.Errorf("%w: %q already used by column #%d", errs.ErrDuplicateColumn, name, pos)
	}

	t.names[name] = len(t.namesList)
	t.namesList = append(t.namesList, name)

	return nil
}

// Has reports whether name is registered.
func (t *Tracker) Has(name string) bool {
	_, ok := t.names[name]
	return ok
}

// Names returns the registered names in registration order.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of registered names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all registered names.
func (t *Tracker) Reset() {
	clear(t.names)
	t.namesList = t.namesList[:0]
}
