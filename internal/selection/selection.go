// Package selection interprets a user's progressive date picking and turns
// it into a committed check-in/checkout range. Calendar widgets emit either
// a full range or one date at a time; the machine absorbs both shapes and
// only ever exposes a fully ordered two-date range.
package selection

import (
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// Machine is the range-selection state machine. Zero value is the Empty
// state. Not safe for concurrent use; each interaction stream owns one.
type Machine struct {
	pending   *time.Time
	start     time.Time
	end       time.Time
	committed bool
	lastErr   string
}

// New returns a machine in the Empty state.
func New() *Machine {
	return &Machine{}
}

// Pick feeds a single picked date into the machine. The first pick is held
// internally and is not visible through Committed; the second pick commits
// the range. Dates arriving out of chronological order are normalized so
// that start <= end always holds after a commit.
func (m *Machine) Pick(d time.Time) {
	day := domain.DayOf(d)
	if m.pending == nil {
		m.pending = &day
		return
	}
	first := *m.pending
	m.pending = nil
	m.commit(first, day)
}

// PickRange feeds a complete two-date pick into the machine, committing
// immediately. Any held single pick is discarded.
func (m *Machine) PickRange(a, b time.Time) {
	m.pending = nil
	m.commit(domain.DayOf(a), domain.DayOf(b))
}

// Clear discards any selection and any held single pick, returning the
// machine to the Empty state. The last validation error is kept: clearing
// is not a user correction, changing the selection is.
func (m *Machine) Clear() {
	m.pending = nil
	m.committed = false
	m.start = time.Time{}
	m.end = time.Time{}
}

// Committed returns the committed range. ok is false in the Empty state and
// while a single pick is being held.
func (m *Machine) Committed() (start, end time.Time, ok bool) {
	if !m.committed {
		return time.Time{}, time.Time{}, false
	}
	return m.start, m.end, true
}

// SetError records a validation error message for the current selection.
func (m *Machine) SetError(msg string) {
	m.lastErr = msg
}

// Err returns the validation error recorded for the current selection, or
// an empty string. Any transition into Committed clears it: as soon as the
// user changes the dates, the previous complaint no longer applies.
func (m *Machine) Err() string {
	return m.lastErr
}

func (m *Machine) commit(a, b time.Time) {
	if b.Before(a) {
		a, b = b, a
	}
	m.start = a
	m.end = b
	m.committed = true
	m.lastErr = ""
}
