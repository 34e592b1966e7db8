package scheduler

import (
	"errors"
	"fmt"

	"github.com/noah-isme/timetable-api/internal/models"
)

// ErrOutsideGrid is returned when an entry names a day or slot the weekly grid does not have.
var ErrOutsideGrid = errors.New("day or time slot outside the weekly grid")

// ConflictError reports an attempt to commit a double booking.
type ConflictError struct {
	Day    string
	Slot   string
	Reason ConflictReason
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s at %s %s", e.Reason.Message(), e.Day, e.Slot)
}

// State is the working timetable of one generation run. It is owned by a single run and
// is not safe for concurrent use.
type State struct {
	departmentID string
	ledger       *Ledger
	sections     map[string]SectionIndex
	pending      []models.TimetableEntry
}

// NewState starts a run for departmentID. existing holds entries that stay in place for the
// run (other departments); they block teachers, rooms and sections but are not re-written.
func NewState(departmentID string, existing []models.TimetableEntry) *State {
	return &State{
		departmentID: departmentID,
		ledger:       NewLedger(existing...),
		sections:     make(map[string]SectionIndex),
	}
}

// ResetSection clears the gap index of a section before its assignments are processed.
func (s *State) ResetSection(sectionID string) {
	s.sections[sectionID] = make(SectionIndex)
}

// SectionIndex returns the occupancy index of sectionID, creating it on first use.
func (s *State) SectionIndex(sectionID string) SectionIndex {
	idx, ok := s.sections[sectionID]
	if !ok {
		idx = make(SectionIndex)
		s.sections[sectionID] = idx
	}
	return idx
}

// Check consults every entry known to the run, committed or pre-existing.
func (s *State) Check(day, slot string, q ConflictQuery) ConflictReason {
	return s.ledger.Check(day, slot, q)
}

// Commit records entry for this run after re-checking all three axes.
func (s *State) Commit(entry models.TimetableEntry) error {
	if !ValidCell(entry.Day, entry.TimeSlot) {
		return ErrOutsideGrid
	}
	reason := s.ledger.Check(entry.Day, entry.TimeSlot, ConflictQuery{
		TeacherID: entry.TeacherID,
		RoomID:    entry.RoomID,
		SectionID: entry.SectionID,
	})
	if reason != ConflictNone {
		return &ConflictError{Day: entry.Day, Slot: entry.TimeSlot, Reason: reason}
	}
	entry.DepartmentID = s.departmentID
	s.ledger.Add(entry)
	s.SectionIndex(entry.SectionID).Occupy(entry.Day, entry.TimeSlot)
	s.pending = append(s.pending, entry)
	return nil
}

// Entries returns the entries committed during this run in commit order.
func (s *State) Entries() []models.TimetableEntry {
	out := make([]models.TimetableEntry, len(s.pending))
	copy(out, s.pending)
	return out
}
