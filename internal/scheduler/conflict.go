package scheduler

import "github.com/noah-isme/timetable-api/internal/models"

// ConflictReason names the axis on which a day/slot is already taken.
type ConflictReason string

const (
	ConflictNone    ConflictReason = ""
	ConflictTeacher ConflictReason = "TEACHER_OCCUPIED"
	ConflictRoom    ConflictReason = "ROOM_OCCUPIED"
	ConflictSection ConflictReason = "SECTION_OCCUPIED"
)

// Message returns the human readable form of the reason.
func (r ConflictReason) Message() string {
	switch r {
	case ConflictTeacher:
		return "Teacher occupied"
	case ConflictRoom:
		return "Room occupied"
	case ConflictSection:
		return "Section occupied"
	default:
		return ""
	}
}

// ConflictQuery lists the identifiers to test at one day/slot. Empty fields are skipped.
type ConflictQuery struct {
	TeacherID string
	RoomID    string
	SectionID string
}

type cell struct {
	day  string
	slot string
}

type occupancy struct {
	teachers map[string]struct{}
	rooms    map[string]struct{}
	sections map[string]struct{}
}

func newOccupancy() *occupancy {
	return &occupancy{
		teachers: make(map[string]struct{}),
		rooms:    make(map[string]struct{}),
		sections: make(map[string]struct{}),
	}
}

// Ledger indexes committed entries by day/slot for conflict lookups.
type Ledger struct {
	cells map[cell]*occupancy
	size  int
}

// NewLedger builds a ledger seeded with entries.
func NewLedger(entries ...models.TimetableEntry) *Ledger {
	l := &Ledger{cells: make(map[cell]*occupancy)}
	for _, entry := range entries {
		l.Add(entry)
	}
	return l
}

// Add records entry as occupying its teacher, room and section.
func (l *Ledger) Add(entry models.TimetableEntry) {
	key := cell{day: entry.Day, slot: entry.TimeSlot}
	occ, ok := l.cells[key]
	if !ok {
		occ = newOccupancy()
		l.cells[key] = occ
	}
	if entry.TeacherID != "" {
		occ.teachers[entry.TeacherID] = struct{}{}
	}
	if entry.RoomID != "" {
		occ.rooms[entry.RoomID] = struct{}{}
	}
	if entry.SectionID != "" {
		occ.sections[entry.SectionID] = struct{}{}
	}
	l.size++
}

// Len returns the number of entries recorded.
func (l *Ledger) Len() int {
	return l.size
}

// Check returns the first occupied axis for q at day/slot, testing teacher, room, then section.
func (l *Ledger) Check(day, slot string, q ConflictQuery) ConflictReason {
	occ, ok := l.cells[cell{day: day, slot: slot}]
	if !ok {
		return ConflictNone
	}
	if q.TeacherID != "" {
		if _, taken := occ.teachers[q.TeacherID]; taken {
			return ConflictTeacher
		}
	}
	if q.RoomID != "" {
		if _, taken := occ.rooms[q.RoomID]; taken {
			return ConflictRoom
		}
	}
	if q.SectionID != "" {
		if _, taken := occ.sections[q.SectionID]; taken {
			return ConflictSection
		}
	}
	return ConflictNone
}
