package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/timetable-api/internal/models"
)

func TestLedgerCheck(t *testing.T) {
	ledger := NewLedger(models.TimetableEntry{
		Day: "Monday", TimeSlot: "09:00-10:00",
		TeacherID: "t-1", RoomID: "r-1", SectionID: "s-1",
	})

	assert.Equal(t, ConflictTeacher, ledger.Check("Monday", "09:00-10:00", ConflictQuery{TeacherID: "t-1", RoomID: "r-1", SectionID: "s-1"}))
	assert.Equal(t, ConflictRoom, ledger.Check("Monday", "09:00-10:00", ConflictQuery{TeacherID: "t-2", RoomID: "r-1"}))
	assert.Equal(t, ConflictSection, ledger.Check("Monday", "09:00-10:00", ConflictQuery{SectionID: "s-1"}))
	assert.Equal(t, ConflictNone, ledger.Check("Monday", "09:00-10:00", ConflictQuery{TeacherID: "t-2", RoomID: "r-2", SectionID: "s-2"}))
	assert.Equal(t, ConflictNone, ledger.Check("Monday", "10:00-11:00", ConflictQuery{TeacherID: "t-1"}))
	assert.Equal(t, ConflictNone, ledger.Check("Monday", "09:00-10:00", ConflictQuery{}))
	assert.Equal(t, 1, ledger.Len())
}

func TestConflictReasonMessage(t *testing.T) {
	assert.Equal(t, "Teacher occupied", ConflictTeacher.Message())
	assert.Equal(t, "Room occupied", ConflictRoom.Message())
	assert.Equal(t, "Section occupied", ConflictSection.Message())
	assert.Empty(t, ConflictNone.Message())
}

func TestStateCommitRejectsDoubleBooking(t *testing.T) {
	state := NewState("dept-1", nil)
	first := models.TimetableEntry{Day: "Tuesday", TimeSlot: "01:00-02:00", TeacherID: "t-1", RoomID: "r-1", SectionID: "s-1"}
	assert.NoError(t, state.Commit(first))

	err := state.Commit(models.TimetableEntry{Day: "Tuesday", TimeSlot: "01:00-02:00", TeacherID: "t-2", RoomID: "r-1", SectionID: "s-2"})
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictRoom, conflict.Reason)

	assert.ErrorIs(t, state.Commit(models.TimetableEntry{Day: "Saturday", TimeSlot: "09:00-10:00"}), ErrOutsideGrid)

	entries := state.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "dept-1", entries[0].DepartmentID)
	assert.True(t, state.SectionIndex("s-1").Occupied("Tuesday", "01:00-02:00"))
}

func TestStateSeededEntriesBlockButAreNotRewritten(t *testing.T) {
	state := NewState("dept-1", []models.TimetableEntry{
		{DepartmentID: "dept-2", Day: "Friday", TimeSlot: "02:00-03:00", TeacherID: "t-shared", RoomID: "r-9", SectionID: "s-9"},
	})

	assert.Equal(t, ConflictTeacher, state.Check("Friday", "02:00-03:00", ConflictQuery{TeacherID: "t-shared"}))
	assert.Empty(t, state.Entries())
}
