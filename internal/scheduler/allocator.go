package scheduler

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
)

// RoomLister supplies the room catalog. It is called for every day/slot considered.
type RoomLister interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// Workload is an assignment with its teacher, course and section resolved.
type Workload struct {
	Assignment   models.Assignment
	Teacher      models.Teacher
	Availability models.Availability
	Course       models.Course
	Section      models.Section
}

// Allocation is the outcome of one assignment.
type Allocation struct {
	Required  int
	Scheduled int
	Entries   []models.TimetableEntry
}

// Satisfied reports whether the weekly quota was met.
func (a Allocation) Satisfied() bool {
	return a.Scheduled >= a.Required
}

// ShortfallMessage formats the diagnostic for an under-allocated assignment.
func ShortfallMessage(courseName, sectionName string, scheduled, required int) string {
	return fmt.Sprintf("Incomplete allocation for %s in %s - only %d/%d hours scheduled", courseName, sectionName, scheduled, required)
}

// Engine allocates one assignment at a time against a run State.
type Engine struct {
	rooms  RoomLister
	logger *zap.Logger
}

// NewEngine wires the engine to its room catalog.
func NewEngine(rooms RoomLister, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{rooms: rooms, logger: logger}
}

// Candidates enumerates the grid for w and returns one ranked candidate per day/slot that has
// a usable, free room. Gap penalties use the section index as committed so far.
func (e *Engine) Candidates(ctx context.Context, state *State, w Workload) ([]Candidate, error) {
	idx := state.SectionIndex(w.Section.ID)
	var candidates []Candidate
	for _, day := range Weekdays {
		for _, slot := range TimeSlots {
			if !IsTeacherAvailable(w.Availability, day, slot) {
				continue
			}
			rooms, err := e.rooms.ListRooms(ctx)
			if err != nil {
				return nil, fmt.Errorf("list rooms: %w", err)
			}
			best, bestScore, found := e.bestRoom(state, w, day, slot, rooms)
			if !found {
				continue
			}
			candidates = append(candidates, Candidate{
				Day:        day,
				TimeSlot:   slot,
				Room:       best,
				RoomScore:  bestScore,
				GapPenalty: GapPenalty(idx, day, slot),
			})
		}
	}
	RankCandidates(candidates)
	return candidates, nil
}

func (e *Engine) bestRoom(state *State, w Workload, day, slot string, rooms []models.Room) (models.Room, int, bool) {
	var (
		best      models.Room
		bestScore int
	)
	for _, room := range rooms {
		score := ScoreRoom(room, w.Course, w.Section)
		if score <= bestScore {
			continue
		}
		reason := state.Check(day, slot, ConflictQuery{
			TeacherID: w.Teacher.ID,
			RoomID:    room.ID,
			SectionID: w.Section.ID,
		})
		if reason != ConflictNone {
			continue
		}
		best, bestScore = room, score
	}
	return best, bestScore, bestScore > 0
}

// Allocate commits the best candidates for w until its weekly quota is met or candidates
// run out. A shortfall is reported through the returned Allocation, not as an error.
func (e *Engine) Allocate(ctx context.Context, state *State, w Workload) (Allocation, error) {
	result := Allocation{Required: w.Assignment.HoursPerWeek}
	candidates, err := e.Candidates(ctx, state, w)
	if err != nil {
		return result, err
	}

	for _, candidate := range candidates {
		if result.Scheduled >= result.Required {
			break
		}
		entry := models.TimetableEntry{
			DepartmentID: state.departmentID,
			Day:          candidate.Day,
			TimeSlot:     candidate.TimeSlot,
			SectionID:    w.Section.ID,
			CourseID:     w.Course.ID,
			TeacherID:    w.Teacher.ID,
			RoomID:       candidate.Room.ID,
		}
		if err := state.Commit(entry); err != nil {
			var conflict *ConflictError
			if errors.As(err, &conflict) {
				e.logger.Warn("candidate taken before commit",
					zap.String("assignment_id", w.Assignment.ID),
					zap.String("day", candidate.Day),
					zap.String("time_slot", candidate.TimeSlot),
					zap.String("reason", string(conflict.Reason)),
				)
				continue
			}
			return result, err
		}
		result.Entries = append(result.Entries, entry)
		result.Scheduled++
	}

	e.logger.Debug("assignment allocated",
		zap.String("assignment_id", w.Assignment.ID),
		zap.String("section_id", w.Section.ID),
		zap.String("course_id", w.Course.ID),
		zap.Int("candidates", len(candidates)),
		zap.Int("scheduled", result.Scheduled),
		zap.Int("required", result.Required),
	)
	return result, nil
}
