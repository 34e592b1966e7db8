package scheduler

import (
	"sort"

	"github.com/noah-isme/timetable-api/internal/models"
)

// Candidate is an unconfirmed day/slot/room option for one assignment.
type Candidate struct {
	Day        string
	TimeSlot   string
	Room       models.Room
	RoomScore  int
	GapPenalty int
}

// Score is the ranking key: room fit minus schedule fragmentation.
func (c Candidate) Score() int {
	return c.RoomScore - c.GapPenalty
}

// RankCandidates orders candidates by score, highest first. Equal scores keep their
// enumeration order (day-major, then slot).
func RankCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score() > candidates[j].Score()
	})
}
