package scheduler

// SectionIndex maps a day to the set of slots a section already holds that day.
type SectionIndex map[string]map[string]struct{}

// Occupy marks day/slot as taken.
func (idx SectionIndex) Occupy(day, slot string) {
	if idx[day] == nil {
		idx[day] = make(map[string]struct{})
	}
	idx[day][slot] = struct{}{}
}

// Occupied reports whether day/slot is taken.
func (idx SectionIndex) Occupied(day, slot string) bool {
	_, ok := idx[day][slot]
	return ok
}

// GapPenalty counts the free slots strictly before and strictly after slot on day.
// A day with nothing scheduled yet costs nothing.
func GapPenalty(idx SectionIndex, day, slot string) int {
	if len(idx[day]) == 0 {
		return 0
	}
	pos := SlotIndex(slot)
	if pos < 0 {
		return 0
	}
	gaps := 0
	for i, other := range TimeSlots {
		if i == pos {
			continue
		}
		if !idx.Occupied(day, other) {
			gaps++
		}
	}
	return gaps
}
