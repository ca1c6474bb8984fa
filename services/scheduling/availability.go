package scheduling

import "github.com/Sridhar1233sri/consultancy/models"

// FreeSlots computes the free slot start times for a doctor on a date by
// checking every grid slot against the committed appointments with interval
// overlap. Matching on intervals rather than exact start times means a
// booking that does not align to the grid still blocks the slots it covers.
func (s *DefaultSchedulingService) FreeSlots(doctorID, date string) ([]string, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	if _, err := s.DoctorRepo.GetByID(doctorID); err != nil {
		return nil, err
	}

	booked, err := s.Repo.ListByDoctorDate(doctorID, date)
	if err != nil {
		return nil, err
	}

	free := make([]string, 0)
	for _, start := range s.Grid.Slots() {
		slot := models.Interval{Start: start, End: start + s.Grid.SlotMinutes}
		if !conflicts(booked, slot) {
			free = append(free, FormatClock(start))
		}
	}
	return free, nil
}
