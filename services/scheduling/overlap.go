package scheduling

import (
	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/utils"
)

// IsAvailable reports whether [timeStr, timeStr+duration) is free for the
// doctor on the given date. All interval arithmetic is half-open, so an
// appointment ending at 10:00 never conflicts with one starting at 10:00.
// An inconclusive store read fails closed with StorageUnavailableError.
func (s *DefaultSchedulingService) IsAvailable(doctorID, date, timeStr string, durationMinutes int) (bool, error) {
	candidate, err := s.candidateInterval(date, timeStr, durationMinutes)
	if err != nil {
		return false, err
	}
	if _, err := s.DoctorRepo.GetByID(doctorID); err != nil {
		return false, err
	}

	existing, err := s.Repo.ListByDoctorDate(doctorID, date)
	if err != nil {
		return false, err
	}
	return !conflicts(existing, candidate), nil
}

// candidateInterval validates the request's date/time/duration and returns
// the proposed half-open interval.
func (s *DefaultSchedulingService) candidateInterval(date, timeStr string, durationMinutes int) (models.Interval, error) {
	if _, err := ParseDate(date); err != nil {
		return models.Interval{}, err
	}
	start, err := ParseClock(timeStr)
	if err != nil {
		return models.Interval{}, err
	}
	if durationMinutes == 0 {
		durationMinutes = s.Grid.SlotMinutes
	}
	if durationMinutes < 0 {
		return models.Interval{}, &utils.InvalidInputError{Field: "duration", Reason: "must be positive"}
	}
	end := start + durationMinutes
	if end > minutesPerDay {
		return models.Interval{}, &utils.InvalidInputError{Field: "duration", Reason: "appointment would run past midnight"}
	}
	return models.Interval{Start: start, End: end}, nil
}

// conflicts reports whether the candidate interval intersects any of the
// committed appointments.
func conflicts(existing []models.Appointment, candidate models.Interval) bool {
	for _, appt := range existing {
		if candidate.Overlaps(appt.Slot()) {
			return true
		}
	}
	return false
}
