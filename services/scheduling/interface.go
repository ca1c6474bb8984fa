package scheduling

import "github.com/Sridhar1233sri/consultancy/models"

// SchedulingService is the appointment scheduling and availability engine.
type SchedulingService interface {
	// IsAvailable reports whether the interval [timeStr, timeStr+duration)
	// is free of conflicts for the doctor on the given date.
	IsAvailable(doctorID, date, timeStr string, durationMinutes int) (bool, error)
	// FreeSlots returns the ordered free slot start times ("HH:MM") for a
	// doctor on a date, derived from the business-hours grid.
	FreeSlots(doctorID, date string) ([]string, error)
	// Book validates and commits an appointment, returning the record.
	Book(req models.BookingRequest) (*models.Appointment, error)
	// Cancel removes a committed appointment by id.
	Cancel(id string) error
	// ListByPatient returns appointments booked under an email.
	ListByPatient(email string) ([]models.Appointment, error)
	// ListByDoctor returns a doctor's appointments, narrowed by date when set.
	ListByDoctor(doctorID, date string) ([]models.Appointment, error)
	// ListAll returns every appointment record.
	ListAll() ([]models.Appointment, error)
}

// ReminderScheduler queues a reminder for a committed appointment.
// The scheduling engine treats it as best-effort: a scheduling failure is
// logged and never rolls back the booking.
type ReminderScheduler interface {
	Schedule(appt *models.Appointment) error
}
