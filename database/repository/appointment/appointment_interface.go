package appointmentRepo

import "github.com/Sridhar1233sri/consultancy/models"

// AppointmentRepository owns the set of committed appointment records.
// Other components only read through it; all writes go through Insert/Delete.
type AppointmentRepository interface {
	// Insert commits an appointment. A write that collides with an existing
	// (doctor, date, start) tuple fails with ConflictError.
	Insert(appt *models.Appointment) error
	// GetByID retrieves an appointment by its identifier.
	GetByID(id string) (*models.Appointment, error)
	// Delete removes an appointment irrevocably; NotFoundError if absent.
	Delete(id string) error
	// ListByDoctorDate retrieves all appointments for a doctor on one date.
	ListByDoctorDate(doctorID, date string) ([]models.Appointment, error)
	// ListByPatient retrieves all appointments booked under an email.
	ListByPatient(email string) ([]models.Appointment, error)
	// ListByDoctor retrieves a doctor's appointments; date narrows when non-empty.
	ListByDoctor(doctorID, date string) ([]models.Appointment, error)
	// ListAll retrieves every appointment record.
	ListAll() ([]models.Appointment, error)
}
