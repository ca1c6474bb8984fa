package scheduling

import (
	"strings"
	"sync"
	"time"

	appointmentRepo "github.com/Sridhar1233sri/consultancy/database/repository/appointment"
	doctorRepo "github.com/Sridhar1233sri/consultancy/database/repository/doctor"
	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Repo       appointmentRepo.AppointmentRepository
	DoctorRepo doctorRepo.DoctorRepository
	Grid       GridConfig
	Reminders  ReminderScheduler

	locks doctorLocks

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// doctorLocks hands out one mutex per doctor id so check-then-insert is
// serialized per doctor within this process. The unique storage index on
// (doctor_id, date, start) backstops the race across processes.
type doctorLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (d *doctorLocks) get(doctorID string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.locks == nil {
		d.locks = make(map[string]*sync.Mutex)
	}
	lock, exists := d.locks[doctorID]
	if !exists {
		lock = &sync.Mutex{}
		d.locks[doctorID] = lock
	}
	return lock
}

func (s *DefaultSchedulingService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Book validates the request, resolves the doctor snapshot, and commits the
// appointment. The availability check and the insert run under the doctor's
// lock; two concurrent requests for the same slot resolve to exactly one
// committed appointment and one ConflictError.
func (s *DefaultSchedulingService) Book(req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(req.PatientEmail) == "" {
		return nil, &utils.InvalidInputError{Field: "patientEmail", Reason: "required"}
	}

	candidate, err := s.candidateInterval(req.Date, req.Time, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	day, _ := ParseDate(req.Date)
	today, _ := ParseDate(s.clock().Format(dateLayout))
	if day.Before(today) {
		return nil, &utils.InvalidInputError{Field: "date", Reason: "cannot book an appointment in the past"}
	}

	doctor, err := s.DoctorRepo.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:           uuid.NewString(),
		PatientEmail: req.PatientEmail,
		PatientName:  req.PatientName,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Speciality:   doctor.Speciality,
		Hospital:     doctor.Hospital,
		Date:         req.Date,
		Start:        candidate.Start,
		End:          candidate.End,
		Issue:        req.Issue,
	}

	lock := s.locks.get(doctor.ID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.Repo.ListByDoctorDate(doctor.ID, req.Date)
	if err != nil {
		return nil, err
	}
	if conflicts(existing, candidate) {
		return nil, &utils.ConflictError{Message: "slot already booked for this doctor"}
	}

	if err := s.Repo.Insert(appt); err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(appt); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	logger.Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", doctor.ID),
		zap.String("date", appt.Date),
		zap.String("time", FormatClock(appt.Start)))
	return appt, nil
}

// Cancel removes a committed appointment. Cancelling an id twice yields
// NotFoundError on the second call.
func (s *DefaultSchedulingService) Cancel(id string) error {
	if strings.TrimSpace(id) == "" {
		return &utils.InvalidInputError{Field: "id", Reason: "required"}
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.GetLogger().Info("appointment cancelled", zap.String("appointmentId", id))
	return nil
}

// ListByPatient returns appointments booked under an email.
func (s *DefaultSchedulingService) ListByPatient(email string) ([]models.Appointment, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &utils.InvalidInputError{Field: "email", Reason: "required"}
	}
	return s.Repo.ListByPatient(email)
}

// ListByDoctor returns a doctor's appointments, narrowed by date when set.
func (s *DefaultSchedulingService) ListByDoctor(doctorID, date string) ([]models.Appointment, error) {
	if strings.TrimSpace(doctorID) == "" {
		return nil, &utils.InvalidInputError{Field: "doctorId", Reason: "required"}
	}
	if date != "" {
		if _, err := ParseDate(date); err != nil {
			return nil, err
		}
	}
	return s.Repo.ListByDoctor(doctorID, date)
}

// ListAll returns every appointment record.
func (s *DefaultSchedulingService) ListAll() ([]models.Appointment, error) {
	return s.Repo.ListAll()
}
