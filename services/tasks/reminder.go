package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/services/scheduling"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler queues appointment reminders on the asynq client.
// It implements scheduling.ReminderScheduler.
type AsynqReminderScheduler struct {
	Client      *asynq.Client
	LeadMinutes int
}

func NewAsynqReminderScheduler(client *asynq.Client, leadMinutes int) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client, LeadMinutes: leadMinutes}
}

// Schedule enqueues a reminder to fire LeadMinutes before the appointment.
// Appointments starting sooner than the lead window get no reminder.
func (s *AsynqReminderScheduler) Schedule(appt *models.Appointment) error {
	startAt, err := time.ParseInLocation("2006-01-02 15:04",
		appt.Date+" "+scheduling.FormatClock(appt.Start), time.Local)
	if err != nil {
		return fmt.Errorf("cannot derive reminder time: %w", err)
	}

	fireAt := startAt.Add(-time.Duration(s.LeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientEmail:  appt.PatientEmail,
		DoctorName:    appt.DoctorName,
		Date:          appt.Date,
		Time:          scheduling.FormatClock(appt.Start),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
