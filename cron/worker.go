package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Sridhar1233sri/consultancy/config"
	appointmentRepo "github.com/Sridhar1233sri/consultancy/database/repository/appointment"
	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/services/tasks"
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(apptRepo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReminderWorker] failed to start worker: %v", err)
		}
	}()
}

// handleReminderTask fires a due reminder. Reminders for appointments that
// were cancelled after booking are dropped silently.
func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		if _, err := apptRepo.GetByID(p.AppointmentID); err != nil {
			var notFound *utils.NotFoundError
			if errors.As(err, &notFound) {
				logger.Info("skipping reminder for cancelled appointment",
					zap.String("appointmentId", p.AppointmentID))
				return nil
			}
			return err
		}

		logger.Info("appointment reminder due",
			zap.String("appointmentId", p.AppointmentID),
			zap.String("patient", p.PatientEmail),
			zap.String("doctor", p.DoctorName),
			zap.String("date", p.Date),
			zap.String("time", p.Time))
		return nil
	}
}
