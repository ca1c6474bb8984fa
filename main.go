package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sridhar1233sri/consultancy/config"
	"github.com/Sridhar1233sri/consultancy/cron"
	"github.com/Sridhar1233sri/consultancy/database"
	appointmentRepo "github.com/Sridhar1233sri/consultancy/database/repository/appointment"
	doctorRepo "github.com/Sridhar1233sri/consultancy/database/repository/doctor"
	userRepo "github.com/Sridhar1233sri/consultancy/database/repository/user"
	"github.com/Sridhar1233sri/consultancy/handlers"
	"github.com/Sridhar1233sri/consultancy/middleware"
	"github.com/Sridhar1233sri/consultancy/routes"
	"github.com/Sridhar1233sri/consultancy/services/assistant"
	"github.com/Sridhar1233sri/consultancy/services/doctor"
	"github.com/Sridhar1233sri/consultancy/services/scheduling"
	"github.com/Sridhar1233sri/consultancy/services/tasks"
	"github.com/Sridhar1233sri/consultancy/services/user"
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitChatCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	usrRepo := userRepo.NewMongoUserRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// reminder queue.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderClient.Close()
	cron.InitReminderWorker(apptRepo)

	// services.
	userService := &user.DefaultUserService{Repo: usrRepo}
	directoryService := &doctor.DefaultDirectoryService{Repo: docRepo}
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:       apptRepo,
		DoctorRepo: docRepo,
		Grid: scheduling.GridConfig{
			OpenHour:    config.AppConfig.OpenHour,
			CloseHour:   config.AppConfig.CloseHour,
			SlotMinutes: config.AppConfig.SlotMinutes,
		},
		Reminders: tasks.NewAsynqReminderScheduler(reminderClient, config.AppConfig.ReminderLeadMinutes),
	}

	conversationStore := assistant.NewRedisConversationStore(utils.GetChatCacheClient(), 30*time.Minute)
	assistantService := assistant.NewDefaultAssistantService(
		assistant.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		conversationStore,
		directoryService,
		schedulingService,
	)

	utils.StartHealthMonitor(utils.GetChatCacheClient(), database.MongoClient)

	handlerSet := &routes.HandlerSet{
		Auth:        handlers.NewAuthHandler(userService),
		Doctor:      handlers.NewDoctorHandler(directoryService),
		Appointment: handlers.NewAppointmentHandler(schedulingService),
		Chat:        handlers.NewChatHandler(assistantService),
	}

	routes.RegisterRoutes(router, handlerSet)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
