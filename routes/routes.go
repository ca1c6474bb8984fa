package routes

import (
	"net/http"
	"time"

	"github.com/Sridhar1233sri/consultancy/handlers"
	"github.com/Sridhar1233sri/consultancy/middleware"
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerSet groups the handlers the router wires up.
type HandlerSet struct {
	Auth        *handlers.AuthHandler
	Doctor      *handlers.DoctorHandler
	Appointment *handlers.AppointmentHandler
	Chat        *handlers.ChatHandler
}

// RegisterUserRoutes registers registration and login endpoints.
func RegisterUserRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hs.Auth.RegisterHandler)
		api.POST("/login", hs.Auth.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("", hs.Auth.ListUsersHandler)
	}
}

// RegisterDoctorRoutes registers the directory endpoints. Reads are public;
// mutations require authentication.
func RegisterDoctorRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hs.Doctor.ListDoctorsHandler)
		api.GET("/:id", hs.Doctor.GetDoctorHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hs.Doctor.CreateDoctorHandler)
		protected.DELETE("", hs.Doctor.DeleteDoctorHandler)
	}
}

// RegisterAppointmentRoutes registers availability, booking and cancellation.
func RegisterAppointmentRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/availability", hs.Appointment.AvailabilityHandler)
		api.POST("", hs.Appointment.BookHandler)
		api.GET("", hs.Appointment.ListHandler)
		api.DELETE("/:id", hs.Appointment.CancelHandler)
	}
}

// RegisterChatRoutes registers the assistant endpoint.
func RegisterChatRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hs.Chat.Chat)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Welcome to the Appointment System Backend!",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hs *HandlerSet) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hs)
	RegisterDoctorRoutes(r, hs)
	RegisterAppointmentRoutes(r, hs)
	RegisterChatRoutes(r, hs)
	RegisterHealthRoute(r)
}
