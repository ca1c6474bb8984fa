package handlers

import (
	"net/http"

	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/services/scheduling"
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking, cancellation and availability endpoints.
type AppointmentHandler struct {
	Scheduling scheduling.SchedulingService
}

func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Scheduling: svc}
}

// AvailabilityHandler handles GET /api/appointments/availability?doctorId=&date=.
func (h *AppointmentHandler) AvailabilityHandler(c *gin.Context) {
	doctorID := c.Query("doctorId")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "doctorId and date are required", "")
		return
	}

	slots, err := h.Scheduling.FreeSlots(doctorID, date)
	if err != nil {
		getLogger(c).Warn("Availability query failed",
			zap.String("doctorId", doctorID), zap.String("date", date), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AvailabilityResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    slots,
	})
}

// BookHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Scheduling.Book(req)
	if err != nil {
		logger.Warn("Booking rejected",
			zap.String("doctorId", req.DoctorID), zap.String("date", req.Date),
			zap.String("time", req.Time), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment booked successfully",
		"id":          appt.ID,
		"appointment": appt,
	})
}

// CancelHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Scheduling.Cancel(id); err != nil {
		getLogger(c).Warn("Cancellation failed", zap.String("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment cancelled successfully",
	})
}

// ListHandler handles GET /api/appointments with optional email / doctorId /
// date filters.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	email := c.Query("email")
	doctorID := c.Query("doctorId")
	date := c.Query("date")

	var (
		appts []models.Appointment
		err   error
	)
	switch {
	case email != "":
		appts, err = h.Scheduling.ListByPatient(email)
	case doctorID != "":
		appts, err = h.Scheduling.ListByDoctor(doctorID, date)
	default:
		appts, err = h.Scheduling.ListAll()
	}
	if err != nil {
		getLogger(c).Error("Appointment listing failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": appts,
	})
}
