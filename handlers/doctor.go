package handlers

import (
	"net/http"

	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/services/doctor"
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes the doctor directory endpoints.
type DoctorHandler struct {
	Directory doctor.DirectoryService
}

func NewDoctorHandler(svc doctor.DirectoryService) *DoctorHandler {
	return &DoctorHandler{Directory: svc}
}

// CreateDoctorHandler handles POST /api/doctors.
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.DoctorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid doctor payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	id, err := h.Directory.Create(req)
	if err != nil {
		logger.Error("Doctor creation failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Doctor added successfully",
		"id":      id,
	})
}

// ListDoctorsHandler handles GET /api/doctors.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Directory.List()
	if err != nil {
		getLogger(c).Error("Doctor listing failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"doctors": doctors,
	})
}

// GetDoctorHandler handles GET /api/doctors/:id. The path segment accepts a
// "D<n>" identifier or an exact doctor name.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := h.Directory.GetByRef(c.Param("id"))
	if err != nil {
		getLogger(c).Warn("Doctor lookup failed", zap.String("id", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDoctorHandler handles DELETE /api/doctors?id=D1.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Query("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Doctor ID is required", "")
		return
	}

	if err := h.Directory.Delete(id); err != nil {
		logger.Warn("Doctor deletion failed", zap.String("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Doctor deleted successfully",
	})
}
