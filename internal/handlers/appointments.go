package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wellnest-dev/wellnest/db"
	"github.com/wellnest-dev/wellnest/internal/models"
	"github.com/wellnest-dev/wellnest/internal/types"
)

// CreateAppointmentRequest takes "title" from the caller and persists it
// as the doctor_name column.
type CreateAppointmentRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required"`
}

func CreateAppointment(ctx *gin.Context) {
	var body CreateAppointmentRequest

	if err := ctx.BindJSON(&body); err != nil {
		logrus.WithError(err).Warn("CreateAppointment: invalid request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	appointment := models.Appointment{
		UserID:     body.UserID,
		DoctorName: body.Title,
		Date:       body.Date,
		Time:       body.Time,
		Location:   body.Location,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		logrus.WithError(err).Error("CreateAppointment: insert failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store appointment"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Appointment stored successfully"})
}

func GetAppointments(ctx *gin.Context) {
	userID, err := parseUserIDQuery(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid user_id query parameter is required"})
		return
	}

	var appointments []models.Appointment

	if err := db.DB.Where("user_id = ?", userID).Find(&appointments).Error; err != nil {
		logrus.WithError(err).Error("GetAppointments: failed to retrieve appointments")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}

	response := make([]types.AppointmentResponse, 0, len(appointments))

	for _, appointment := range appointments {
		response = append(response, types.AppointmentResponse{
			ID:       appointment.ID,
			Title:    appointment.DoctorName,
			Date:     appointment.Date,
			Time:     appointment.Time,
			Location: appointment.Location,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
