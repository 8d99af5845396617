package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wellnest-dev/wellnest/db"
	"github.com/wellnest-dev/wellnest/internal/models"
	"github.com/wellnest-dev/wellnest/internal/types"
	"gorm.io/gorm"
)

// SubmitHealthDataRequest carries one day's metrics. Only user_id is
// mandatory; absent metrics fall back to the column defaults. The
// mixed-case calorieIntake key is part of the original wire format.
type SubmitHealthDataRequest struct {
	UserID         uint    `json:"user_id" binding:"required"`
	Date           string  `json:"date"`
	HeartRate      int     `json:"heart_rate"`
	BloodPressure  string  `json:"blood_pressure"`
	Footsteps      int     `json:"footsteps"`
	MeditationTime int     `json:"meditation_time"`
	Temperature    float64 `json:"temperature"`
	SleepDuration  int     `json:"sleep_duration"`
	WaterIntake    int     `json:"water_intake"`
	CalorieIntake  int     `json:"calorieIntake"`
	WorkoutCount   int     `json:"numberofworkout"`
}

func SubmitDailyHealthData(ctx *gin.Context) {
	var body SubmitHealthDataRequest

	if err := ctx.BindJSON(&body); err != nil {
		logrus.WithError(err).Warn("SubmitDailyHealthData: invalid request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}

	if body.BloodPressure == "" {
		body.BloodPressure = "0/0"
	}

	record := models.DailyHealthRecord{
		UserID:         body.UserID,
		Date:           body.Date,
		HeartRate:      body.HeartRate,
		BloodPressure:  body.BloodPressure,
		Footsteps:      body.Footsteps,
		MeditationTime: body.MeditationTime,
		Temperature:    body.Temperature,
		SleepDuration:  body.SleepDuration,
		WaterIntake:    body.WaterIntake,
		CalorieIntake:  body.CalorieIntake,
		WorkoutCount:   body.WorkoutCount,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	})

	if err != nil {
		logrus.WithError(err).WithField("user_id", body.UserID).Error("SubmitDailyHealthData: insert failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving data", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Daily health data submitted successfully"})
}

func GetDailyHealthData(ctx *gin.Context) {
	userID, err := parseUserIDQuery(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid user_id query parameter is required"})
		return
	}

	var records []models.DailyHealthRecord

	if err := db.DB.Where("user_id = ?", userID).Order("date DESC").Find(&records).Error; err != nil {
		logrus.WithError(err).Error("GetDailyHealthData: failed to retrieve records")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve health data"})
		return
	}

	response := make([]types.HealthRecordResponse, 0, len(records))

	for _, record := range records {
		response = append(response, types.HealthRecordResponse{
			Date:           record.Date,
			HeartRate:      record.HeartRate,
			BloodPressure:  record.BloodPressure,
			Footsteps:      record.Footsteps,
			MeditationTime: record.MeditationTime,
			Temperature:    record.Temperature,
			SleepDuration:  record.SleepDuration,
			WaterIntake:    record.WaterIntake,
			CalorieIntake:  record.CalorieIntake,
			WorkoutCount:   record.WorkoutCount,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func parseUserIDQuery(ctx *gin.Context) (uint, error) {
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)

	if err != nil {
		return 0, err
	}

	return uint(userID), nil
}
