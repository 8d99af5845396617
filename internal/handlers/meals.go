package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wellnest-dev/wellnest/db"
	"github.com/wellnest-dev/wellnest/internal/models"
	"github.com/wellnest-dev/wellnest/internal/types"
)

type CreateMealRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	MealName string `json:"meal_name" binding:"required"`
	MealDate string `json:"meal_date" binding:"required"`
	MealTime string `json:"meal_time" binding:"required"`
}

func CreateMeal(ctx *gin.Context) {
	var body CreateMealRequest

	if err := ctx.BindJSON(&body); err != nil {
		logrus.WithError(err).Warn("CreateMeal: invalid request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	meal := models.Meal{
		UserID:   body.UserID,
		MealType: body.MealType,
		MealName: body.MealName,
		MealDate: body.MealDate,
		MealTime: body.MealTime,
	}

	if err := db.DB.Create(&meal).Error; err != nil {
		logrus.WithError(err).Error("CreateMeal: insert failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add meal"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Meal added successfully"})
}

func GetMeals(ctx *gin.Context) {
	userID, err := parseUserIDQuery(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid user_id query parameter is required"})
		return
	}

	var meals []models.Meal

	if err := db.DB.Where("user_id = ?", userID).Find(&meals).Error; err != nil {
		logrus.WithError(err).Error("GetMeals: failed to retrieve meals")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meals"})
		return
	}

	response := make([]types.MealResponse, 0, len(meals))

	for _, meal := range meals {
		response = append(response, types.MealResponse{
			ID:       meal.ID,
			MealType: meal.MealType,
			MealName: meal.MealName,
			MealDate: meal.MealDate,
			MealTime: meal.MealTime,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
