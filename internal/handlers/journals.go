package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wellnest-dev/wellnest/db"
	"github.com/wellnest-dev/wellnest/internal/models"
	"github.com/wellnest-dev/wellnest/internal/types"
)

type CreateJournalRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Mood     string `json:"mood" binding:"required"`
	Thoughts string `json:"thoughts" binding:"required"`
}

func CreateJournal(ctx *gin.Context) {
	var body CreateJournalRequest

	if err := ctx.BindJSON(&body); err != nil {
		logrus.WithError(err).Warn("CreateJournal: invalid request body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entry := models.JournalEntry{
		UserID:   body.UserID,
		Title:    body.Title,
		Mood:     body.Mood,
		Thoughts: body.Thoughts,
		Date:     time.Now().Format("2006-01-02"),
	}

	if err := db.DB.Create(&entry).Error; err != nil {
		logrus.WithError(err).Error("CreateJournal: insert failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add journal entry"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Journal entry added successfully"})
}

func GetJournals(ctx *gin.Context) {
	userID, err := parseUserIDQuery(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid user_id query parameter is required"})
		return
	}

	var entries []models.JournalEntry

	if err := db.DB.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		logrus.WithError(err).Error("GetJournals: failed to retrieve journal entries")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entries"})
		return
	}

	response := make([]types.JournalResponse, 0, len(entries))

	for _, entry := range entries {
		response = append(response, types.JournalResponse{
			ID:       entry.ID,
			Title:    entry.Title,
			Mood:     entry.Mood,
			Thoughts: entry.Thoughts,
			Date:     entry.Date,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
