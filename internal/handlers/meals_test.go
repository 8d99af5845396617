package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealRoundTrip(t *testing.T) {
	r := setupRouter(t)

	userID, _ := signupUser(t, r, "a", "a@x.com")

	w := doRequest(t, r, http.MethodPost, "/meals", gin.H{
		"user_id":   userID,
		"meal_type": "breakfast",
		"meal_name": "Oats with fruit",
		"meal_date": "2024-04-10",
		"meal_time": "08:15",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Meal added successfully", decodeObject(t, w)["message"])

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/getmeals?user_id=%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	meals := decodeList(t, w)
	require.Len(t, meals, 1)

	meal := meals[0]
	assert.Equal(t, "breakfast", meal["meal_type"])
	assert.Equal(t, "Oats with fruit", meal["meal_name"])
	assert.Equal(t, "2024-04-10", meal["meal_date"])
	assert.Equal(t, "08:15", meal["meal_time"])
}

func TestMealTypeVocabularyUnconstrained(t *testing.T) {
	r := setupRouter(t)

	userID, _ := signupUser(t, r, "a", "a@x.com")

	w := doRequest(t, r, http.MethodPost, "/meals", gin.H{
		"user_id":   userID,
		"meal_type": "second breakfast",
		"meal_name": "Toast",
		"meal_date": "2024-04-10",
		"meal_time": "10:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMealsEmptyListIsOK(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/getmeals?user_id=3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestMealMissingFields(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/meals", gin.H{"user_id": 1, "meal_type": "lunch"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
