package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRoundTrip(t *testing.T) {
	r := setupRouter(t)

	userID, _ := signupUser(t, r, "a", "a@x.com")

	w := doRequest(t, r, http.MethodPost, "/journals", gin.H{
		"user_id":  userID,
		"title":    "Slow morning",
		"mood":     "calm",
		"thoughts": "Long walk before breakfast.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Journal entry added successfully", decodeObject(t, w)["message"])

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/journals?user_id=%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries := decodeList(t, w)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Slow morning", entry["title"])
	assert.Equal(t, "calm", entry["mood"])
	assert.Equal(t, "Long walk before breakfast.", entry["thoughts"])
	// date defaults server-side to today
	assert.Equal(t, time.Now().Format("2006-01-02"), entry["date"])
}

func TestJournalRequiredFields(t *testing.T) {
	r := setupRouter(t)

	for _, body := range []gin.H{
		{"user_id": 1, "mood": "calm", "thoughts": "x"},
		{"user_id": 1, "title": "t", "thoughts": "x"},
		{"user_id": 1, "title": "t", "mood": "calm"},
	} {
		w := doRequest(t, r, http.MethodPost, "/journals", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestJournalsEmptyListIsOK(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/journals?user_id=9", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
