package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/wellnest-dev/wellnest/db"
	"github.com/wellnest-dev/wellnest/internal/auth"
	"github.com/wellnest-dev/wellnest/internal/router"
	"gorm.io/gorm"
)

// setupRouter points the package-level DB at a throwaway sqlite file and
// returns a fully wired engine.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	var err error

	db.DB, err = gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "wellnest_test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func newAuthedRequest(t *testing.T, path, token string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

// signupUser registers a user with the given email and returns the
// assigned id and token.
func signupUser(t *testing.T, r *gin.Engine, username, email string) (uint, string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/signup", gin.H{
		"username":       username,
		"email":          email,
		"password":       "s3cret-pass",
		"blood_group":    "O+",
		"address":        "1 St",
		"pincode":        "000",
		"contact_number": "123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeObject(t, w)
	userID, ok := body["user_id"].(float64)
	require.True(t, ok, "user_id missing from signup response")

	token, _ := body["token"].(string)

	return uint(userID), token
}
