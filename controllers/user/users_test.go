package userControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedseem-infohub/Yelo-Backend/middleware"
	"github.com/vedseem-infohub/Yelo-Backend/models"
	"github.com/vedseem-infohub/Yelo-Backend/store"
)

func newSelfServiceRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/me", middleware.ValidateToken, GetMe(s))
	r.PUT("/users/profile", middleware.ValidateToken, UpdateProfile(s))
	r.PUT("/users/address", middleware.ValidateToken, UpdateAddress(s))
	return r
}

func signToken(t *testing.T, userID primitive.ObjectID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.Hex(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func doAuthed(t *testing.T, r *gin.Engine, method, url, token, payload string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if payload != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetMe(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mem, s := store.NewMemory()
	userID := seedUser(mem, "priya", true, time.Now())

	w, body := doAuthed(t, newSelfServiceRouter(s), http.MethodGet, "/users/me", signToken(t, userID), "")
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "priya", data["name"])
}

func TestGetMeRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, s := store.NewMemory()

	w, body := doAuthed(t, newSelfServiceRouter(s), http.MethodGet, "/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestGetMeRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-different-secret")
	_, s := store.NewMemory()

	w, _ := doAuthed(t, newSelfServiceRouter(s), http.MethodGet, "/users/me", signToken(t, primitive.NewObjectID()), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mem, s := store.NewMemory()
	userID := seedUser(mem, "amit", true, time.Now())

	w, body := doAuthed(t, newSelfServiceRouter(s), http.MethodPut, "/users/profile",
		signToken(t, userID), `{"phone":"+911234567890"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "+911234567890", data["phone"])
	// name, email and phone all set now
	assert.Equal(t, true, data["isProfileComplete"])
	// untouched field survives the patch
	assert.Equal(t, "amit", data["name"])
}

func TestUpdateAddress(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mem, s := store.NewMemory()
	userID := seedUser(mem, "neha", true, time.Now())

	w, body := doAuthed(t, newSelfServiceRouter(s), http.MethodPut, "/users/address",
		signToken(t, userID), `{"line1":"12 MG Road","city":"Pune","state":"MH","postalCode":"411001","country":"IN"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	address := data["address"].(map[string]interface{})
	assert.Equal(t, "Pune", address["city"])

	var stored *models.User
	for i := range mem.UsersData {
		if mem.UsersData[i].ID == userID {
			stored = &mem.UsersData[i]
		}
	}
	require.NotNil(t, stored)
	require.NotNil(t, stored.Address)
	assert.Equal(t, "12 MG Road", stored.Address.Line1)
}
