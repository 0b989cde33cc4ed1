package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCandidateHandler_CreateCandidate_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &CandidateHandler{candidates: nil}
	r.POST("/candidates", handler.CreateCandidate)

	body := bytes.NewBufferString(`{"job_order_id":"` + uuid.NewString() + `","first_name":"Анна","last_name":"Петрова","email":"anna@example.com"}`)
	req, _ := http.NewRequest("POST", "/candidates", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCandidateHandler_GetCandidate_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &CandidateHandler{candidates: nil}
	r.GET("/candidates/:id", handler.GetCandidate)

	req, _ := http.NewRequest("GET", "/candidates/invalid-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCandidateHandler_Transition_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &CandidateHandler{candidates: nil}
	r.POST("/candidates/:id/transition", handler.Transition)

	candidateID := uuid.New()
	body := bytes.NewBufferString(`{"status":"CONTACTED"}`)
	req, _ := http.NewRequest("POST", "/candidates/"+candidateID.String()+"/transition", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCandidateHandler_Transition_InvalidID_WithAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	userID := uuid.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	handler := &CandidateHandler{candidates: nil}
	r.POST("/candidates/:id/transition", handler.Transition)

	body := bytes.NewBufferString(`{"status":"CONTACTED"}`)
	req, _ := http.NewRequest("POST", "/candidates/invalid-uuid/transition", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCandidateHandler_MarkContacted_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &CandidateHandler{candidates: nil}
	r.POST("/candidates/:id/contact", handler.MarkContacted)

	candidateID := uuid.New()
	req, _ := http.NewRequest("POST", "/candidates/"+candidateID.String()+"/contact", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCandidateHandler_GetHistory_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &CandidateHandler{candidates: nil}
	r.GET("/candidates/:id/history", handler.GetHistory)

	req, _ := http.NewRequest("GET", "/candidates/invalid-uuid/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
