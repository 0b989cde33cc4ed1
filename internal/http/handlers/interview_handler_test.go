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

func TestInterviewHandler_Schedule_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &InterviewHandler{interviews: nil}
	r.POST("/interviews", handler.Schedule)

	body := bytes.NewBufferString(`{"candidate_id":"` + uuid.NewString() + `","level":"L1","scheduled_at":"2026-09-15T10:00:00Z"}`)
	req, _ := http.NewRequest("POST", "/interviews", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInterviewHandler_ListInterviews_WithoutFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &InterviewHandler{interviews: nil}
	r.GET("/interviews", handler.ListInterviews)

	req, _ := http.NewRequest("GET", "/interviews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInterviewHandler_Decide_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &InterviewHandler{interviews: nil}
	r.POST("/interviews/:id/decision", handler.Decide)

	body := bytes.NewBufferString(`{"decision":"HIRED"}`)
	req, _ := http.NewRequest("POST", "/interviews/invalid-uuid/decision", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInterviewHandler_Cancel_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &InterviewHandler{interviews: nil}
	r.POST("/interviews/:id/cancel", handler.Cancel)

	interviewID := uuid.New()
	req, _ := http.NewRequest("POST", "/interviews/"+interviewID.String()+"/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
