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

func TestOfferHandler_CreateOffer_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &OfferHandler{offers: nil}
	r.POST("/offers", handler.CreateOffer)

	body := bytes.NewBufferString(`{"candidate_id":"` + uuid.NewString() + `","offered_role":"Senior Go Developer","offered_salary":"350000 RUB","expected_joining_date":"2026-10-01"}`)
	req, _ := http.NewRequest("POST", "/offers", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOfferHandler_GetOffer_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &OfferHandler{offers: nil}
	r.GET("/offers/:id", handler.GetOffer)

	req, _ := http.NewRequest("GET", "/offers/invalid-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOfferHandler_Decide_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &OfferHandler{offers: nil}
	r.POST("/offers/:id/decision", handler.Decide)

	body := bytes.NewBufferString(`{"accepted":true}`)
	req, _ := http.NewRequest("POST", "/offers/invalid-uuid/decision", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOfferHandler_ConfirmJoining_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &OfferHandler{offers: nil}
	r.POST("/offers/:id/confirm-joining", handler.ConfirmJoining)

	offerID := uuid.New()
	body := bytes.NewBufferString(`{"actual_join_date":"2026-10-01"}`)
	req, _ := http.NewRequest("POST", "/offers/"+offerID.String()+"/confirm-joining", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOfferHandler_PostJoiningOutcome_InvalidID_WithAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	userID := uuid.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	handler := &OfferHandler{offers: nil}
	r.POST("/candidates/:id/post-joining", handler.PostJoiningOutcome)

	body := bytes.NewBufferString(`{"outcome":"SUCCESSFUL_HIRE"}`)
	req, _ := http.NewRequest("POST", "/candidates/invalid-uuid/post-joining", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
