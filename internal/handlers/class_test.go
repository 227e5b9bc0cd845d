package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marshal_back_end/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func classRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewClassHandler(nil)
	r.POST("/addClass", h.AddClass)
	r.PATCH("/users/adminApprove/:id", h.Approve)
	r.PATCH("/users/adminDenied/:id", h.Deny)
	return r
}

func TestAddClass_MalformedBody(t *testing.T) {
	r := classRouter()

	// class_name et instructor_email sont obligatoires
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/addClass", strings.NewReader(`{"price":12}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprove_InvalidID(t *testing.T) {
	r := classRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/adminApprove/pas-un-objectid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":true,"message":"invalid id"}`, w.Body.String())
}

func TestDeny_InvalidID(t *testing.T) {
	r := classRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/adminDenied/pas-un-objectid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
