package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marshal_back_end/internal/handlers"
	"marshal_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewCartHandler(nil)
	r.GET("/carts", middleware.AuthRequired(testSecret), h.GetCart)
	r.POST("/carts", h.AddToCart)
	r.DELETE("/carts/:id", h.RemoveFromCart)
	return r
}

func TestGetCart_NoUserEmailReturnsEmptyList(t *testing.T) {
	r := cartRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set("Authorization", bearer(t, "a@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetCart_OtherEmailForbidden(t *testing.T) {
	r := cartRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts?user_email=b@x.com", nil)
	req.Header.Set("Authorization", bearer(t, "a@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":true,"message":"forbidden access"}`, w.Body.String())
}

func TestGetCart_NoToken(t *testing.T) {
	r := cartRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts?user_email=a@x.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddToCart_MalformedBody(t *testing.T) {
	r := cartRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(`{"class_name":"karate"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCart_InvalidID(t *testing.T) {
	r := cartRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/carts/pas-un-objectid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":true,"message":"invalid id"}`, w.Body.String())
}
