package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLocalNext(t *testing.T) {
	tests := []struct {
		next string
		ok   bool
	}{
		{"/api/v1/follow", true},
		{"/", true},
		{"", false},
		{"//evil.example", false},
		{"//evil.example/api/v1/follow", false},
		{"https://evil.example", false},
		{"api/v1/follow", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, localNext(tt.next), "next %q", tt.next)
	}
}

func TestLoginPromptEchoesNext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(nil)
	r := gin.New()
	r.GET("/api/v1/auth/login", h.LoginPrompt)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login?next=%2Fapi%2Fv1%2Ffollow", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/v1/follow"`)
}

func TestLoginPromptDropsOffsiteNext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(nil)
	r := gin.New()
	r.GET("/api/v1/auth/login", h.LoginPrompt)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login?next=%2F%2Fevil.example", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "evil.example")
}
