package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"menuboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

type stubTokens map[string]string

func (s stubTokens) ValidateToken(token string) (string, error) {
	if username, ok := s[token]; ok {
		return username, nil
	}
	return "", errors.New("invalid token")
}

func echoUsername(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", ""},
		{"invalid format", "InvalidFormat", ""},
		{"invalid token", "Bearer invalid_token_xyz", ""},
		{"valid token", "Bearer good", "maria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(OptionalAuth(stubTokens{"good": "maria"}, nil))
			var got string
			router.GET("/test", func(c *gin.Context) {
				got = c.GetString("username")
				echoUsername(c)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
			}
			if got != tt.want {
				t.Fatalf("expected username %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"app error", apperr.NotFound("missing"), http.StatusNotFound},
		{"wrapped app error", apperr.Wrap(http.StatusBadRequest, "bad", errors.New("cause")), http.StatusBadRequest},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler(nil))
			router.GET("/test", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler(nil))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Errorf("expected status %d, got %d", http.StatusAccepted, w.Code)
	}
}
