package preferences

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menuboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TestToggle(t *testing.T) {
	service := NewService(false)

	if !service.Toggle() || !service.SortByPrice() {
		t.Fatal("expected sort on after first toggle")
	}
	if service.Toggle() || service.SortByPrice() {
		t.Fatal("expected sort off after second toggle")
	}
}

func setupTestRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(nil))

	handler := NewHandler(service)
	r.GET("/preferences", handler.Get)
	r.PUT("/preferences", handler.Update)
	return r
}

func TestUpdatePreferences(t *testing.T) {
	service := NewService(false)
	r := setupTestRouter(service)

	tests := []struct {
		body string
		code int
		want bool
	}{
		{`{"sort_by_price": true}`, http.StatusOK, true},
		{`{}`, http.StatusBadRequest, true},
		{`{"sort_by_price": "yes"}`, http.StatusBadRequest, true},
		{`{"sort_by_price": false}`, http.StatusOK, false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPut, "/preferences", bytes.NewBufferString(tt.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tt.code {
			t.Errorf("PUT %s: expected %d, got %d", tt.body, tt.code, w.Code)
		}
		if service.SortByPrice() != tt.want {
			t.Errorf("PUT %s: expected sort=%v", tt.body, tt.want)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `"sort_by_price":false`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
