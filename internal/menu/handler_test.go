package menu

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menuboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

type fixedSort bool

func (f fixedSort) SortByPrice() bool { return bool(f) }

func setupMenuTestRouter(service *Service, sorted bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(nil))

	handler := NewHandler(service, fixedSort(sorted))

	r.GET("/welcome", handler.Welcome)
	r.GET("/menu", handler.List)
	r.GET("/menu/averages", handler.Averages)
	r.GET("/menu/filter", handler.Filter)
	r.GET("/menu/courses", handler.Courses)
	r.POST("/menu/items", handler.AddItem)
	r.GET("/menu/items/:index", handler.GetItem)
	r.PUT("/menu/items/:index", handler.ReplaceItem)
	r.DELETE("/menu/items/:name", handler.RemoveItem)

	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type listResponse struct {
	Items    []Item `json:"items"`
	Count    int    `json:"count"`
	Averages []struct {
		Course  string   `json:"course"`
		Average *float64 `json:"average"`
		Count   int      `json:"count"`
	} `json:"averages"`
}

func TestListMenu(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())
	r := setupMenuTestRouter(service, false)

	w := doJSON(t, r, http.MethodGet, "/menu", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Count != 5 || len(resp.Items) != 5 {
		t.Fatalf("expected 5 items, got %d/%d", resp.Count, len(resp.Items))
	}
	if len(resp.Averages) != 3 || resp.Averages[0].Course != "Starters" {
		t.Fatalf("unexpected averages %+v", resp.Averages)
	}
	if *resp.Averages[1].Average != 15.25 {
		t.Fatalf("expected Mains 15.25, got %v", *resp.Averages[1].Average)
	}
}

func TestListMenu_SortPreference(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())

	w := doJSON(t, setupMenuTestRouter(service, true), http.MethodGet, "/menu", nil)
	var resp listResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Items[0].Name != "Garlic Bread" {
		t.Fatalf("expected cheapest item first, got %s", resp.Items[0].Name)
	}

	w = doJSON(t, setupMenuTestRouter(service, true), http.MethodGet, "/menu?sorted=false", nil)
	resp = listResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Items[0].Name != "Caesar Salad" {
		t.Fatalf("expected menu order with sorted=false, got %s", resp.Items[0].Name)
	}

	if got := service.List()[0].Name; got != "Caesar Salad" {
		t.Fatalf("sorting reordered the store: first item %s", got)
	}
}

func TestFilterMenu(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())
	r := setupMenuTestRouter(service, false)

	tests := []struct {
		query string
		count int
	}{
		{"/menu/filter", 5},
		{"/menu/filter?course=All", 5},
		{"/menu/filter?course=Mains", 2},
		{"/menu/filter?course=Drinks", 0},
	}

	for _, tt := range tests {
		w := doJSON(t, r, http.MethodGet, tt.query, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tt.query, w.Code)
		}

		var resp listResponse
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Count != tt.count || resp.Items == nil {
			t.Errorf("%s: expected %d items, got %d (%v)", tt.query, tt.count, resp.Count, resp.Items)
		}
	}
}

func TestAddItem(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())
	r := setupMenuTestRouter(service, false)

	w := doJSON(t, r, http.MethodPost, "/menu/items", Draft{Name: "Soup", Course: "Starters", Price: "4.5"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Item  Item `json:"item"`
		Index int  `json:"index"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.Index != 5 || resp.Item.Name != "Soup" || resp.Item.Price != 4.5 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if service.Count() != 6 {
		t.Fatalf("expected 6 items, got %d", service.Count())
	}
}

func TestAddItem_MissingFields(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())
	r := setupMenuTestRouter(service, false)

	w := doJSON(t, r, http.MethodPost, "/menu/items", Draft{Course: "Mains"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Fields) != 2 || resp.Fields[0] != "name" || resp.Fields[1] != "price" {
		t.Fatalf("unexpected fields %v", resp.Fields)
	}
	if service.Count() != 5 {
		t.Fatalf("store changed: %d items", service.Count())
	}
}

func TestAddItem_NaNPriceRendersNull(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, nil)
	r := setupMenuTestRouter(service, false)

	w := doJSON(t, r, http.MethodPost, "/menu/items", Draft{Name: "Soup", Course: "Starters", Price: "free"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var resp struct {
		Item map[string]any `json:"item"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if price, ok := resp.Item["price"]; !ok || price != nil {
		t.Fatalf("expected null price, got %v", resp.Item["price"])
	}

	w = doJSON(t, r, http.MethodGet, "/menu/averages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for averages with NaN, got %d", w.Code)
	}
}

func TestGetAndReplaceItem(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())
	r := setupMenuTestRouter(service, false)

	w := doJSON(t, r, http.MethodGet, "/menu/items/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got struct {
		Draft Draft `json:"draft"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Draft.Name != "Grilled Chicken" || got.Draft.Price != "12.5" {
		t.Fatalf("unexpected draft %+v", got.Draft)
	}

	w = doJSON(t, r, http.MethodPut, "/menu/items/1", Draft{Name: "Roast Chicken", Course: "Mains", Price: "13"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	item, _ := service.Get(1)
	if item.Name != "Roast Chicken" || item.Price != 13 {
		t.Fatalf("unexpected item after edit %+v", item)
	}
}

func TestReplaceItem_Errors(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())
	r := setupMenuTestRouter(service, false)

	tests := []struct {
		path  string
		draft Draft
		code  int
	}{
		{"/menu/items/99", Draft{Name: "X", Price: "1"}, http.StatusNotFound},
		{"/menu/items/-1", Draft{Name: "X", Price: "1"}, http.StatusNotFound},
		{"/menu/items/abc", Draft{Name: "X", Price: "1"}, http.StatusBadRequest},
		{"/menu/items/0", Draft{Name: "X"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := doJSON(t, r, http.MethodPut, tt.path, tt.draft)
		if w.Code != tt.code {
			t.Errorf("PUT %s: expected %d, got %d", tt.path, tt.code, w.Code)
		}
	}

	if w := doJSON(t, r, http.MethodGet, "/menu/items/42", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET out of range: expected 404, got %d", w.Code)
	}
}

func TestRemoveItem(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, sampleItems())
	r := setupMenuTestRouter(service, false)

	for i, want := range []int{1, 0} {
		w := doJSON(t, r, http.MethodDelete, "/menu/items/Beef%20Steak", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d", i, w.Code)
		}

		var resp struct {
			Name    string `json:"name"`
			Removed int    `json:"removed"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Name != "Beef Steak" || resp.Removed != want {
			t.Fatalf("call %d: unexpected response %+v", i, resp)
		}
	}

	if service.Count() != 4 {
		t.Fatalf("expected 4 items, got %d", service.Count())
	}
}

func TestWelcome(t *testing.T) {
	service, _ := newTestService(t, VariantDetailed, sampleItems())
	r := setupMenuTestRouter(service, false)

	w := doJSON(t, r, http.MethodGet, "/welcome", nil)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "Welcome, Guest!" {
		t.Fatalf("unexpected message %v", resp["message"])
	}
	if resp["variant"] != "detailed" {
		t.Fatalf("unexpected variant %v", resp["variant"])
	}
}

func TestCourses(t *testing.T) {
	service, _ := newTestService(t, VariantBasic, nil)
	w := doJSON(t, setupMenuTestRouter(service, false), http.MethodGet, "/menu/courses", nil)

	var resp struct {
		Courses []string `json:"courses"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Courses) != 4 || resp.Courses[0] != AllCourses {
		t.Fatalf("unexpected courses %v", resp.Courses)
	}
}
