package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trusthome_backend/internal/catalog/repository"
	"trusthome_backend/internal/catalog/service"
	"trusthome_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

type fakeRepo struct {
	properties map[int64]repository.Property
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (repository.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return repository.Property{}, apperr.NotFound("property not found")
	}
	return p, nil
}

func (f *fakeRepo) ListByIDs(ctx context.Context, ids []int64) ([]repository.Property, error) {
	var out []repository.Property
	for _, id := range ids {
		if p, ok := f.properties[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestRouter(repo repository.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := New(service.New(repo))
	h.RegisterRoutes(engine.Group("/properties"))
	return engine
}

func TestGetByIDMissingPropertyReturns404(t *testing.T) {
	engine := newTestRouter(&fakeRepo{properties: map[int64]repository.Property{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/properties/999", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "property not found" {
		t.Fatalf("error = %q, want %q", body.Error, "property not found")
	}
}

func TestGetByIDReturnsProperty(t *testing.T) {
	engine := newTestRouter(&fakeRepo{properties: map[int64]repository.Property{
		12: {ID: 12, Title: "Уютная студия", Location: "Тбилиси", Price: 1200, Category: "rent", Type: "studio", Bedrooms: 1, Bathrooms: 1, Area: 42},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/properties/12", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ID != 12 || body.Title != "Уютная студия" {
		t.Fatalf("body = %+v", body)
	}
}

func TestGetByIDRejectsNonNumericID(t *testing.T) {
	engine := newTestRouter(&fakeRepo{properties: map[int64]repository.Property{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/properties/abc", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
