package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bigtreat/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(NewRepo(nil))
}

func TestListReturnsSeededCatalog(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var catalog []models.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	require.Len(t, catalog, 6)
	assert.Equal(t, "Wedding Event Planning", catalog[0].Name)
}

func TestGet(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/services/2", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req, httprouter.Params{{Key: "id", Value: "2"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var service models.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &service))
	assert.Equal(t, "makeup", service.Category)

	rec = httptest.NewRecorder()
	h.Get(rec, req, httprouter.Params{{Key: "id", Value: "99"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestByCategory(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/services/category/cakes", nil)
	rec := httptest.NewRecorder()
	h.ByCategory(rec, req, httprouter.Params{
		{Key: "id", Value: "category"},
		{Key: "category", Value: "cakes"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var matched []models.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matched))
	require.Len(t, matched, 1)
	assert.Equal(t, "Custom Wedding Cakes", matched[0].Name)
}

func TestByCategoryUnknownIsEmptyList(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/services/category/nonexistent", nil)
	rec := httptest.NewRecorder()
	h.ByCategory(rec, req, httprouter.Params{
		{Key: "id", Value: "category"},
		{Key: "category", Value: "nonexistent"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestByCategoryGuardsRouteShape(t *testing.T) {
	// /api/services/123/anything must not be treated as a category lookup
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/services/123/anything", nil)
	rec := httptest.NewRecorder()
	h.ByCategory(rec, req, httprouter.Params{
		{Key: "id", Value: "123"},
		{Key: "category", Value: "anything"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminMutationsRequireExternalStore(t *testing.T) {
	h := newTestHandler()

	body := []byte(`{"name":"Chair Rentals","category":"decoration","price":5000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/services", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/services/1", bytes.NewReader([]byte(`{"price":9000}`)))
	rec = httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "id", Value: "1"}})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/services/1", nil)
	rec = httptest.NewRecorder()
	h.Delete(rec, req, httprouter.Params{{Key: "id", Value: "1"}})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// catalog is untouched and reads keep working
	assert.Len(t, h.repo.List(nil), 6)
}

func TestCreateValidation(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/services", bytes.NewReader([]byte(`{"name":""}`)))
	rec := httptest.NewRecorder()
	h.Create(rec, req, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
