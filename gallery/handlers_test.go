package gallery

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
	"go.mongodb.org/mongo-driver/bson"
)

func newTestHandler() *Handler {
	return NewHandler(NewRepo(nil))
}

func TestListReturnsSeededItems(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.GalleryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 6)
}

func TestGetAndByCategory(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/gallery/1", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req, httprouter.Params{{Key: "id", Value: "1"}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Get(rec, req, httprouter.Params{{Key: "id", Value: "99"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/gallery/category/weddings", nil)
	rec = httptest.NewRecorder()
	h.ByCategory(rec, req, httprouter.Params{
		{Key: "id", Value: "category"},
		{Key: "category", Value: "weddings"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var matched []models.GalleryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matched))
	require.Len(t, matched, 1)
	assert.Equal(t, "Traditional Wedding Decoration", matched[0].Title)
}

func TestPublicReadFiltersHideDeactivatedItems(t *testing.T) {
	assert.Equal(t, bson.M{"isActive": true}, activeFilter(nil))
	assert.Equal(t,
		bson.M{"isActive": true, "category": "weddings"},
		activeFilter(bson.M{"category": "weddings"}))
}

func TestAdminMutationsRequireExternalStore(t *testing.T) {
	h := newTestHandler()

	body := []byte(`{"title":"New Shoot","category":"events"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/gallery/1", nil)
	rec = httptest.NewRecorder()
	h.Delete(rec, req, httprouter.Params{{Key: "id", Value: "1"}})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	assert.Len(t, h.repo.List(nil), 6)
}
