package content

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(NewRepo(nil))
}

func doGet(h *Handler, section string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/content/"+section, nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req, httprouter.Params{{Key: "section", Value: section}})
	return rec
}

func doUpdate(h *Handler, section string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/content/"+section, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "section", Value: section}})
	return rec
}

func TestGetSeededSections(t *testing.T) {
	h := newTestHandler()

	for _, section := range []string{"home", "about", "contact"} {
		rec := doGet(h, section)
		assert.Equal(t, http.StatusOK, rec.Code, section)
	}

	rec := doGet(h, "home")
	var home map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &home))
	assert.Equal(t, "Creating Magical Moments That Last Forever", home["heroTitle"])
	assert.NotEmpty(t, home["stats"])
}

func TestGetUnknownSection(t *testing.T) {
	h := newTestHandler()
	rec := doGet(h, "pricing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMergesTopLevelKeysOnly(t *testing.T) {
	h := newTestHandler()

	before := doGet(h, "home")
	var seeded map[string]any
	require.NoError(t, json.Unmarshal(before.Body.Bytes(), &seeded))

	rec := doUpdate(h, "home", []byte(`{"heroTitle":"New"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	after := doGet(h, "home")
	var updated map[string]any
	require.NoError(t, json.Unmarshal(after.Body.Bytes(), &updated))

	assert.Equal(t, "New", updated["heroTitle"])
	assert.Equal(t, seeded["stats"], updated["stats"])
	assert.Equal(t, seeded["testimonials"], updated["testimonials"])
}

func TestUpdateReplacesNestedListsWholesale(t *testing.T) {
	h := newTestHandler()

	rec := doUpdate(h, "home", []byte(`{"testimonials":[{"name":"Ada","role":"Client","content":"Wonderful!"}]}`))
	require.Equal(t, http.StatusOK, rec.Code)

	after := doGet(h, "home")
	var updated map[string]any
	require.NoError(t, json.Unmarshal(after.Body.Bytes(), &updated))

	testimonials, ok := updated["testimonials"].([]any)
	require.True(t, ok)
	require.Len(t, testimonials, 1)
	entry := testimonials[0].(map[string]any)
	assert.Equal(t, "Ada", entry["name"])
}

func TestUpdateUnknownSection(t *testing.T) {
	h := newTestHandler()
	rec := doUpdate(h, "pricing", []byte(`{"heroTitle":"New"}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRepoIsolation(t *testing.T) {
	// each repo owns its own seeded copy
	first := NewRepo(nil)
	require.NoError(t, first.Update(nil, "home", Section{"heroTitle": "Changed"}))

	second := NewRepo(nil)
	section, err := second.Get(nil, "home")
	require.NoError(t, err)
	assert.Equal(t, "Creating Magical Moments That Last Forever", section["heroTitle"])
}
