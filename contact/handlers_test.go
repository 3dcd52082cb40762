package contact

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

func submitBody(overrides map[string]any) []byte {
	body := map[string]any{
		"name":    "Jane Doe",
		"email":   "Jane@Example.COM",
		"subject": "Wedding enquiry",
		"message": "Do you cover Lagos?",
	}
	for k, v := range overrides {
		body[k] = v
	}
	data, _ := json.Marshal(body)
	return data
}

func doSubmit(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Submit(w, req, nil)
	return w
}

func TestSubmitStoresNormalizedMessage(t *testing.T) {
	h := newTestHandler()

	w := doSubmit(h, submitBody(nil))
	require.Equal(t, http.StatusCreated, w.Code)

	msgs := h.repo.List(nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, "jane@example.com", msgs[0].Email)
	assert.Equal(t, "new", msgs[0].Status)
	assert.False(t, msgs[0].Read)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   string
	}{
		{"missing subject", map[string]any{"subject": ""}, "Please fill in all required fields"},
		{"missing message", map[string]any{"message": ""}, "Please fill in all required fields"},
		{"bad email", map[string]any{"email": "nope"}, "Please enter a valid email address"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler()
			w := doSubmit(h, submitBody(tc.overrides))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, h.repo.List(nil))

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantErr, resp["error"])
		})
	}
}

func TestUpdateMarksRead(t *testing.T) {
	h := newTestHandler()
	require.Equal(t, http.StatusCreated, doSubmit(h, submitBody(nil)).Code)
	id := h.repo.List(nil)[0].ID

	body := []byte(`{"read":true,"status":"handled","notes":"replied by phone"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/contact/"+id, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "id", Value: id}})
	require.Equal(t, http.StatusOK, rec.Code)

	var msg models.ContactMessage
	msg, err := h.repo.Get(nil, id)
	require.NoError(t, err)
	assert.True(t, msg.Read)
	assert.Equal(t, "handled", msg.Status)
	assert.Equal(t, "replied by phone", msg.Notes)
}

func TestUpdateNotFound(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPut, "/api/contact/missing", bytes.NewReader([]byte(`{"read":true}`)))
	rec := httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "id", Value: "missing"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	h := newTestHandler()
	require.Equal(t, http.StatusCreated, doSubmit(h, submitBody(nil)).Code)
	id := h.repo.List(nil)[0].ID

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/"+id, nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req, httprouter.Params{{Key: "id", Value: id}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, h.repo.List(nil))
}
