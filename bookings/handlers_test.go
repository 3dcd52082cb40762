package bookings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bigtreat/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler runs against the in-memory store only, the same path the
// server takes when the document store is down.
func newTestHandler() *Handler {
	return NewHandler(NewRepo(nil))
}

func submitBody(overrides map[string]any) []byte {
	body := map[string]any{
		"customerName":  "Jane Doe",
		"customerEmail": "JANE@X.COM",
		"customerPhone": "123",
		"serviceId":     "1",
		"eventDate":     "2099-01-01",
	}
	for k, v := range overrides {
		body[k] = v
	}
	data, _ := json.Marshal(body)
	return data
}

func doSubmit(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Submit(w, req, nil)
	return w
}

func TestSubmitCreatesPendingBooking(t *testing.T) {
	h := newTestHandler()

	w := doSubmit(h, submitBody(nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message   string `json:"message"`
		BookingID string `json:"bookingId"`
		Success   bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.BookingID)
	assert.Contains(t, resp.Message, "Booking submitted successfully")

	booking, err := h.repo.Get(nil, resp.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, "jane@x.com", booking.CustomerEmail)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   string
	}{
		{"missing name", map[string]any{"customerName": ""}, "Please fill in all required fields"},
		{"missing phone", map[string]any{"customerPhone": ""}, "Please fill in all required fields"},
		{"missing service", map[string]any{"serviceId": ""}, "Please fill in all required fields"},
		{"bad email", map[string]any{"customerEmail": "not-an-email"}, "Please enter a valid email address"},
		{"past date", map[string]any{"eventDate": "2020-01-01"}, "Event date cannot be in the past"},
		{"unparsable date", map[string]any{"eventDate": "tomorrow"}, "Please enter a valid event date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler()
			w := doSubmit(h, submitBody(tc.overrides))
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantErr, resp["error"])

			// no record was created
			assert.Empty(t, h.repo.List(nil))
		})
	}
}

func TestGetByID(t *testing.T) {
	h := newTestHandler()
	w := doSubmit(h, submitBody(nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		BookingID string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+created.BookingID, nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req, httprouter.Params{{Key: "id", Value: created.BookingID}})
	require.Equal(t, http.StatusOK, rec.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, created.BookingID, booking.ID)

	// same read twice returns the identical record
	rec2 := httptest.NewRecorder()
	h.Get(rec2, req, httprouter.Params{{Key: "id", Value: created.BookingID}})
	assert.Equal(t, rec.Body.String(), rec2.Body.String())

	rec3 := httptest.NewRecorder()
	h.Get(rec3, req, httprouter.Params{{Key: "id", Value: "missing"}})
	assert.Equal(t, http.StatusNotFound, rec3.Code)
}

func TestByCustomerEmail(t *testing.T) {
	h := newTestHandler()

	require.Equal(t, http.StatusCreated, doSubmit(h, submitBody(nil)).Code)
	require.Equal(t, http.StatusCreated, doSubmit(h, submitBody(map[string]any{"customerEmail": "other@x.com"})).Code)
	require.Equal(t, http.StatusCreated, doSubmit(h, submitBody(map[string]any{"eventDate": "2099-02-01"})).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/customer/jane@x.com", nil)
	rec := httptest.NewRecorder()
	h.ByCustomer(rec, req, httprouter.Params{
		{Key: "id", Value: "customer"},
		{Key: "email", Value: "JANE@X.com"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var matched []models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matched))
	require.Len(t, matched, 2)
	for _, b := range matched {
		assert.Equal(t, "jane@x.com", b.CustomerEmail)
	}
	// newest first
	assert.False(t, matched[0].CreatedAt.Before(matched[1].CreatedAt))
}

func TestByCustomerEmptyResult(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/customer/nobody@x.com", nil)
	rec := httptest.NewRecorder()
	h.ByCustomer(rec, req, httprouter.Params{
		{Key: "id", Value: "customer"},
		{Key: "email", Value: "nobody@x.com"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdate(t *testing.T) {
	h := newTestHandler()
	w := doSubmit(h, submitBody(nil))
	var created struct {
		BookingID string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	body := []byte(`{"status":"confirmed","adminNotes":"call first","price":50000}`)
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+created.BookingID, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "id", Value: created.BookingID}})
	require.Equal(t, http.StatusOK, rec.Code)

	booking, err := h.repo.Get(nil, created.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, "call first", booking.AdminNotes)
	assert.Equal(t, float64(50000), booking.Price)
	// untouched fields survive
	assert.Equal(t, "jane@x.com", booking.CustomerEmail)
}

func TestUpdateNotFound(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/missing", bytes.NewReader([]byte(`{"status":"confirmed"}`)))
	rec := httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "id", Value: "missing"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	h := newTestHandler()
	w := doSubmit(h, submitBody(nil))
	var created struct {
		BookingID string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+created.BookingID, nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req, httprouter.Params{{Key: "id", Value: created.BookingID}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec2 := httptest.NewRecorder()
	h.Delete(rec2, req, httprouter.Params{{Key: "id", Value: created.BookingID}})
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}

func TestFallbackCRUDRoundTrip(t *testing.T) {
	// every operation succeeds with the external store forced unavailable
	h := newTestHandler()

	for i := 0; i < 3; i++ {
		w := doSubmit(h, submitBody(map[string]any{"customerEmail": fmt.Sprintf("c%d@x.com", i)}))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	all := h.repo.List(nil)
	require.Len(t, all, 3)

	require.NoError(t, h.repo.Update(nil, all[0].ID, nil, func(b *models.Booking) {
		b.Status = models.BookingCompleted
	}))
	updated, err := h.repo.Get(nil, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)

	require.NoError(t, h.repo.Delete(nil, all[1].ID))
	assert.Len(t, h.repo.List(nil), 2)
}
