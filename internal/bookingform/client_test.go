package bookingform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wargameshc/internal/catalog"
)

func testPayload() Payload {
	return BuildPayload(validDraft(), catalog.LangEN, DefaultRates(), validateNow)
}

func TestHTTPSubmitterSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/booking", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "arthur@example.com", got.Email)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 12, "reference": "WHC-20260115-0012", "status": "pending"},
		})
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 5*time.Second)
	receipt, err := sub.Submit(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, int64(12), receipt.ID)
	assert.Equal(t, "WHC-20260115-0012", receipt.Reference)
	assert.Equal(t, "pending", receipt.Status)
}

func TestHTTPSubmitterRejectionCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Invalid email"})
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 5*time.Second)
	_, err := sub.Submit(context.Background(), testPayload())

	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "Invalid email", rej.Message)
}

func TestHTTPSubmitterSuccessFalseOn200(t *testing.T) {
	// A 2xx with success:false is still a rejection.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "fully booked"})
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 5*time.Second)
	_, err := sub.Submit(context.Background(), testPayload())

	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "fully booked", rej.Message)
}

func TestHTTPSubmitterUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	sub := NewHTTPSubmitter(srv.URL, time.Second)
	_, err := sub.Submit(context.Background(), testPayload())

	var conn *ConnectivityError
	require.ErrorAs(t, err, &conn)
}

func TestHTTPSubmitterGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 5*time.Second)
	_, err := sub.Submit(context.Background(), testPayload())

	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Contains(t, rej.Message, "500")
}
