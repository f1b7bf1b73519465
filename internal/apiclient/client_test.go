package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLoginCachesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			writeJSON(w, http.StatusOK, envelope{
				Success: true,
				Message: "Login successful",
				Data:    json.RawMessage(`{"token":"tok-123"}`),
			})
		case "/api/users/me":
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, envelope{
				Success: true,
				Message: "User retrieved",
				Data:    json.RawMessage(`{"id":"u1","username":"maya","email":"maya@example.com"}`),
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := New(srv.URL)
	require.NoError(t, client.Login(context.Background(), "maya@example.com", "hunter22"))
	assert.Equal(t, "tok-123", client.Token())

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "maya", user.Username)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: "Invalid token"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("expired")

	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, client.Token())
}

func TestGetEventUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/ev-1", r.URL.Path)
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "Event retrieved",
			Data: json.RawMessage(`{
				"id": "ev-1",
				"title": "Fever Night",
				"price": "25.5",
				"category": "Live shows",
				"organizer_address": "GORG"
			}`),
		})
	}))
	defer srv.Close()

	event, err := New(srv.URL).GetEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "Fever Night", event.Title)
	assert.Equal(t, "25.5", event.Price)
	assert.Equal(t, "GORG", event.Organizer)
}

func TestGetEventRejectsIncompleteRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "Event retrieved",
			Data:    json.RawMessage(`{"id":"ev-1"}`),
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetEvent(context.Background(), "ev-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid event record")
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "Event not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to list events",
			Error:   "db down",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListEvents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestRecordTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tickets", r.URL.Path)

		var body TicketReceipt
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tx-hash-1", body.TxHash)

		writeJSON(w, http.StatusAccepted, envelope{Success: true, Message: "Ticket queued"})
	}))
	defer srv.Close()

	err := New(srv.URL).RecordTicket(context.Background(), TicketReceipt{
		EventID:      "ev-1",
		BuyerAddress: "GBUYER",
		Amount:       "25.5",
		TxHash:       "tx-hash-1",
	})
	require.NoError(t, err)
}
