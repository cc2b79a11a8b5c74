package noroff

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid method"))
			return
		}
		if r.URL.Path != "/auth/login" || r.URL.Query().Get("_holidaze") != "true" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid path"))
			return
		}
		if r.Header.Get("X-Noroff-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"jan","email":"jan@stud.noroff.no","venueManager":true,"accessToken":"tok-123"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 2*time.Second, "holidaze-api-test")

	account, err := client.Login(context.Background(), Credentials{
		Email:    "jan@stud.noroff.no",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if account.Name != "jan" {
		t.Errorf("expected name jan, got %q", account.Name)
	}
	if account.AccessToken != "tok-123" {
		t.Errorf("expected access token tok-123, got %q", account.AccessToken)
	}
	if !account.VenueManager {
		t.Errorf("expected venueManager true")
	}
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Profile already exists"}],"status":"Bad Request","statusCode":400}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 2*time.Second, "")

	_, err := client.Register(context.Background(), Registration{
		Name:     "jan",
		Email:    "jan@stud.noroff.no",
		Password: "secret123",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.Status)
	}
	if apiErr.Message != "Profile already exists" {
		t.Errorf("expected envelope message, got %q", apiErr.Message)
	}
}

func TestSearchVenuesEscapesTerm(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"v1","name":"Beach house","price":120,"maxGuests":4}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 2*time.Second, "")

	venues, err := client.SearchVenues(context.Background(), "beach & sun")
	if err != nil {
		t.Fatalf("SearchVenues returned error: %v", err)
	}
	if gotQuery != "beach & sun" {
		t.Errorf("query not escaped round-trip, got %q", gotQuery)
	}
	if len(venues) != 1 || venues[0].ID != "v1" {
		t.Errorf("unexpected venues: %+v", venues)
	}
}

func TestGetVenueByIDIncludesBookings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/holidaze/venues/v1") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("_bookings") != "true" || q.Get("_owner") != "true" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"v1","name":"Cabin","price":80,"maxGuests":2,
			"bookings":[{"id":"b1","dateFrom":"2025-03-10T14:00:00.000Z","dateTo":"2025-03-13T10:00:00.000Z","guests":2}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 2*time.Second, "")

	venue, err := client.GetVenueByID(context.Background(), "v1")
	if err != nil {
		t.Fatalf("GetVenueByID returned error: %v", err)
	}
	if len(venue.Bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(venue.Bookings))
	}
	if venue.Bookings[0].DateFrom.Day() != 10 {
		t.Errorf("expected dateFrom day 10, got %d", venue.Bookings[0].DateFrom.Day())
	}
}

func TestNotFoundMapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 2*time.Second, "")

	_, err := client.GetVenueByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTimeoutClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 50*time.Millisecond, "")

	_, err := client.GetAllVenues(context.Background())
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("expected timeout classification, got %v", err)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", 2*time.Second, "")

	if err := client.DeleteBooking(context.Background(), "tok-abc", "b1"); err != nil {
		t.Fatalf("DeleteBooking returned error: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("expected bearer token, got %q", gotAuth)
	}
}
