package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/holidaze/holidaze-api/internal/pkg/jwt"
	"github.com/holidaze/holidaze-api/internal/pkg/session"
)

type fakeSessionStore struct {
	items map[uuid.UUID]*session.Session
}

func (f *fakeSessionStore) Create(ctx context.Context, s *session.Session, ttl time.Duration) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	if s, ok := f.items[id]; ok {
		return s, nil
	}
	return nil, session.ErrNotFound
}

func (f *fakeSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func newTestEnv(t *testing.T) (*jwt.Service, *fakeSessionStore, *session.Session, string) {
	t.Helper()

	jwtService := jwt.NewService("test-secret")
	store := &fakeSessionStore{items: map[uuid.UUID]*session.Session{}}

	sess := &session.Session{
		ID:            uuid.New(),
		ProfileName:   "jan",
		Email:         "jan@stud.noroff.no",
		VenueManager:  true,
		UpstreamToken: "upstream-tok",
		CreatedAt:     time.Now(),
	}
	store.items[sess.ID] = sess

	token, err := jwtService.GenerateSessionToken(sess.ID, sess.ProfileName, sess.VenueManager, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return jwtService, store, sess, token
}

func TestAuthResolvesSession(t *testing.T) {
	jwtService, store, sess, token := newTestEnv(t)

	var got *session.Session
	handler := Auth(jwtService, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got == nil || got.ID != sess.ID {
		t.Fatalf("session not resolved into context")
	}
	if got.UpstreamToken != "upstream-tok" {
		t.Errorf("upstream token missing from session")
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	jwtService, store, _, _ := newTestEnv(t)

	handler := Auth(jwtService, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsLoggedOutSession(t *testing.T) {
	jwtService, store, sess, token := newTestEnv(t)
	delete(store.items, sess.ID)

	handler := Auth(jwtService, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for logged-out session, got %d", rec.Code)
	}
}

func TestRequireVenueManager(t *testing.T) {
	jwtService, store, sess, token := newTestEnv(t)
	sess.VenueManager = false

	handler := Auth(jwtService, store)(RequireVenueManager()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer account, got %d", rec.Code)
	}
}
