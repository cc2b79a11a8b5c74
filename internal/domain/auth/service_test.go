package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/holidaze/holidaze-api/internal/pkg/jwt"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/session"
)

type fakeUpstream struct {
	account     *noroff.Account
	profile     *noroff.Profile
	loginErr    error
	registerErr error
}

func (f *fakeUpstream) Register(_ context.Context, reg noroff.Registration) (*noroff.Profile, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.profile, nil
}

func (f *fakeUpstream) Login(_ context.Context, _ noroff.Credentials) (*noroff.Account, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.account, nil
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]*session.Session
	ttls     map[uuid.UUID]time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: map[uuid.UUID]*session.Session{},
		ttls:     map[uuid.UUID]time.Duration{},
	}
}

func (f *fakeSessionStore) Create(_ context.Context, s *session.Session, ttl time.Duration) error {
	f.sessions[s.ID] = s
	f.ttls[s.ID] = ttl
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, id uuid.UUID) (*session.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

func testAccount() *noroff.Account {
	return &noroff.Account{
		Name:         "holly",
		Email:        "holly@stud.noroff.no",
		VenueManager: true,
		AccessToken:  "upstream-token",
	}
}

func newTestService(api API, store session.Store) *Service {
	return NewService(api, store, jwt.NewService("test-secret"), 24*time.Hour, 168*time.Hour)
}

func TestLoginStoresUpstreamToken(t *testing.T) {
	store := newFakeSessionStore()
	svc := newTestService(&fakeUpstream{account: testAccount()}, store)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "holly@stud.noroff.no",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("no session token issued")
	}
	if result.Profile.Name != "holly" || !result.Profile.VenueManager {
		t.Errorf("profile = %+v", result.Profile)
	}

	if len(store.sessions) != 1 {
		t.Fatalf("sessions stored = %d, want 1", len(store.sessions))
	}
	for _, s := range store.sessions {
		if s.UpstreamToken != "upstream-token" {
			t.Errorf("upstream token = %q", s.UpstreamToken)
		}
	}
}

func TestLoginRememberMeSelectsLongTTL(t *testing.T) {
	tests := []struct {
		remember bool
		want     time.Duration
	}{
		{false, 24 * time.Hour},
		{true, 168 * time.Hour},
	}

	for _, tt := range tests {
		store := newFakeSessionStore()
		svc := newTestService(&fakeUpstream{account: testAccount()}, store)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email:      "holly@stud.noroff.no",
			Password:   "password123",
			RememberMe: tt.remember,
		})
		if err != nil {
			t.Fatalf("Login(remember=%v): %v", tt.remember, err)
		}
		for _, ttl := range store.ttls {
			if ttl != tt.want {
				t.Errorf("remember=%v ttl = %v, want %v", tt.remember, ttl, tt.want)
			}
		}
	}
}

func TestLoginTokenResolvesSession(t *testing.T) {
	store := newFakeSessionStore()
	jwtService := jwt.NewService("test-secret")
	svc := NewService(&fakeUpstream{account: testAccount()}, store, jwtService, time.Hour, time.Hour)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "holly@stud.noroff.no",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := jwtService.ValidateSessionToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if _, ok := store.sessions[claims.SessionID]; !ok {
		t.Error("token session id does not match a stored session")
	}
	if claims.ProfileName != "holly" || !claims.VenueManager {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginMapsUnauthorized(t *testing.T) {
	api := &fakeUpstream{loginErr: &noroff.APIError{Status: http.StatusUnauthorized, Message: "Invalid email or password"}}
	svc := newTestService(api, newFakeSessionStore())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "holly@stud.noroff.no", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterMapsProfileExists(t *testing.T) {
	api := &fakeUpstream{registerErr: &noroff.APIError{Status: http.StatusBadRequest, Message: "Profile already exists"}}
	svc := newTestService(api, newFakeSessionStore())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "holly",
		Email:    "holly@stud.noroff.no",
		Password: "password123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	store := newFakeSessionStore()
	svc := newTestService(&fakeUpstream{account: testAccount()}, store)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "holly@stud.noroff.no", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	var id uuid.UUID
	for k := range store.sessions {
		id = k
	}
	if err := svc.Logout(context.Background(), id); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(store.sessions) != 0 {
		t.Error("session not deleted")
	}
}
